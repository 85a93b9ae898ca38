package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDocument is wrapped by every document validation failure.
var ErrInvalidDocument = errors.New("invalid document")

// Document is the full persisted state: the unit of import, export and
// linked-file sync. Sections absent from an imported document are left
// untouched on merge.
type Document struct {
	Profile   *Profile             `json:"profile,omitempty"`
	Logs      map[string]*DailyLog `json:"logs,omitempty"`
	MealPlans *MealPlans           `json:"mealPlans,omitempty"`
}

// ParseDocument decodes and validates a document. The whole document is
// rejected on structural mismatch; nothing is ever partially applied from a
// document that fails here.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document shape: parseable profile dates and day keys.
// Entry calories are deliberately not validated (the app never validates
// them) and running totals are preserved exactly as imported.
func (d *Document) Validate() error {
	if d.Profile != nil {
		if d.Profile.StartDate != "" {
			if _, err := ParseDayKey(d.Profile.StartDate); err != nil {
				return fmt.Errorf("%w: profile startDate %q", ErrInvalidDocument, d.Profile.StartDate)
			}
		}
		if d.Profile.TargetDate != "" {
			if _, err := ParseDayKey(d.Profile.TargetDate); err != nil {
				return fmt.Errorf("%w: profile targetDate %q", ErrInvalidDocument, d.Profile.TargetDate)
			}
		}
	}
	for key, log := range d.Logs {
		if _, err := ParseDayKey(key); err != nil {
			return fmt.Errorf("%w: log key %q", ErrInvalidDocument, key)
		}
		if log == nil {
			return fmt.Errorf("%w: log %q is null", ErrInvalidDocument, key)
		}
	}
	return nil
}

// Marshal renders the document the way the app has always written it:
// pretty-printed with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

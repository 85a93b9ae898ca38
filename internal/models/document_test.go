package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentRoundTrip(t *testing.T) {
	doc := &Document{
		Profile: DefaultProfile("2025-01-10"),
		Logs: map[string]*DailyLog{
			"2025-01-10": {
				Weight:  70,
				Intake:  450,
				Outtake: 120,
				Water:   3,
				Foods:   []LogEntry{{Name: "Phở Bò", Cal: 450, ID: "a"}},
				Activities: []LogEntry{
					{Name: "Run", Cal: 120, ID: "b"},
				},
			},
		},
		MealPlans: DefaultMealPlans(),
	}

	data, err := doc.Marshal()
	require.NoError(t, err)

	parsed, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Profile, parsed.Profile)
	assert.Equal(t, doc.Logs, parsed.Logs)
	assert.Equal(t, doc.MealPlans, parsed.MealPlans)
}

func TestParseDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{"))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocumentRejectsBadDayKey(t *testing.T) {
	_, err := ParseDocument([]byte(`{"logs":{"10/01/2025":{"intake":1}}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocumentRejectsNullLog(t *testing.T) {
	_, err := ParseDocument([]byte(`{"logs":{"2025-01-10":null}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocumentRejectsBadProfileDates(t *testing.T) {
	_, err := ParseDocument([]byte(`{"profile":{"targetDate":"soon"}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocumentRejectsWrongShapes(t *testing.T) {
	_, err := ParseDocument([]byte(`{"logs":["not","a","map"]}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = ParseDocument([]byte(`{"profile":{"age":"twenty"}}`))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseDocumentAcceptsPartialDocuments(t *testing.T) {
	parsed, err := ParseDocument([]byte(`{"mealPlans":{"breakfast":[{"name":"Phở Bò","cal":450}]}}`))
	require.NoError(t, err)
	assert.Nil(t, parsed.Profile)
	assert.Nil(t, parsed.Logs)
	require.NotNil(t, parsed.MealPlans)
	assert.Len(t, parsed.MealPlans.Breakfast, 1)
}

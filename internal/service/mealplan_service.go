package service

import "github.com/namnguyen21-f/Nutrition-Tracker/internal/models"

// Selection is a discardable working copy of a meal slot's items used during
// an edit session. Nothing touches the persisted slot until the selection is
// committed.
type Selection []models.PlanItem

// Toggle adds the item when absent and removes it when present, matching by
// name. There is no cap on the selection size.
func (s Selection) Toggle(item models.PlanItem) Selection {
	for i, existing := range s {
		if existing.Name == item.Name {
			return append(append(Selection{}, s[:i]...), s[i+1:]...)
		}
	}
	return append(append(Selection{}, s...), item)
}

// Contains reports whether an item with the given name is selected.
func (s Selection) Contains(name string) bool {
	for _, it := range s {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Total sums the calories of the selection.
func (s Selection) Total() float64 {
	var total float64
	for _, it := range s {
		total += it.Cal
	}
	return total
}

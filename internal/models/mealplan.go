package models

// Slot names one of the four fixed meal categories.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotOther     Slot = "other"
)

// Slots lists the four slots in display order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotOther}

// Valid reports whether s is one of the four known slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotOther:
		return true
	}
	return false
}

// PlanItem is a reusable food item inside a meal slot. It has no id; ids are
// generated only when the slot is applied to a daily log.
type PlanItem struct {
	Name string  `json:"name"`
	Cal  float64 `json:"cal"`
}

// MealPlans holds the four named meal slots.
type MealPlans struct {
	Breakfast []PlanItem `json:"breakfast"`
	Lunch     []PlanItem `json:"lunch"`
	Dinner    []PlanItem `json:"dinner"`
	Other     []PlanItem `json:"other"`
}

// DefaultMealPlans returns four empty slots.
func DefaultMealPlans() *MealPlans {
	return &MealPlans{
		Breakfast: []PlanItem{},
		Lunch:     []PlanItem{},
		Dinner:    []PlanItem{},
		Other:     []PlanItem{},
	}
}

// Get returns the items of a slot. Unknown slots return nil.
func (m *MealPlans) Get(s Slot) []PlanItem {
	switch s {
	case SlotBreakfast:
		return m.Breakfast
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	case SlotOther:
		return m.Other
	}
	return nil
}

// Set replaces the items of a slot wholesale. Unknown slots are ignored.
func (m *MealPlans) Set(s Slot, items []PlanItem) {
	if items == nil {
		items = []PlanItem{}
	}
	switch s {
	case SlotBreakfast:
		m.Breakfast = items
	case SlotLunch:
		m.Lunch = items
	case SlotDinner:
		m.Dinner = items
	case SlotOther:
		m.Other = items
	}
}

// SlotTotal sums the calories of one slot.
func (m *MealPlans) SlotTotal(s Slot) float64 {
	var total float64
	for _, it := range m.Get(s) {
		total += it.Cal
	}
	return total
}

// PlannedTotal sums the calories across all four slots.
func (m *MealPlans) PlannedTotal() float64 {
	var total float64
	for _, s := range Slots {
		total += m.SlotTotal(s)
	}
	return total
}

// Clone returns a deep copy of all four slots.
func (m *MealPlans) Clone() *MealPlans {
	c := DefaultMealPlans()
	for _, s := range Slots {
		c.Set(s, append([]PlanItem(nil), m.Get(s)...))
	}
	return c
}

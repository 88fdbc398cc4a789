package model

import (
	"fmt"
	"strings"
)

// =====================================================
// INGREDIENT MODEL
// =====================================================
// A recipe holds ordered sections, each holding ordered items.
// The whole structure is persisted as one JSON column and must
// round-trip losslessly through these structs.

// Unset is the sentinel the edit form uses for "no fraction" / "no unit".
// Sentinel values never appear in the derived amount string.
const Unset = "-"

// DefaultSectionTitle replaces a blank section title on save.
const DefaultSectionTitle = "Main Ingredients"

// NewSectionTitle is the title given to sections added in the editor.
const NewSectionTitle = "New Section"

// Fractions is the fixed set of fraction choices, sentinel first.
var Fractions = []string{Unset, "1/8", "1/4", "1/3", "1/2", "2/3", "3/4"}

// Units is the fixed set of unit choices, sentinel first.
var Units = []string{Unset, "tsp", "tbsp", "cup", "oz", "lb", "g", "kg", "ml", "can", "jar", "pinch"}

// IngredientItem is a single line within a section.
// Amount is never edited directly: it is recomputed from
// Quantity + Fraction + Unit whenever any of them changes.
type IngredientItem struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Quantity string `json:"quantity,omitempty"`
	Fraction string `json:"fraction,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// IngredientSection is a named, ordered group of items (e.g. "Sauce").
// Duplicate titles across sections are permitted.
type IngredientSection struct {
	Title string           `json:"title"`
	Items []IngredientItem `json:"items"`
}

// IngredientField identifies the item field targeted by an edit.
type IngredientField string

const (
	FieldName     IngredientField = "name"
	FieldQuantity IngredientField = "quantity"
	FieldFraction IngredientField = "fraction"
	FieldUnit     IngredientField = "unit"
)

// DeriveAmount builds the display amount string: the non-empty,
// non-sentinel members of {quantity, fraction, unit} joined by a
// single space, in that fixed order.
func DeriveAmount(quantity, fraction, unit string) string {
	if fraction == Unset {
		fraction = ""
	}
	if unit == Unset {
		unit = ""
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{quantity, fraction, unit} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// NewBlankItem returns an empty item with sentinel fraction/unit,
// matching what the editor starts with.
func NewBlankItem() IngredientItem {
	return IngredientItem{Fraction: Unset, Unit: Unset}
}

// NewSection returns the section appended by the "add section" action:
// a default title and one blank item.
func NewSection() IngredientSection {
	return IngredientSection{
		Title: NewSectionTitle,
		Items: []IngredientItem{NewBlankItem()},
	}
}

// recompute refreshes the derived Amount from the item's own fields.
func (i *IngredientItem) recompute() {
	i.Amount = DeriveAmount(i.Quantity, i.Fraction, i.Unit)
}

// UpdateItemField sets one field of the item at (sectionIdx, itemIdx)
// and recomputes that item's Amount. The section slice is modified in place.
func UpdateItemField(sections []IngredientSection, sectionIdx, itemIdx int, field IngredientField, value string) error {
	if sectionIdx < 0 || sectionIdx >= len(sections) {
		return fmt.Errorf("section index %d out of range", sectionIdx)
	}
	items := sections[sectionIdx].Items
	if itemIdx < 0 || itemIdx >= len(items) {
		return fmt.Errorf("item index %d out of range", itemIdx)
	}

	item := &items[itemIdx]
	switch field {
	case FieldName:
		item.Name = value
	case FieldQuantity:
		item.Quantity = value
	case FieldFraction:
		item.Fraction = value
	case FieldUnit:
		item.Unit = value
	default:
		return fmt.Errorf("unknown ingredient field %q", field)
	}

	item.recompute()
	return nil
}

// UpdateSectionTitle renames the section at index.
func UpdateSectionTitle(sections []IngredientSection, sectionIdx int, title string) error {
	if sectionIdx < 0 || sectionIdx >= len(sections) {
		return fmt.Errorf("section index %d out of range", sectionIdx)
	}
	sections[sectionIdx].Title = title
	return nil
}

// AddSection appends a new default section.
func AddSection(sections []IngredientSection) []IngredientSection {
	return append(sections, NewSection())
}

// RemoveSection deletes the section at index. No confirmation, no tombstone.
func RemoveSection(sections []IngredientSection, sectionIdx int) ([]IngredientSection, error) {
	if sectionIdx < 0 || sectionIdx >= len(sections) {
		return nil, fmt.Errorf("section index %d out of range", sectionIdx)
	}
	return append(sections[:sectionIdx], sections[sectionIdx+1:]...), nil
}

// AddItem appends a blank item to the section at index.
func AddItem(sections []IngredientSection, sectionIdx int) error {
	if sectionIdx < 0 || sectionIdx >= len(sections) {
		return fmt.Errorf("section index %d out of range", sectionIdx)
	}
	sections[sectionIdx].Items = append(sections[sectionIdx].Items, NewBlankItem())
	return nil
}

// RemoveItem deletes the item at (sectionIdx, itemIdx).
func RemoveItem(sections []IngredientSection, sectionIdx, itemIdx int) error {
	if sectionIdx < 0 || sectionIdx >= len(sections) {
		return fmt.Errorf("section index %d out of range", sectionIdx)
	}
	items := sections[sectionIdx].Items
	if itemIdx < 0 || itemIdx >= len(items) {
		return fmt.Errorf("item index %d out of range", itemIdx)
	}
	sections[sectionIdx].Items = append(items[:itemIdx], items[itemIdx+1:]...)
	return nil
}

// NormalizeSections enforces the model invariants before persisting:
// blank titles get the default placeholder and every Amount is
// recomputed so the stored value is always a pure function of
// quantity + fraction + unit.
func NormalizeSections(sections []IngredientSection) []IngredientSection {
	for s := range sections {
		if strings.TrimSpace(sections[s].Title) == "" {
			sections[s].Title = DefaultSectionTitle
		}
		for i := range sections[s].Items {
			sections[s].Items[i].recompute()
		}
	}
	return sections
}

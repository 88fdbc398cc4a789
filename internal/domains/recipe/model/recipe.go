package model

import (
	"encoding/json"
	"fmt"
)

// Recipe represents a recipe entity.
// IngredientSections is persisted as a JSON-encoded text column and
// parsed back on every read.
type Recipe struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Image              string              `json:"image"`
	Rating             float64             `json:"rating"` // intended range 0-5, unenforced
	Description        *string             `json:"description,omitempty"`
	IngredientSections []IngredientSection `json:"ingredientSections"`
	Instructions       string              `json:"instructions"`
	Notes              *string             `json:"notes,omitempty"`
	CreatedAt          int64               `json:"createdAt"` // epoch millis
	UserID             *string             `json:"userId,omitempty"`
	IsPublic           bool                `json:"isPublic"`
}

// EncodeIngredientSections serializes the sections for the text column.
// A nil slice encodes as an empty array so the column never holds "null".
func EncodeIngredientSections(sections []IngredientSection) (string, error) {
	if sections == nil {
		sections = []IngredientSection{}
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("failed to encode ingredient sections: %w", err)
	}
	return string(data), nil
}

// DecodeIngredientSections parses the stored JSON column back into the
// ordered-sections form. Empty columns (legacy rows) decode to an empty slice.
func DecodeIngredientSections(raw string) ([]IngredientSection, error) {
	if raw == "" {
		return []IngredientSection{}, nil
	}
	var sections []IngredientSection
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, fmt.Errorf("failed to decode ingredient sections: %w", err)
	}
	if sections == nil {
		sections = []IngredientSection{}
	}
	return sections, nil
}

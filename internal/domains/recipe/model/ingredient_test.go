package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAmount(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		fraction string
		unit     string
		want     string
	}{
		{"all parts", "2", "1/2", "cup", "2 1/2 cup"},
		{"quantity only", "3", Unset, Unset, "3"},
		{"quantity and unit", "200", Unset, "g", "200 g"},
		{"fraction and unit", "", "1/4", "tsp", "1/4 tsp"},
		{"unit only", "", Unset, "pinch", "pinch"},
		{"all sentinel or empty", "", Unset, Unset, ""},
		{"all empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAmount(tt.quantity, tt.fraction, tt.unit))
		})
	}
}

func TestNewBlankItem(t *testing.T) {
	item := NewBlankItem()

	assert.Empty(t, item.Name)
	assert.Empty(t, item.Amount)
	assert.Equal(t, Unset, item.Fraction)
	assert.Equal(t, Unset, item.Unit)
}

func TestNewSection(t *testing.T) {
	section := NewSection()

	assert.Equal(t, NewSectionTitle, section.Title)
	require.Len(t, section.Items, 1)
	assert.Equal(t, NewBlankItem(), section.Items[0])
}

func TestUpdateItemField(t *testing.T) {
	t.Run("recomputes amount after each edit", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}

		require.NoError(t, UpdateItemField(sections, 0, 0, FieldName, "flour"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldQuantity, "2"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldFraction, "1/2"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldUnit, "cup"))

		item := sections[0].Items[0]
		assert.Equal(t, "flour", item.Name)
		assert.Equal(t, "2 1/2 cup", item.Amount)
	})

	t.Run("clearing back to sentinel removes the part", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldQuantity, "1"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldUnit, "kg"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldUnit, Unset))

		assert.Equal(t, "1", sections[0].Items[0].Amount)
	})

	t.Run("name edits do not affect amount", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldQuantity, "3"))
		require.NoError(t, UpdateItemField(sections, 0, 0, FieldName, "eggs"))

		assert.Equal(t, "3", sections[0].Items[0].Amount)
	})

	t.Run("rejects out of range indexes", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}

		assert.Error(t, UpdateItemField(sections, 1, 0, FieldName, "x"))
		assert.Error(t, UpdateItemField(sections, -1, 0, FieldName, "x"))
		assert.Error(t, UpdateItemField(sections, 0, 5, FieldName, "x"))
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}

		assert.Error(t, UpdateItemField(sections, 0, 0, IngredientField("amount"), "x"))
	})
}

func TestSectionOperations(t *testing.T) {
	t.Run("add section appends default section", func(t *testing.T) {
		sections := []IngredientSection{{Title: "Sauce"}}
		sections = AddSection(sections)

		require.Len(t, sections, 2)
		assert.Equal(t, NewSectionTitle, sections[1].Title)
	})

	t.Run("remove section preserves order of the rest", func(t *testing.T) {
		sections := []IngredientSection{
			{Title: "A"}, {Title: "B"}, {Title: "C"},
		}

		sections, err := RemoveSection(sections, 1)
		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "A", sections[0].Title)
		assert.Equal(t, "C", sections[1].Title)
	})

	t.Run("remove section out of range", func(t *testing.T) {
		_, err := RemoveSection([]IngredientSection{{Title: "A"}}, 3)
		assert.Error(t, err)
	})

	t.Run("duplicate titles are allowed", func(t *testing.T) {
		sections := []IngredientSection{{Title: "Sauce"}}
		require.NoError(t, UpdateSectionTitle(AddSection(sections), 0, "Sauce"))
	})
}

func TestItemOperations(t *testing.T) {
	t.Run("add item appends blank item", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}

		require.NoError(t, AddItem(sections, 0))
		require.Len(t, sections[0].Items, 2)
		assert.Equal(t, NewBlankItem(), sections[0].Items[1])
	})

	t.Run("remove item keeps order", func(t *testing.T) {
		sections := []IngredientSection{{
			Title: "Main",
			Items: []IngredientItem{
				{Name: "first"}, {Name: "second"}, {Name: "third"},
			},
		}}

		require.NoError(t, RemoveItem(sections, 0, 1))
		require.Len(t, sections[0].Items, 2)
		assert.Equal(t, "first", sections[0].Items[0].Name)
		assert.Equal(t, "third", sections[0].Items[1].Name)
	})

	t.Run("remove item out of range", func(t *testing.T) {
		sections := []IngredientSection{NewSection()}

		assert.Error(t, RemoveItem(sections, 0, 7))
		assert.Error(t, RemoveItem(sections, 2, 0))
	})
}

func TestNormalizeSections(t *testing.T) {
	t.Run("blank titles get the default placeholder", func(t *testing.T) {
		sections := NormalizeSections([]IngredientSection{
			{Title: ""},
			{Title: "   "},
			{Title: "Sauce"},
		})

		assert.Equal(t, DefaultSectionTitle, sections[0].Title)
		assert.Equal(t, DefaultSectionTitle, sections[1].Title)
		assert.Equal(t, "Sauce", sections[2].Title)
	})

	t.Run("amounts are recomputed from the parts", func(t *testing.T) {
		sections := NormalizeSections([]IngredientSection{{
			Title: "Main",
			Items: []IngredientItem{
				{Name: "flour", Amount: "stale value", Quantity: "2", Fraction: Unset, Unit: "cup"},
				{Name: "water", Amount: "also stale", Quantity: "", Fraction: Unset, Unit: Unset},
			},
		}})

		assert.Equal(t, "2 cup", sections[0].Items[0].Amount)
		assert.Equal(t, "", sections[0].Items[1].Amount)
	})
}

func TestIngredientSectionsRoundTrip(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		raw, err := EncodeIngredientSections(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("empty column decodes to empty slice", func(t *testing.T) {
		sections, err := DecodeIngredientSections("")
		require.NoError(t, err)
		assert.NotNil(t, sections)
		assert.Empty(t, sections)
	})

	t.Run("order survives the round trip", func(t *testing.T) {
		original := []IngredientSection{
			{Title: "Dough", Items: []IngredientItem{{Name: "flour", Amount: "2 cup", Quantity: "2", Unit: "cup"}}},
			{Title: "Topping", Items: []IngredientItem{{Name: "sugar"}, {Name: "cinnamon"}}},
		}

		raw, err := EncodeIngredientSections(original)
		require.NoError(t, err)

		decoded, err := DecodeIngredientSections(raw)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("garbage column is an error", func(t *testing.T) {
		_, err := DecodeIngredientSections("{not json")
		assert.Error(t, err)
	})
}

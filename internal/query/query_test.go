package query

import (
	"testing"

	"github.com/muzeyka/artsearch.git/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  *models.FilterSelection
		want string
	}{
		{
			name: "Nil selection returns empty string",
			sel:  nil,
			want: "",
		},
		{
			name: "Size only",
			sel:  &models.FilterSelection{Size: 12},
			want: "&size=12",
		},
		{
			name: "Single category with two values",
			sel: &models.FilterSelection{
				Size: 12,
				Categories: []models.CategoryFilter{
					{
						Name: "medium",
						Values: []models.CategoryValue{
							{Label: "oil", ID: 1},
							{Label: "acrylic", ID: 2},
						},
					},
				},
			},
			want: "&size=12&medium=1|2",
		},
		{
			name: "Single-valued category serializes without pipe",
			sel: &models.FilterSelection{
				Size: 24,
				Categories: []models.CategoryFilter{
					{
						Name:   "culture",
						Values: []models.CategoryValue{{Label: "dutch", ID: 123}},
					},
				},
			},
			want: "&size=24&culture=123",
		},
		{
			name: "Categories keep their order",
			sel: &models.FilterSelection{
				Size: 12,
				Categories: []models.CategoryFilter{
					{
						Name: "medium",
						Values: []models.CategoryValue{
							{Label: "oil", ID: 2028390},
							{Label: "acrylic", ID: 54321},
						},
					},
					{
						Name:   "period",
						Values: []models.CategoryValue{{Label: "modern", ID: 7}},
					},
				},
			},
			want: "&size=12&medium=2028390|54321&period=7",
		},
		{
			name: "Category without values is skipped",
			sel: &models.FilterSelection{
				Size: 12,
				Categories: []models.CategoryFilter{
					{Name: "medium"},
					{Name: "culture", Values: []models.CategoryValue{{Label: "dutch", ID: 123}}},
				},
			},
			want: "&size=12&culture=123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeSelection(tt.sel))
		})
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		params []models.QueryParam
		want   string
	}{
		{
			name:   "Empty params",
			params: nil,
			want:   "",
		},
		{
			name: "Flat query in key order",
			params: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "medium", Value: "1|2"},
				{Key: "culture", Value: "123"},
			},
			want: "&size=12&medium=1|2&culture=123",
		},
		{
			name: "Values are interpolated without escaping",
			params: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "medium", Value: "1|2|3"},
			},
			want: "&size=12&medium=1|2|3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.params))
		})
	}
}

func TestParseRawQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.QueryParam
	}{
		{
			name: "Empty query",
			raw:  "",
			want: nil,
		},
		{
			name: "Order of parameters is preserved",
			raw:  "size=12&medium=1|2&culture=123",
			want: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "medium", Value: "1|2"},
				{Key: "culture", Value: "123"},
			},
		},
		{
			name: "Escaped pipe is unescaped",
			raw:  "size=12&medium=1%7C2",
			want: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "medium", Value: "1|2"},
			},
		},
		{
			name: "Key without value",
			raw:  "size=12&hasimage",
			want: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "hasimage", Value: ""},
			},
		},
		{
			name: "Keys are taken as is, without unescaping",
			raw:  "size=12&medi%75m=1",
			want: []models.QueryParam{
				{Key: "size", Value: "12"},
				{Key: "medi%75m", Value: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRawQuery(tt.raw))
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	// Параметры, прошедшие через разбор, сериализуются в исходный вид
	raw := "size=12&medium=1|2&culture=123"
	assert.Equal(t, "&"+raw, Serialize(ParseRawQuery(raw)))
}

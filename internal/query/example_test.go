package query_test

import (
	"fmt"

	"github.com/muzeyka/artsearch.git/internal/models"
	"github.com/muzeyka/artsearch.git/internal/query"
)

func ExampleEncodeSelection() {
	sel := &models.FilterSelection{
		Size: 12,
		Categories: []models.CategoryFilter{
			{
				Name: "medium",
				Values: []models.CategoryValue{
					{Label: "oil", ID: 2028390},
					{Label: "acrylic", ID: 54321},
				},
			},
		},
	}

	fmt.Println(query.EncodeSelection(sel))
	// Output:
	// &size=12&medium=2028390|54321
}

func ExampleSerialize() {
	params := []models.QueryParam{
		{Key: "size", Value: "12"},
		{Key: "medium", Value: "1|2"},
		{Key: "culture", Value: "123"},
	}

	fmt.Println(query.Serialize(params))
	// Output:
	// &size=12&medium=1|2&culture=123
}

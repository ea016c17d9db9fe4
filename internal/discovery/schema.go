package discovery

import (
	"github.com/jonathan/opportunity-hub/internal/llm"
	"github.com/jonathan/opportunity-hub/internal/types"
)

// responseFields lists the fields the model must return for every item, in prompt order.
var responseFields = []string{
	"title", "organization", "type", "category", "level",
	"location", "deadline", "isPaid", "url", "description",
}

// responseSchema describes the array the model is asked to produce.
// ids and the verified flag are assigned locally and are not requested.
func responseSchema() *llm.Schema {
	str := func() *llm.Schema { return &llm.Schema{Type: llm.TypeString} }

	return &llm.Schema{
		Type: llm.TypeArray,
		Items: &llm.Schema{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Schema{
				"title":        str(),
				"organization": str(),
				"type":         {Type: llm.TypeString, Enum: stringsOf(types.AllTypes())},
				"category":     {Type: llm.TypeString, Enum: stringsOf(types.AllCategories())},
				"level":        {Type: llm.TypeString, Enum: stringsOf(types.AllLevels())},
				"location":     str(),
				"deadline":     {Type: llm.TypeString, Description: "YYYY-MM-DD format"},
				"isPaid":       {Type: llm.TypeBoolean},
				"url":          str(),
				"description":  str(),
			},
			Required: append([]string(nil), responseFields...),
		},
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Client = (*GeminiClient)(nil)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	client, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestSchema_ToGenai(t *testing.T) {
	schema := &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"title":  {Type: TypeString},
				"isPaid": {Type: TypeBoolean},
				"level":  {Type: TypeString, Enum: []string{"State", "National"}},
			},
			Required: []string{"title", "isPaid", "level"},
		},
	}

	out := schema.toGenai()
	require.NotNil(t, out)
	assert.Equal(t, genai.TypeArray, out.Type)
	require.NotNil(t, out.Items)
	assert.Equal(t, genai.TypeObject, out.Items.Type)
	assert.Equal(t, []string{"title", "isPaid", "level"}, out.Items.Required)
	assert.Equal(t, genai.TypeString, out.Items.Properties["title"].Type)
	assert.Equal(t, genai.TypeBoolean, out.Items.Properties["isPaid"].Type)
	assert.Equal(t, []string{"State", "National"}, out.Items.Properties["level"].Enum)
}

func TestSchema_ToGenaiNil(t *testing.T) {
	var schema *Schema
	assert.Nil(t, schema.toGenai())
	assert.Equal(t, genai.TypeUnspecified, SchemaType("tuple").toGenai())
}

func TestExtractTextFromResponse(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("[{"), genai.Text("}]")}},
			}},
		}
		text, err := extractTextFromResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "[{}]", text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := extractTextFromResponse(nil)
		assert.Error(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		_, err := extractTextFromResponse(resp)
		assert.Error(t, err)
	})
}

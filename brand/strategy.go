// Package brand implements the generation pipeline: one strategy call
// to the text provider, then four fanned-out image calls, merged into a
// single brand identity.
package brand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/brandforge/brandforge/domain"
	"github.com/brandforge/brandforge/openai"
)

// ChatClient is the text-generation side of the provider.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// ImageClient is the image-generation side of the provider.
type ImageClient interface {
	GenerateImage(ctx context.Context, model, prompt string) (string, error)
}

// Ensure the provider client satisfies both sides.
var (
	_ ChatClient  = (*openai.Client)(nil)
	_ ImageClient = (*openai.Client)(nil)
)

// Strategy failure modes. Callers treat both as one generic failure;
// the distinction exists for logs and tests.
var (
	ErrEmptyResponse   = errors.New("provider returned no content")
	ErrInvalidStrategy = errors.New("provider returned an invalid strategy")
)

const strategyPromptTemplate = `You are a creative brand strategist. Create a brand identity for a brand named %q.
Description: %s
Vibe: %s

Return a JSON object with the following structure:
{
  "tagline": "string",
  "colors": ["hex_code_1", "hex_code_2", "hex_code_3", "hex_code_4", "hex_code_5"],
  "typography": [
    { "fontFamily": "string", "usage": "Headings" },
    { "fontFamily": "string", "usage": "Body" }
  ],
  "socialPosts": [
    { "caption": "string" },
    { "caption": "string" },
    { "caption": "string" }
  ],
  "logoPrompt": "A detailed image-generation prompt for a minimal, modern logo for this brand. The prompt should be descriptive and suitable for high-quality generation.",
  "socialImagePrompt": "A detailed image-generation prompt for a high-quality, photorealistic social media lifestyle image featuring the brand's vibe."
}`

// strategySchema validates the provider response shape before it is
// trusted: 5 colors, at least one typography pair, exactly 3
// caption-only posts, and non-empty image prompts.
const strategySchema = `{
  "type": "object",
  "required": ["tagline", "colors", "typography", "socialPosts", "logoPrompt", "socialImagePrompt"],
  "properties": {
    "tagline": {"type": "string", "minLength": 1},
    "colors": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {"type": "string", "minLength": 1}
    },
    "typography": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["fontFamily", "usage"],
        "properties": {
          "fontFamily": {"type": "string", "minLength": 1},
          "usage": {"type": "string", "minLength": 1}
        }
      }
    },
    "socialPosts": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["caption"],
        "properties": {
          "caption": {"type": "string"}
        }
      }
    },
    "logoPrompt": {"type": "string", "minLength": 1},
    "socialImagePrompt": {"type": "string", "minLength": 1}
  }
}`

// StrategyRequester issues the single strategy call and parses the
// structured response. One attempt per invocation, no retry.
type StrategyRequester struct {
	chat   ChatClient
	model  string
	schema *jsonschema.Schema
}

// NewStrategyRequester creates a strategy requester for the given model.
func NewStrategyRequester(chat ChatClient, model string) (*StrategyRequester, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource("strategy.schema.json", strings.NewReader(strategySchema)); err != nil {
		return nil, fmt.Errorf("strategy schema load failed: %w", err)
	}
	schema, err := c.Compile("strategy.schema.json")
	if err != nil {
		return nil, fmt.Errorf("strategy schema compile failed: %w", err)
	}
	return &StrategyRequester{chat: chat, model: model, schema: schema}, nil
}

// Generate requests one structured strategy for the given inputs. The
// caller is expected to have validated the request fields.
func (r *StrategyRequester) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.BrandStrategy, error) {
	prompt := fmt.Sprintf(strategyPromptTemplate, req.BrandName, req.Description, req.Vibe)

	resp, err := r.chat.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("strategy request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}
	content := resp.Choices[0].Message.Content

	var raw interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, err)
	}
	if err := r.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, err)
	}

	var strategy domain.BrandStrategy
	if err := json.Unmarshal([]byte(content), &strategy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, err)
	}

	return &strategy, nil
}

// Package llm generates ai suggestion cards with an OpenAI compatible chat completion api
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/feedwall/pkg/config"
	"github.com/umputun/feedwall/pkg/domain"
)

// errBadJSON marks a response that could not be parsed, such responses are retried
var errBadJSON = errors.New("bad json in llm response")

const maxAttempts = 3

// Suggester asks an LLM for ai suggestion cards
type Suggester struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewSuggester creates a new LLM suggestion generator
func NewSuggester(cfg config.LLMConfig) *Suggester {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	if cfg.Count <= 0 {
		cfg.Count = 3
	}

	return &Suggester{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for suggestion generation
const defaultSystemPrompt = `You are a creative assistant for a visual discovery wall mixing ads, live trades and auctions.
Suggest short image-generation ideas a visitor might want to try.

Each suggestion should contain:
- id: short unique slug, lowercase letters, digits and dashes only
- title: catchy card title (max 40 chars)
- prompt: image generation prompt (max 200 chars), concrete and visual
- imageUrl: leave empty unless you know a public preview image url

Never repeat ideas within one response.`

// suggestion is the llm response shape for a single card
type suggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Prompt   string `json:"prompt"`
	ImageURL string `json:"imageUrl"`
}

// Suggest asks the LLM for a fresh set of suggestion cards
func (s *Suggester) Suggest(ctx context.Context) ([]domain.AiSuggestion, error) {
	prompt := s.buildPrompt()

	// retry up to maxAttempts times if we get invalid JSON
	var lastErr error
	for range maxAttempts {
		chatReq := openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Temperature: float32(s.config.Temperature),
			MaxTokens:   s.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		}

		content, err := s.complete(ctx, chatReq)
		if err != nil {
			return nil, err
		}

		res, err := s.parseResponse(content)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !errors.Is(err, errBadJSON) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// complete sends a single chat completion request, limited by the configured timeout
func (s *Suggester) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// buildPrompt creates the user prompt for the LLM
func (s *Suggester) buildPrompt() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggest %d image ideas for the discovery wall.\n", s.config.Count))
	sb.WriteString(`Respond with a JSON object containing a 'suggestions' array of suggestion objects.`)
	return sb.String()
}

// parseResponse parses the LLM response into suggestions, dropping the ones without title or prompt
func (s *Suggester) parseResponse(content string) ([]domain.AiSuggestion, error) {
	var resp struct {
		Suggestions []suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadJSON, err)
	}

	res := make([]domain.AiSuggestion, 0, len(resp.Suggestions))
	for i, sg := range resp.Suggestions {
		if strings.TrimSpace(sg.Title) == "" || strings.TrimSpace(sg.Prompt) == "" {
			continue
		}
		id := strings.TrimSpace(sg.ID)
		if id == "" {
			id = fmt.Sprintf("ai-%d", i+1)
		}
		res = append(res, domain.AiSuggestion{ID: id, Title: sg.Title, Prompt: sg.Prompt, ImageURL: sg.ImageURL})
		if len(res) == s.config.Count {
			break
		}
	}
	if len(res) == 0 {
		return nil, errors.New("llm returned no usable suggestions")
	}
	return res, nil
}

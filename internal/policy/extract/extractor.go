package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/verahq/vera-backend/pkg/circuitbreaker"
)

const (
	systemPrompt = "You are an HR policy analyst. Extract concise policy clauses from the provided text. Return exact wording when possible."
	promptFormat = "Extract 3-5 key clauses from this policy text. Return JSON with clauses[].text only.\n\nPolicy text:\n%s"

	// maxClauses caps the number of clauses taken from one response.
	maxClauses = 5
	// minClauseLength rejects fragments the model should not have returned.
	minClauseLength = 10
)

// Extractor produces candidate policy clauses from raw document text. A
// failed extraction returns an error; callers are expected to fall back to a
// placeholder clause rather than abort ingestion.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// clausePayload is the JSON shape the model is instructed to return.
type clausePayload struct {
	Clauses []struct {
		Text string `json:"text"`
	} `json:"clauses"`
}

// OpenAIExtractor asks a chat completion model for 3-5 near-verbatim clauses.
// It makes a single attempt per document; the optional circuit breaker stops
// hammering the backend when it is down.
type OpenAIExtractor struct {
	client  *openai.Client
	model   string
	breaker *circuitbreaker.CircuitBreaker
}

// NewOpenAIExtractor creates an extractor for the given model. breaker may be
// nil to call the backend unguarded.
func NewOpenAIExtractor(apiKey, model string, breaker *circuitbreaker.CircuitBreaker) *OpenAIExtractor {
	cfg := openai.DefaultConfig(apiKey)
	return &OpenAIExtractor{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		breaker: breaker,
	}
}

// Extract issues one generation request and validates the response shape.
// Any backend or parse failure surfaces as an error; no retries are made.
func (e *OpenAIExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptFormat, text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	call := func() (interface{}, error) {
		return e.client.CreateChatCompletion(ctx, req)
	}

	var resp openai.ChatCompletionResponse
	if e.breaker != nil {
		res, err := e.breaker.Execute(call)
		if err != nil {
			return nil, fmt.Errorf("clause extraction call failed: %w", err)
		}
		resp = res.(openai.ChatCompletionResponse)
	} else {
		res, err := call()
		if err != nil {
			return nil, fmt.Errorf("clause extraction call failed: %w", err)
		}
		resp = res.(openai.ChatCompletionResponse)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("clause extraction returned no choices")
	}
	return parseClauses(resp.Choices[0].Message.Content)
}

// parseClauses validates the model output against the expected shape and
// returns at most maxClauses clause texts.
func parseClauses(raw string) ([]string, error) {
	var payload clausePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("malformed clause payload: %w", err)
	}

	clauses := make([]string, 0, maxClauses)
	for _, clause := range payload.Clauses {
		text := strings.TrimSpace(clause.Text)
		if len(text) < minClauseLength {
			continue
		}
		clauses = append(clauses, text)
		if len(clauses) == maxClauses {
			break
		}
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("no usable clauses in response")
	}
	return clauses, nil
}

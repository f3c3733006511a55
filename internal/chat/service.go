package chat

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/verahq/vera-backend/pkg/logger"
)

const (
	baseSystemPrompt = "You are Vera, an HR operations assistant. Provide concise, actionable responses and ask clarifying questions when needed."

	defaultTemperature float32 = 0.2
	defaultMaxTokens           = 400
)

// ErrNotConfigured is returned when no OpenAI credentials were provided.
var ErrNotConfigured = errors.New("OpenAI is not configured yet. Add OPENAI_API_KEY to enable live responses.")

// Message is one turn of the conversation as sent by the console.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a completion request with optional grounding context.
type Request struct {
	Messages        []Message `json:"messages"`
	Model           string    `json:"model"`
	Temperature     *float32  `json:"temperature"`
	MaxTokens       *int      `json:"maxTokens"`
	PolicyContext   string    `json:"policyContext"`
	DocumentContext string    `json:"documentContext"`
}

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest, opts ...openai.ChatCompletionRequestOption) (openai.ChatCompletionResponse, error)
}

// Service proxies general chat turns to the language model, prefixing the
// assistant persona and whatever policy or document context the caller
// attached.
type Service struct {
	client completionClient
	model  string
	log    *logger.Logger
}

// NewService creates the chat service. A nil or unconfigured setup is
// represented by a nil *Service; callers check with Configured.
func NewService(apiKey, model string, log *logger.Logger) *Service {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClientWithConfig(openai.DefaultConfig(apiKey))
	return &Service{client: client, model: model, log: log}
}

// Configured reports whether live completions are available.
func (s *Service) Configured() bool {
	return s != nil && s.client != nil
}

// Complete runs one chat completion and returns the assistant reply.
func (s *Service) Complete(ctx context.Context, req Request) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	model := req.Model
	if model == "" {
		model = s.model
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(req.PolicyContext, req.DocumentContext),
	})
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func systemPrompt(policyContext, documentContext string) string {
	prompt := baseSystemPrompt
	if policyContext != "" {
		prompt += "\n\nPolicy context (cite when relevant):\n" + policyContext
	}
	if documentContext != "" {
		prompt += "\n\nAttached document context (cite when relevant):\n" + documentContext
	}
	return prompt
}

package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Update my address", IntentAddressUpdate},
		{"please UPDATE MY ADDRESS today", IntentAddressUpdate},
		{"What is the promotion criteria?", IntentPromotion},
		{"when will I get promoted", IntentPromotion},
		{"How many days of leave?", IntentLeaveBalance},
		{"what is my leave balance", IntentLeaveBalance},
		{"Can I expense coworking space?", IntentPolicy},
		{"remote work rules", IntentPolicy},
		{"hello there", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// "promotion policy" matches both the promotion and policy rules; the
	// promotion rule is checked first.
	if got := Classify("what is the promotion policy"); got != IntentPromotion {
		t.Errorf("Classify(promotion policy) = %s, want %s", got, IntentPromotion)
	}
	// An address update mentioning a policy still opens the address flow.
	if got := Classify("update my address per the relocation policy"); got != IntentAddressUpdate {
		t.Errorf("Classify(address + policy) = %s, want %s", got, IntentAddressUpdate)
	}
}

type fakeCompletionClient struct {
	req   openai.ChatCompletionRequest
	reply string
	err   error
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest, opts ...openai.ChatCompletionRequestOption) (openai.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
		},
	}, nil
}

func TestCompleteBuildsSystemPrompt(t *testing.T) {
	client := &fakeCompletionClient{reply: "You have 12 days left."}
	svc := &Service{client: client, model: "gpt-4o-mini"}

	reply, err := svc.Complete(context.Background(), Request{
		Messages:        []Message{{Role: "user", Content: "How much leave do I have?"}},
		PolicyContext:   "- Annual leave accrues monthly (leave-policy.pdf)",
		DocumentContext: "contract excerpt",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "You have 12 days left." {
		t.Errorf("reply = %q", reply)
	}

	if client.req.Model != "gpt-4o-mini" {
		t.Errorf("model = %s", client.req.Model)
	}
	if client.req.Temperature == nil || *client.req.Temperature != defaultTemperature || client.req.MaxTokens != defaultMaxTokens {
		t.Errorf("defaults not applied: temp=%v maxTokens=%d", client.req.Temperature, client.req.MaxTokens)
	}
	if len(client.req.Messages) != 2 {
		t.Fatalf("expected system + user message, got %d", len(client.req.Messages))
	}
	system := client.req.Messages[0]
	if system.Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %s", system.Role)
	}
	for _, want := range []string{"You are Vera", "Policy context (cite when relevant):", "Attached document context (cite when relevant):"} {
		if !strings.Contains(system.Content, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestCompleteOverrides(t *testing.T) {
	client := &fakeCompletionClient{reply: "ok"}
	svc := &Service{client: client, model: "gpt-4o-mini"}

	temperature := float32(0.7)
	maxTokens := 100
	_, err := svc.Complete(context.Background(), Request{
		Messages:    []Message{{Role: "user", Content: "hi"}},
		Model:       "gpt-4o",
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if client.req.Model != "gpt-4o" || client.req.Temperature == nil || *client.req.Temperature != temperature || client.req.MaxTokens != maxTokens {
		t.Errorf("overrides not applied: %+v", client.req)
	}
}

func TestCompleteUnconfigured(t *testing.T) {
	var svc *Service
	if svc.Configured() {
		t.Error("nil service reports configured")
	}
	if _, err := svc.Complete(context.Background(), Request{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

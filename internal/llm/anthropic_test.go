package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-haiku",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func anthropicReply(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 180, "output_tokens": 42},
	}
}

func anthropicError(w http.ResponseWriter, status int, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": kind},
	})
}

func TestAnthropicProvider_Explanation(t *testing.T) {
	var got map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicReply(hintReply, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:   "Ты добрый помощник в детской викторине.",
		Messages: []Message{{Role: RoleUser, Content: "Ответ ребёнка: 5. Правильный ответ: 6."}},
		Schema:   hintSchema,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != hintReply {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 222 || resp.StopReason != StopEnd {
		t.Errorf("usage = %+v, stop = %q", resp.Usage, resp.StopReason)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q", resp.Model)
	}

	if got["model"] != "claude-haiku-4-5" {
		t.Errorf("requested model = %v, want the expanded alias", got["model"])
	}
	if got["max_tokens"] != float64(defaultMaxTokens) {
		t.Errorf("max_tokens = %v, want default %d", got["max_tokens"], defaultMaxTokens)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicReply(`{"encouragement":"Мол`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "почему?"}},
		Schema:    hintSchema,
		MaxTokens: 8,
	})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("got %T (%v), want *ErrMaxTokensExceeded", err, err)
	}
}

func TestAnthropicProvider_NotJSON(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicReply("Молодец!", "end_turn"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "почему?"}},
		Schema:   hintSchema,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T (%v), want *ErrInvalidResponse", err, err)
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	calls := 0
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Retry-After", "7")
		anthropicError(w, http.StatusTooManyRequests, "rate_limit_error")
	})

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "почему?"}},
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %T (%v), want *ErrRateLimit", err, err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s, want 7s", rl.RetryAfter)
	}
	if calls != 1 {
		t.Errorf("SDK retried on its own: %d calls", calls)
	}
}

func TestAnthropicProvider_Overloaded(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		anthropicError(w, 529, "overloaded_error")
	})

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "почему?"}},
	})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %T (%v), want *ErrProviderUnavailable", err, err)
	}
	if !Transient(err) {
		t.Error("overload should be retryable")
	}
}

func TestNewAnthropicProvider(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("missing key accepted")
	}

	tests := map[string]string{
		"claude-haiku":             "claude-haiku-4-5",
		"claude-sonnet":            "claude-sonnet-4-5",
		"claude-sonnet-4-20250514": "claude-sonnet-4-20250514",
	}
	for alias, want := range tests {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: alias})
		if err != nil {
			t.Fatalf("%s: %v", alias, err)
		}
		if p.ModelID() != want {
			t.Errorf("ModelID(%q) = %q, want %q", alias, p.ModelID(), want)
		}
	}
}

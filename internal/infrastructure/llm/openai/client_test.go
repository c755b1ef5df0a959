package openai

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/domain/schema"
	"github.com/ersonp/mdchat/internal/infrastructure/config"
)

// capturedRequest is the subset of the chat completion payload the tests inspect.
type capturedRequest struct {
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string          `json:"name"`
			Strict bool            `json:"strict"`
			Schema json.RawMessage `json:"schema"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

type fakeOpenAI struct {
	server  *httptest.Server
	calls   atomic.Int32
	last    capturedRequest
	auth    string
	path    string
	content string
	status  int
}

func newFakeOpenAI(t *testing.T, content string) *fakeOpenAI {
	t.Helper()
	f := &fakeOpenAI{content: content, status: http.StatusOK}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.auth = r.Header.Get("Authorization")
		f.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&f.last)

		w.Header().Set("Content-Type", "application/json")
		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "upstream exploded", "type": "server_error"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   f.last.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": f.content},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeOpenAI) baseURL() string {
	return f.server.URL + "/v1"
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LLMConfig
		wantModel string
	}{
		{name: "default model", cfg: config.LLMConfig{}, wantModel: "gpt-4o"},
		{name: "configured model", cfg: config.LLMConfig{Model: "gpt-4.1-mini"}, wantModel: "gpt-4.1-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.cfg)
			require.NotNil(t, client)
			assert.Equal(t, tt.wantModel, client.Model())
		})
	}
}

func TestClient_Complete(t *testing.T) {
	fake := newFakeOpenAI(t, "<FIT> looks right")
	client := NewClient(config.LLMConfig{Model: "gpt-4o-mini", BaseURL: fake.baseURL()})

	content, err := client.Complete(t.Context(), ports.CompletionRequest{
		APIKey: "sk-test",
		Messages: []ports.Message{
			{Role: ports.RoleUser, Content: "first"},
			{Role: ports.RoleUser, Content: "second"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "<FIT> looks right", content)
	assert.Equal(t, "/v1/chat/completions", fake.path)
	assert.Equal(t, "Bearer sk-test", fake.auth)
	assert.Equal(t, "gpt-4o-mini", fake.last.Model)
	require.NotNil(t, fake.last.Temperature, "temperature must be sent explicitly")
	assert.InDelta(t, 0.0, *fake.last.Temperature, 1e-9)
	require.Len(t, fake.last.Messages, 2)
	assert.Equal(t, "user", fake.last.Messages[0].Role)
	assert.Equal(t, "second", fake.last.Messages[1].Content)
	assert.Nil(t, fake.last.ResponseFormat)
}

func TestClient_Complete_StructuredResponse(t *testing.T) {
	fake := newFakeOpenAI(t, "```json\n{\"items\":[\"a\",\"b\"]}\n```")
	client := NewClient(config.LLMConfig{BaseURL: fake.baseURL()})

	item, err := schema.Parse(`{"type":"string"}`)
	require.NoError(t, err)

	content, err := client.Complete(t.Context(), ports.CompletionRequest{
		APIKey:   "sk-test",
		Messages: []ports.Message{{Role: ports.RoleUser, Content: "a and b"}},
		Schema: &ports.ResponseSchema{
			Name:   "response",
			Schema: schema.WrapItems(item),
			Strict: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"items":["a","b"]}`, content)

	require.NotNil(t, fake.last.ResponseFormat)
	assert.Equal(t, "json_schema", fake.last.ResponseFormat.Type)
	assert.Equal(t, "response", fake.last.ResponseFormat.JSONSchema.Name)
	assert.True(t, fake.last.ResponseFormat.JSONSchema.Strict)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {"items": {"type": "array", "items": {"type": "string"}}},
		"required": ["items"],
		"additionalProperties": false
	}`, string(fake.last.ResponseFormat.JSONSchema.Schema))
}

func TestClient_Complete_MissingAPIKey(t *testing.T) {
	fake := newFakeOpenAI(t, "unused")
	client := NewClient(config.LLMConfig{BaseURL: fake.baseURL()})

	_, err := client.Complete(t.Context(), ports.CompletionRequest{
		Messages: []ports.Message{{Role: ports.RoleUser, Content: "hi"}},
	})

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	fake := newFakeOpenAI(t, "")
	fake.status = http.StatusInternalServerError
	client := NewClient(config.LLMConfig{BaseURL: fake.baseURL()})

	_, err := client.Complete(t.Context(), ports.CompletionRequest{
		APIKey:   "sk-test",
		Messages: []ports.Message{{Role: ports.RoleUser, Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling OpenAI")

	var apiErr *openai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatusCode)
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON",
			input:    `{"triplets": []}`,
			expected: `{"triplets": []}`,
		},
		{
			name:     "JSON with json code block",
			input:    "```json\n{\"triplets\": []}\n```",
			expected: `{"triplets": []}`,
		},
		{
			name:     "JSON with plain code block",
			input:    "```\n{\"triplets\": []}\n```",
			expected: `{"triplets": []}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\":1}\n  ",
			expected: `{"a":1}`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}

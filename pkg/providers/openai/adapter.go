package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/harunnryd/toolbelt/pkg/errorsx"
	"github.com/harunnryd/toolbelt/pkg/llm"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config holds the vendor settings decoded from configuration.
type Config struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Adapter speaks the OpenAI-compatible chat completions protocol with
// function tools.
type Adapter struct {
	client *resty.Client
	model  string
}

func NewAdapter(cfg Config) *Adapter {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	client := resty.New().
		SetBaseURL(base).
		SetTimeout(60*time.Second).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &Adapter{client: client, model: model}
}

func (a *Adapter) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type chatTool struct {
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Tools    []chatTool    `json:"tools,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		FinishReason string `json:"finish_reason"`
		Message      struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

func (a *Adapter) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	body := chatRequest{Model: a.model}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Task})
	for _, t := range req.Tools {
		body.Tools = append(body.Tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Schema,
			},
		})
	}

	var out chatResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return llm.Response{}, errorsx.Wrap(err, errorsx.ReasonSelectorGenerate)
	}
	if resp.IsError() {
		err := fmt.Errorf("openai status %s: %s", resp.Status(), resp.String())
		return llm.Response{}, errorsx.Wrap(err, errorsx.ReasonSelectorGenerate)
	}
	if len(out.Choices) == 0 {
		return llm.Response{}, errorsx.Wrap(errors.New("no choices in response"), errorsx.ReasonSelectorGenerate)
	}

	first := out.Choices[0]
	result := llm.Response{Text: first.Message.Content, FinishReason: first.FinishReason}
	for _, tc := range first.Message.ToolCalls {
		args := map[string]any{}
		if tc.Function.Arguments != "" {
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
		}
		result.ToolCalls = append(result.ToolCalls, llm.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: args,
		})
	}
	return result, nil
}

package prompt

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// GatewayOptions carry the fixed attribution headers OpenRouter expects and
// the base URL, which tests point at a stub server.
type GatewayOptions struct {
	BaseURL string
	Referer string
	Title   string
}

// Gateway performs one blocking chat-completion call per submission.
// Every failure is contained here and turned into a displayable string; the
// call never raises past this boundary. No retry, no backoff.
type Gateway struct {
	opts GatewayOptions
}

func NewGateway(opts GatewayOptions) *Gateway {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	return &Gateway{opts: opts}
}

// headerTransport attaches the OpenRouter attribution headers to every
// outbound request.
type headerTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(req)
}

func (g *Gateway) client(apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = g.opts.BaseURL
	config.HTTPClient = &http.Client{
		Transport: &headerTransport{
			referer: g.opts.Referer,
			title:   g.opts.Title,
			base:    http.DefaultTransport,
		},
	}
	return openai.NewClientWithConfig(config)
}

// Complete sends the built request with the given API key and returns a
// displayable string: " Response: <content>" on success, " Error: <cause>"
// on any failure.
func (g *Gateway) Complete(ctx context.Context, apiKey string, req Request) string {
	resp, err := g.client(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	})
	if err != nil {
		return fmt.Sprintf(" Error: %s", err.Error())
	}
	if len(resp.Choices) == 0 {
		return " Error: empty response from provider"
	}
	return fmt.Sprintf(" Response: %s", resp.Choices[0].Message.Content)
}

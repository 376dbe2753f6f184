package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const (
	// OpenAIEndpoint is the hosted chat-completions endpoint.
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultOpenAIModel is the model used when none is configured.
	DefaultOpenAIModel = "gpt-4"
	// systemMessage pins the hosted model to JSON-only answers.
	systemMessage = "You are an expert resume writer. Always respond with valid JSON only."

	// Sampling parameters are fixed per backend, not exposed to callers.
	maxOutputTokens = 2000
	temperature     = 0.3
)

// Completer is the contract between the pipeline and a text-generation
// backend: one prompt in, one raw response text out. No streaming, no
// multi-turn state, no retry.
type Completer interface {
	Complete(ctx context.Context, prompt string) (responseText string, err error)
}

// OpenAIClient talks to the hosted chat-completions API.
type OpenAIClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewOpenAIClient creates a hosted-backend client. No request timeout is
// configured; callers wanting bounded latency supply a context deadline.
func NewOpenAIClient(apiKey, model string) (client *OpenAIClient) {
	if model == "" {
		model = DefaultOpenAIModel
	}
	client = &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		endpoint:   OpenAIEndpoint,
		httpClient: &http.Client{},
	}
	return client
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the chat-completions response body.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends the prompt and returns the model's single response text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (responseText string, err error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	}

	var body []byte
	body, err = json.Marshal(reqBody)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal completion request")
		return responseText, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	var chatResp chatResponse
	err = json.Unmarshal(respBody, &chatResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse completion response: %s", string(respBody))
		return responseText, err
	}

	if len(chatResp.Choices) == 0 {
		err = errors.New("no choices in completion response")
		return responseText, err
	}

	responseText = chatResp.Choices[0].Message.Content

	return responseText, err
}

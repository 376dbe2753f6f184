package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultOllamaURL is the usual local Ollama address.
	DefaultOllamaURL = "http://localhost:11434"
	// DefaultOllamaModel is used when no model is configured.
	DefaultOllamaModel = "llama3"
)

// OllamaClient talks to a locally reachable inference endpoint over plain
// HTTP. No authentication.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaClient creates a local-backend client. As with the hosted client,
// the request deadline comes from the caller's context.
func NewOllamaClient(baseURL, model string) (client *OllamaClient) {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	client = &OllamaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}
	return client
}

// generateRequest is the JSON body for POST /api/generate.
type generateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// generateResponse is the JSON returned by POST /api/generate (non-streaming).
type generateResponse struct {
	Response string `json:"response"`
}

// Complete sends the prompt to the local endpoint and returns the response
// field of the reply.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (responseText string, err error) {
	reqBody := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]interface{}{
			"temperature": temperature,
		},
	}

	var body []byte
	body, err = json.Marshal(reqBody)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal generate request")
		return responseText, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

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
		err = errors.Errorf("generate request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	var genResp generateResponse
	err = json.Unmarshal(respBody, &genResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse generate response: %s", string(respBody))
		return responseText, err
	}

	if genResp.Response == "" {
		err = errors.New("empty response field in generate reply")
		return responseText, err
	}

	responseText = genResp.Response

	return responseText, err
}

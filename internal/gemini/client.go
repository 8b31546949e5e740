package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"prompt-console/internal/credential"
	"prompt-console/internal/domain"
	"prompt-console/internal/message"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
)

// Client talks to the Google Generative Language REST API. It implements
// credential.CatalogClient and message.GeneratorClient.
type Client struct {
	http    *resty.Client
	baseURL string
	model   string
}

// NewClient is the constructor for the client. Empty arguments fall back to
// the production endpoint and default model.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		http:    resty.New(),
		baseURL: baseURL,
		model:   model,
	}
}

// --- wire types ---

type listModelsResponse struct {
	Models []modelEntry `json:"models"`
}

type modelEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type generateContentRequest struct {
	Contents []contentEntry `json:"contents"`
}

type contentEntry struct {
	Parts []partEntry `json:"parts"`
}

type partEntry struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []candidateEntry `json:"candidates"`
}

type candidateEntry struct {
	Content contentEntry `json:"content"`
}

// errorEnvelope is the API's standard error body.
type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ListModels implements credential.CatalogClient.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]credential.Model, error) {
	var out listModelsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", apiKey).
		SetResult(&out).
		Get(c.baseURL + "/models")

	if err != nil {
		return nil, fmt.Errorf("could not reach model catalog: %w", err)
	}
	if resp.IsError() {
		return nil, decodeAPIError(resp)
	}

	models := make([]credential.Model, len(out.Models))
	for i, m := range out.Models {
		models[i] = credential.Model{
			Name:        m.Name,
			DisplayName: m.DisplayName,
		}
	}
	return models, nil
}

// GenerateContent implements message.GeneratorClient.
func (c *Client) GenerateContent(ctx context.Context, apiKey, prompt string) (*message.GenerationResponse, error) {
	body := generateContentRequest{
		Contents: []contentEntry{
			{Parts: []partEntry{{Text: prompt}}},
		},
	}

	var out generateContentResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))

	if err != nil {
		return nil, fmt.Errorf("could not reach generation endpoint: %w", err)
	}
	if resp.IsError() {
		return nil, decodeAPIError(resp)
	}

	return convertResponse(&out), nil
}

// convertResponse maps the wire envelope onto the client-facing types.
func convertResponse(out *generateContentResponse) *message.GenerationResponse {
	converted := &message.GenerationResponse{
		Candidates: make([]message.Candidate, len(out.Candidates)),
	}
	for i, candidate := range out.Candidates {
		parts := make([]message.Part, len(candidate.Content.Parts))
		for j, part := range candidate.Content.Parts {
			parts[j] = message.Part{Text: part.Text}
		}
		converted.Candidates[i] = message.Candidate{
			Content: message.Content{Parts: parts},
		}
	}
	return converted
}

// decodeAPIError turns a non-2xx response into a domain.ServiceError. When
// the body is not the API's error envelope the HTTP status stands in for
// the message.
func decodeAPIError(resp *resty.Response) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != nil {
		return &domain.ServiceError{
			Message: envelope.Error.Message,
			Code:    envelope.Error.Code,
			Status:  envelope.Error.Status,
		}
	}

	return &domain.ServiceError{
		Message: http.StatusText(resp.StatusCode()),
		Code:    resp.StatusCode(),
	}
}

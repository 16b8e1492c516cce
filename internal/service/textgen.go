package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sampling constants for fallback generation. These are tuned values, not
// derived: nucleus sampling keeps outputs on-template while the temperature
// leaves room for novel recipes.
const (
	generationMaxLength   = 1024
	generationTopK        = 50
	generationTopP        = 0.9
	generationTemperature = 0.8
	generationNumReturns  = 1
)

// GenerationClient calls a text-generation inference server hosting the
// fine-tuned recipe model.
type GenerationClient struct {
	baseURL string
	client  *http.Client
}

// NewGenerationClient creates a new GenerationClient instance
func NewGenerationClient(baseURL string) *GenerationClient {
	return &GenerationClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type generationRequest struct {
	Prompt             string  `json:"prompt"`
	MaxLength          int     `json:"max_length"`
	NumReturnSequences int     `json:"num_return_sequences"`
	DoSample           bool    `json:"do_sample"`
	TopK               int     `json:"top_k"`
	TopP               float64 `json:"top_p"`
	Temperature        float64 `json:"temperature"`
}

type generationResponse struct {
	Generated []string `json:"generated"`
}

// Generate requests sampled completions for the prompt and returns the first
// one. The server may return several candidates; only the first is used.
func (g *GenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generationRequest{
		Prompt:             prompt,
		MaxLength:          generationMaxLength,
		NumReturnSequences: generationNumReturns,
		DoSample:           true,
		TopK:               generationTopK,
		TopP:               generationTopP,
		Temperature:        generationTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result generationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Generated) == 0 {
		return "", fmt.Errorf("no completions returned by generation server")
	}

	return result.Generated[0], nil
}

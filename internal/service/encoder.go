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

// EncoderClient calls a sentence-encoder sidecar. The sidecar hosts the same
// embedding model the corpus was indexed with; mixing models silently breaks
// similarity scores, which is why the encoder is injected rather than chosen
// per request.
type EncoderClient struct {
	baseURL string
	client  *http.Client
}

// NewEncoderClient creates a new EncoderClient instance
func NewEncoderClient(baseURL string) *EncoderClient {
	return &EncoderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type encodeRequest struct {
	Text string `json:"text"`
}

type encodeResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Encode returns the embedding vector for the given text.
func (e *EncoderClient) Encode(ctx context.Context, text string) ([]float32, error) {
	jsonData, err := json.Marshal(encodeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/encode", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("encode request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result encodeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Embedding) == 0 {
		return nil, fmt.Errorf("encoder returned an empty embedding")
	}

	return result.Embedding, nil
}

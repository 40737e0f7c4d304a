package mlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ErrModelNotLoaded is returned when the ML API reports its model is missing.
var ErrModelNotLoaded = errors.New("model not loaded")

// Client handles integration with the Python ML API
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new ML API client
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		url: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type pointRequest struct {
	Avg7Total float64 `json:"avg7_total"`
}

type pointResponse struct {
	Prediction float64 `json:"prediction"`
}

type moodResponse struct {
	PredictedMood string  `json:"predicted_mood"`
	Confidence    float64 `json:"confidence"`
}

// HealthStatus is the ML API health report
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// sendRequest posts a JSON body and decodes the JSON response into out
func (c *Client) sendRequest(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debugf("ML API %s %s response: %s", method, path, string(raw))

	if resp.StatusCode == http.StatusServiceUnavailable {
		return ErrModelNotLoaded
	}
	if resp.StatusCode != http.StatusOK {
		if detail := errorDetail(raw); detail != "" {
			return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, detail)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the message of an error body. Validation errors carry
// a list of details; the first message is used.
func errorDetail(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	detail := gjson.GetBytes(raw, "detail")
	if detail.IsArray() {
		return detail.Get("0.msg").String()
	}
	return detail.String()
}

// Predict returns the next-day expense the remote model predicts for a
// rolling 7-day average
func (c *Client) Predict(ctx context.Context, avgRecent float64) (float64, error) {
	var resp pointResponse
	if err := c.sendRequest(ctx, http.MethodPost, "/predict/expense/point", pointRequest{Avg7Total: avgRecent}, &resp); err != nil {
		return 0, fmt.Errorf("expense prediction: %w", err)
	}
	return resp.Prediction, nil
}

// PredictMood classifies a mood from lifestyle signals and journal text
func (c *Client) PredictMood(ctx context.Context, in models.MoodInput) (string, float64, error) {
	var resp moodResponse
	if err := c.sendRequest(ctx, http.MethodPost, "/predict/mood", in, &resp); err != nil {
		return "", 0, fmt.Errorf("mood prediction: %w", err)
	}
	c.log.Infof("Predicted mood: %s (confidence %.3f)", resp.PredictedMood, resp.Confidence)
	return resp.PredictedMood, resp.Confidence, nil
}

// Health reports whether the ML API is up and has its model loaded
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.sendRequest(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

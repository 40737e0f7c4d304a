package mlapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(srv.URL+"/", 2*time.Second, log)
}

func TestPredict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict/expense/point", r.URL.Path)
		var body pointRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(pointResponse{Prediction: body.Avg7Total * 2})
	})

	got, err := c.Predict(context.Background(), 21.5)
	require.NoError(t, err)
	assert.Equal(t, 43.0, got)
}

func TestPredictModelNotLoaded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail":"Expense model not loaded"}`))
	})

	_, err := c.Predict(context.Background(), 10)
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestPredictServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Prediction failed: shape mismatch"}`))
	})

	_, err := c.Predict(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "boom", errorDetail([]byte(`{"detail":"boom"}`)))
	assert.Equal(t, "field required", errorDetail([]byte(`{"detail":[{"loc":["body","avg7_total"],"msg":"field required"}]}`)))
	assert.Empty(t, errorDetail([]byte(`Internal Server Error`)))
	assert.Empty(t, errorDetail([]byte(`{}`)))
}

func TestPredictMood(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict/mood", r.URL.Path)
		var in models.MoodInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 6.5, in.SleepHours)
		w.Write([]byte(`{"predicted_mood":"Happy","confidence":0.912,"recommendations":[]}`))
	})

	mood, confidence, err := c.PredictMood(context.Background(), models.MoodInput{SleepHours: 6.5, TextInput: "good day"})
	require.NoError(t, err)
	assert.Equal(t, "Happy", mood)
	assert.Equal(t, 0.912, confidence)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"status":"ok","model_loaded":true}`))
	})

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, status.ModelLoaded)
}

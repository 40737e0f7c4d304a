package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Dan9191/easyliving-service/internal/integrations/mlapi"
	"github.com/Dan9191/easyliving-service/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMoodModelUnavailable is returned when no mood model can be reached
var ErrMoodModelUnavailable = errors.New("mood model not loaded")

var moodRecommendations = map[string][]string{
	"happy": {
		"🎉 Keep doing what makes you happy!",
		"💪 Stay active and share positivity with others.",
		"🌿 Journal your positive thoughts daily.",
	},
	"neutral": {
		"🌞 Keep a steady routine of sleep and exercise.",
		"📚 Try mindfulness or a hobby you enjoy.",
		"☕ Watch caffeine and screen time balance.",
	},
	"sad": {
		"💖 Go for a relaxing walk or call a friend.",
		"🧘 Try 10 mins of meditation or deep breathing.",
		"🌿 Track habits regularly, small steps matter.",
	},
	"stressed": {
		"😌 Take short breaks to relax your mind.",
		"🎧 Listen to calming music or nature sounds.",
		"🕯️ Try gentle yoga or a warm bath before bed.",
	},
}

var defaultMoodRecommendations = []string{"🌈 Stay mindful and keep tracking your moods daily."}

// MoodRecommendations returns the advice for a predicted mood
func MoodRecommendations(mood string) []string {
	if recs, ok := moodRecommendations[strings.ToLower(mood)]; ok {
		return recs
	}
	return defaultMoodRecommendations
}

// PredictMood classifies the user's mood and attaches advice
func (s *Service) PredictMood(ctx context.Context, in models.MoodInput) (*models.MoodPrediction, error) {
	if s.mood == nil {
		return nil, ErrMoodModelUnavailable
	}
	mood, confidence, err := s.mood.PredictMood(ctx, in)
	if errors.Is(err, mlapi.ErrModelNotLoaded) {
		return nil, ErrMoodModelUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	mood = cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(mood)))
	return &models.MoodPrediction{
		PredictedMood:   mood,
		Confidence:      math.Round(confidence*1000) / 1000,
		Recommendations: MoodRecommendations(mood),
	}, nil
}


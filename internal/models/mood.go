package models

// MoodInput holds the signals the mood model classifies
type MoodInput struct {
	SleepHours      float64 `json:"sleepHours"`
	ScreenTimeHours float64 `json:"screenTimeHours"`
	ExerciseMinutes float64 `json:"exerciseMinutes"`
	CaffeineMg      float64 `json:"caffeineMg"`
	TextInput       string  `json:"textInput"`
}

// MoodPrediction is the classified mood with advice
type MoodPrediction struct {
	PredictedMood   string   `json:"predicted_mood"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

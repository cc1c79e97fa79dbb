package model

// OptionCount is one frequency bucket of an option-based question.
type OptionCount struct {
	OptionID   string  `json:"optionId"`
	Text       string  `json:"text"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ValueCount is one bucket of a linear-scale histogram.
type ValueCount struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// ScaleStats are the statistics of a linear-scale question. Counts spans
// every integer in [Min,Max] ascending, zero-filled for unrepresented values.
type ScaleStats struct {
	Min     int          `json:"min"`
	Max     int          `json:"max"`
	Average float64      `json:"average"`
	Median  float64      `json:"median"`
	Counts  []ValueCount `json:"counts"`
}

// QuestionStats is the aggregated distribution for one question.
//
// For option-based questions Total counts votes, not respondents: a single
// checkboxes response contributes one vote per selected option. For scale
// questions Total equals ResponseCount.
type QuestionStats struct {
	QuestionID    string       `json:"questionId"`
	Title         string       `json:"title"`
	Type          QuestionType `json:"type"`
	ResponseCount int          `json:"responseCount"`
	Total         int          `json:"total"`

	Options []OptionCount `json:"options,omitempty"`
	Scale   *ScaleStats   `json:"scale,omitempty"`
}

// SurveyStats aggregates every chartable question of a survey.
type SurveyStats struct {
	SurveyID      string          `json:"surveyId"`
	ResponseCount int             `json:"responseCount"`
	Questions     []QuestionStats `json:"questions"`
}

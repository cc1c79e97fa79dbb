package model

import "strings"

// QuestionType discriminates the question variants
type QuestionType string

const (
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeParagraph      QuestionType = "paragraph"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCheckboxes     QuestionType = "checkboxes"
	QuestionTypeDropdown       QuestionType = "dropdown"
	QuestionTypeDate           QuestionType = "date"
	QuestionTypeLinearScale    QuestionType = "linear_scale"
)

// Scale bound limits for linear_scale questions
const (
	ScaleMinLower = 0
	ScaleMinUpper = 1
	ScaleMaxLower = 2
	ScaleMaxUpper = 10
)

// Known reports whether t is one of the seven supported types.
func (t QuestionType) Known() bool {
	switch t {
	case QuestionTypeShortAnswer, QuestionTypeParagraph, QuestionTypeMultipleChoice,
		QuestionTypeCheckboxes, QuestionTypeDropdown, QuestionTypeDate, QuestionTypeLinearScale:
		return true
	}
	return false
}

// HasOptions reports whether t carries an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeCheckboxes, QuestionTypeDropdown:
		return true
	}
	return false
}

// SingleChoice reports whether t takes exactly one selected option.
func (t QuestionType) SingleChoice() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeDropdown
}

// Chartable reports whether responses to t can be aggregated into a chart.
// Text and date questions are tabular-only.
func (t QuestionType) Chartable() bool {
	return t.HasOptions() || t == QuestionTypeLinearScale
}

// Option is a selectable choice belonging to a choice-family question
type Option struct {
	ID   string `json:"id" bson:"id"`
	Text string `json:"text" bson:"text"`
}

// Question is one typed prompt within a survey. The Type field discriminates
// the variant; option and scale fields are only meaningful for their family.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Title    string       `json:"title" bson:"title"`
	Required bool         `json:"required" bson:"required"`
	Type     QuestionType `json:"type" bson:"type"`

	// multiple_choice, checkboxes, dropdown
	Options []Option `json:"options,omitempty" bson:"options,omitempty"`

	// linear_scale
	Min      int    `json:"min,omitempty" bson:"min,omitempty"`
	Max      int    `json:"max,omitempty" bson:"max,omitempty"`
	MinLabel string `json:"minLabel,omitempty" bson:"minLabel,omitempty"`
	MaxLabel string `json:"maxLabel,omitempty" bson:"maxLabel,omitempty"`
}

// HasOption reports whether optionID is one of the question's options.
func (q *Question) HasOption(optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// Validate checks the structural constraints of a single question definition.
// It returns a *DefinitionError naming the offending field, or nil.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return &DefinitionError{QuestionID: q.ID, Field: "title", Reason: "question title is required"}
	}
	if !q.Type.Known() {
		return &DefinitionError{QuestionID: q.ID, Field: "type", Reason: "unknown question type " + string(q.Type)}
	}

	switch {
	case q.Type.HasOptions():
		if len(q.Options) == 0 {
			return &DefinitionError{QuestionID: q.ID, Field: "options", Reason: "at least one option is required"}
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				return &DefinitionError{QuestionID: q.ID, Field: "options", Reason: "option text is required"}
			}
			if _, dup := seen[o.ID]; dup {
				return &DefinitionError{QuestionID: q.ID, Field: "options", Reason: "duplicate option id " + o.ID}
			}
			seen[o.ID] = struct{}{}
		}

	case q.Type == QuestionTypeLinearScale:
		if q.Min < ScaleMinLower || q.Min > ScaleMinUpper {
			return &DefinitionError{QuestionID: q.ID, Field: "min", Reason: "scale min must be 0 or 1"}
		}
		if q.Max < ScaleMaxLower || q.Max > ScaleMaxUpper {
			return &DefinitionError{QuestionID: q.ID, Field: "max", Reason: "scale max must be between 2 and 10"}
		}
		if q.Min >= q.Max {
			return &DefinitionError{QuestionID: q.ID, Field: "min", Reason: "scale min must be less than max"}
		}
	}

	return nil
}

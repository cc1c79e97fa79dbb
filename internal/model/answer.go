package model

import "strings"

// Answer is a single respondent-submitted value for one question. The Type
// field echoes the targeted question's type and selects which value field is
// meaningful: TextValue for short_answer/paragraph, ChoiceValue for
// multiple_choice/dropdown, CheckboxValues for checkboxes, DateValue for
// date, ScaleValue for linear_scale. ScaleValue is a pointer so an absent
// answer can be told apart from a legitimate 0.
type Answer struct {
	QuestionID string       `json:"questionId" bson:"questionId"`
	Type       QuestionType `json:"type" bson:"type"`

	TextValue      string   `json:"textValue,omitempty" bson:"textValue,omitempty"`
	ChoiceValue    string   `json:"choiceValue,omitempty" bson:"choiceValue,omitempty"`
	CheckboxValues []string `json:"checkboxValues,omitempty" bson:"checkboxValues,omitempty"`
	DateValue      string   `json:"dateValue,omitempty" bson:"dateValue,omitempty"`
	ScaleValue     *int     `json:"scaleValue,omitempty" bson:"scaleValue,omitempty"`
}

// Empty reports whether the answer carries no value for its declared type.
func (a *Answer) Empty() bool {
	switch a.Type {
	case QuestionTypeShortAnswer, QuestionTypeParagraph:
		return strings.TrimSpace(a.TextValue) == ""
	case QuestionTypeMultipleChoice, QuestionTypeDropdown:
		return a.ChoiceValue == ""
	case QuestionTypeCheckboxes:
		return len(a.CheckboxValues) == 0
	case QuestionTypeDate:
		return a.DateValue == ""
	case QuestionTypeLinearScale:
		return a.ScaleValue == nil
	}
	return true
}

// ValidateShape checks that the answer's type tag is known and that only the
// value field belonging to that type is populated. It returns a *ShapeError
// or nil. Matching the answer's type against the targeted question's type is
// the validator's job, not the model's.
func (a *Answer) ValidateShape() error {
	if a.QuestionID == "" {
		return &ShapeError{Reason: "questionId is required"}
	}
	if !a.Type.Known() {
		return &ShapeError{QuestionID: a.QuestionID, Reason: "unknown answer type " + string(a.Type)}
	}

	hasText := a.TextValue != ""
	hasChoice := a.ChoiceValue != ""
	hasCheckbox := len(a.CheckboxValues) > 0
	hasDate := a.DateValue != ""
	hasScale := a.ScaleValue != nil

	var foreign bool
	switch a.Type {
	case QuestionTypeShortAnswer, QuestionTypeParagraph:
		foreign = hasChoice || hasCheckbox || hasDate || hasScale
	case QuestionTypeMultipleChoice, QuestionTypeDropdown:
		foreign = hasText || hasCheckbox || hasDate || hasScale
	case QuestionTypeCheckboxes:
		foreign = hasText || hasChoice || hasDate || hasScale
	case QuestionTypeDate:
		foreign = hasText || hasChoice || hasCheckbox || hasScale
	case QuestionTypeLinearScale:
		foreign = hasText || hasChoice || hasCheckbox || hasDate
	}
	if foreign {
		return &ShapeError{QuestionID: a.QuestionID, Reason: "value does not match answer type " + string(a.Type)}
	}
	return nil
}

// Package validate checks a submitted answer batch against a survey's
// question set. Validation is a pure function: first failure wins, nothing
// is persisted or mutated.
package validate

import (
	"fmt"

	"quicksurvey/internal/model"
)

// Code identifies why a submission was rejected.
type Code string

const (
	CodeDuplicateAnswer          Code = "duplicate_answer"
	CodeRequiredAnswerMissing    Code = "required_answer_missing"
	CodeAnswerTypeMismatch       Code = "answer_type_mismatch"
	CodeInvalidOptionSelected    Code = "invalid_option_selected"
	CodeScaleValueOutOfRange     Code = "scale_value_out_of_range"
	CodeAnswerForUnknownQuestion Code = "answer_for_unknown_question"
)

// Rejection is a typed validation failure. QuestionID names the offending
// question so clients can highlight the field; Min/Max are set only for
// scale range failures.
type Rejection struct {
	Code       Code   `json:"code"`
	QuestionID string `json:"questionId"`
	Min        int    `json:"min,omitempty"`
	Max        int    `json:"max,omitempty"`
}

func (r *Rejection) Error() string {
	switch r.Code {
	case CodeScaleValueOutOfRange:
		return fmt.Sprintf("answer for question %s must be between %d and %d", r.QuestionID, r.Min, r.Max)
	case CodeAnswerForUnknownQuestion:
		return fmt.Sprintf("answer provided for unknown question %s", r.QuestionID)
	case CodeDuplicateAnswer:
		return fmt.Sprintf("multiple answers provided for question %s", r.QuestionID)
	case CodeRequiredAnswerMissing:
		return fmt.Sprintf("question %s requires an answer", r.QuestionID)
	case CodeAnswerTypeMismatch:
		return fmt.Sprintf("answer type does not match question %s", r.QuestionID)
	case CodeInvalidOptionSelected:
		return fmt.Sprintf("invalid option selected for question %s", r.QuestionID)
	}
	return fmt.Sprintf("submission rejected (%s, question %s)", r.Code, r.QuestionID)
}

// Batch validates answers against questions and returns nil on acceptance or
// the first *Rejection found. Survey publication state is the caller's
// precondition, checked before this function runs.
//
// Checks run in a fixed order: duplicate question ids in the batch are
// rejected outright while building the answer lookup, then each question is
// checked in declaration order (required/empty, type match, per-type value),
// and finally the batch is scanned for answers targeting unknown questions.
func Batch(questions []model.Question, answers []model.Answer) *Rejection {
	byQuestion := make(map[string]*model.Answer, len(answers))
	for i := range answers {
		a := &answers[i]
		if _, dup := byQuestion[a.QuestionID]; dup {
			return &Rejection{Code: CodeDuplicateAnswer, QuestionID: a.QuestionID}
		}
		byQuestion[a.QuestionID] = a
	}

	for i := range questions {
		q := &questions[i]
		answer, ok := byQuestion[q.ID]

		if q.Required && (!ok || answer.Empty()) {
			return &Rejection{Code: CodeRequiredAnswerMissing, QuestionID: q.ID}
		}
		if !ok {
			continue
		}

		if answer.Type != q.Type {
			return &Rejection{Code: CodeAnswerTypeMismatch, QuestionID: q.ID}
		}

		// Value checks apply only to non-empty values: an optional question
		// answered with an empty value is treated as unanswered.
		switch {
		case q.Type.SingleChoice():
			if answer.ChoiceValue != "" && !q.HasOption(answer.ChoiceValue) {
				return &Rejection{Code: CodeInvalidOptionSelected, QuestionID: q.ID}
			}
		case q.Type == model.QuestionTypeCheckboxes:
			for _, optionID := range answer.CheckboxValues {
				if !q.HasOption(optionID) {
					return &Rejection{Code: CodeInvalidOptionSelected, QuestionID: q.ID}
				}
			}
		case q.Type == model.QuestionTypeLinearScale:
			if answer.ScaleValue != nil {
				if v := *answer.ScaleValue; v < q.Min || v > q.Max {
					return &Rejection{Code: CodeScaleValueOutOfRange, QuestionID: q.ID, Min: q.Min, Max: q.Max}
				}
			}
		}
		// Text and date values have no shape beyond required/empty: a
		// non-ISO date string is accepted as-is.
	}

	for i := range answers {
		questionID := answers[i].QuestionID
		known := false
		for j := range questions {
			if questions[j].ID == questionID {
				known = true
				break
			}
		}
		if !known {
			return &Rejection{Code: CodeAnswerForUnknownQuestion, QuestionID: questionID}
		}
	}

	return nil
}

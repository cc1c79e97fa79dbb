package model

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestAnswerEmpty(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"text present", Answer{Type: QuestionTypeShortAnswer, TextValue: "hi"}, false},
		{"text blank", Answer{Type: QuestionTypeShortAnswer, TextValue: "   "}, true},
		{"paragraph missing", Answer{Type: QuestionTypeParagraph}, true},
		{"choice present", Answer{Type: QuestionTypeMultipleChoice, ChoiceValue: "opt-a"}, false},
		{"choice missing", Answer{Type: QuestionTypeDropdown}, true},
		{"checkboxes present", Answer{Type: QuestionTypeCheckboxes, CheckboxValues: []string{"opt-a"}}, false},
		{"checkboxes empty slice", Answer{Type: QuestionTypeCheckboxes, CheckboxValues: []string{}}, true},
		{"date present", Answer{Type: QuestionTypeDate, DateValue: "2026-01-15"}, false},
		{"date missing", Answer{Type: QuestionTypeDate}, true},
		{"scale zero is an answer", Answer{Type: QuestionTypeLinearScale, ScaleValue: intPtr(0)}, false},
		{"scale missing", Answer{Type: QuestionTypeLinearScale}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnswerValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		answer  Answer
		wantErr bool
	}{
		{
			name:   "clean text answer",
			answer: Answer{QuestionID: "q1", Type: QuestionTypeShortAnswer, TextValue: "hello"},
		},
		{
			name:   "clean scale answer",
			answer: Answer{QuestionID: "q1", Type: QuestionTypeLinearScale, ScaleValue: intPtr(3)},
		},
		{
			name:    "missing question id",
			answer:  Answer{Type: QuestionTypeShortAnswer, TextValue: "hello"},
			wantErr: true,
		},
		{
			name:    "unknown answer type",
			answer:  Answer{QuestionID: "q1", Type: "rating"},
			wantErr: true,
		},
		{
			name:    "text answer with choice value",
			answer:  Answer{QuestionID: "q1", Type: QuestionTypeParagraph, TextValue: "x", ChoiceValue: "opt-a"},
			wantErr: true,
		},
		{
			name:    "choice answer with scale value",
			answer:  Answer{QuestionID: "q1", Type: QuestionTypeMultipleChoice, ChoiceValue: "opt-a", ScaleValue: intPtr(1)},
			wantErr: true,
		},
		{
			name:    "date answer with checkbox values",
			answer:  Answer{QuestionID: "q1", Type: QuestionTypeDate, DateValue: "2026-01-15", CheckboxValues: []string{"a"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.answer.ValidateShape()
			if tt.wantErr {
				var shapeErr *ShapeError
				if !errors.As(err, &shapeErr) {
					t.Fatalf("ValidateShape() = %v, want *ShapeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateShape() = %v, want nil", err)
			}
		})
	}
}

package validate

import (
	"testing"

	"quicksurvey/internal/model"
)

func intPtr(v int) *int { return &v }

func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: "q-name", Title: "Your name", Type: model.QuestionTypeShortAnswer, Required: true},
		{ID: "q-choice", Title: "Pick one", Type: model.QuestionTypeMultipleChoice,
			Options: []model.Option{{ID: "opt-a", Text: "A"}, {ID: "opt-b", Text: "B"}}},
		{ID: "q-boxes", Title: "Pick any", Type: model.QuestionTypeCheckboxes,
			Options: []model.Option{{ID: "box-1", Text: "One"}, {ID: "box-2", Text: "Two"}}},
		{ID: "q-scale", Title: "Rate it", Type: model.QuestionTypeLinearScale, Min: 1, Max: 5},
		{ID: "q-date", Title: "When", Type: model.QuestionTypeDate},
	}
}

func requireAccepted(t *testing.T, questions []model.Question, answers []model.Answer) {
	t.Helper()
	if rej := Batch(questions, answers); rej != nil {
		t.Fatalf("Batch() = %v, want acceptance", rej)
	}
}

func requireRejected(t *testing.T, questions []model.Question, answers []model.Answer, code Code, questionID string) {
	t.Helper()
	rej := Batch(questions, answers)
	if rej == nil {
		t.Fatalf("Batch() accepted, want rejection %s for question %s", code, questionID)
	}
	if rej.Code != code {
		t.Errorf("Code = %s, want %s", rej.Code, code)
	}
	if rej.QuestionID != questionID {
		t.Errorf("QuestionID = %s, want %s", rej.QuestionID, questionID)
	}
}

func TestBatchAcceptsCompleteSubmission(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-choice", Type: model.QuestionTypeMultipleChoice, ChoiceValue: "opt-a"},
		{QuestionID: "q-boxes", Type: model.QuestionTypeCheckboxes, CheckboxValues: []string{"box-1", "box-2"}},
		{QuestionID: "q-scale", Type: model.QuestionTypeLinearScale, ScaleValue: intPtr(3)},
		{QuestionID: "q-date", Type: model.QuestionTypeDate, DateValue: "2026-02-01"},
	}
	requireAccepted(t, sampleQuestions(), answers)
}

func TestBatchAcceptsOmittedOptionalQuestions(t *testing.T) {
	// Only the required question is answered.
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
	}
	requireAccepted(t, sampleQuestions(), answers)
}

func TestBatchRequiredAnswerMissing(t *testing.T) {
	t.Run("answer absent", func(t *testing.T) {
		answers := []model.Answer{
			{QuestionID: "q-choice", Type: model.QuestionTypeMultipleChoice, ChoiceValue: "opt-a"},
		}
		requireRejected(t, sampleQuestions(), answers, CodeRequiredAnswerMissing, "q-name")
	})

	t.Run("answer present but empty", func(t *testing.T) {
		answers := []model.Answer{
			{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "   "},
		}
		requireRejected(t, sampleQuestions(), answers, CodeRequiredAnswerMissing, "q-name")
	})
}

func TestBatchOptionalEmptyAnswerAccepted(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-choice", Type: model.QuestionTypeMultipleChoice},
		{QuestionID: "q-boxes", Type: model.QuestionTypeCheckboxes, CheckboxValues: []string{}},
	}
	requireAccepted(t, sampleQuestions(), answers)
}

func TestBatchTypeMismatch(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-choice", Type: model.QuestionTypeCheckboxes, CheckboxValues: []string{"opt-a"}},
	}
	requireRejected(t, sampleQuestions(), answers, CodeAnswerTypeMismatch, "q-choice")
}

func TestBatchInvalidOptionSelected(t *testing.T) {
	t.Run("multiple choice", func(t *testing.T) {
		answers := []model.Answer{
			{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
			{QuestionID: "q-choice", Type: model.QuestionTypeMultipleChoice, ChoiceValue: "opt-z"},
		}
		requireRejected(t, sampleQuestions(), answers, CodeInvalidOptionSelected, "q-choice")
	})

	t.Run("checkboxes with one bad id", func(t *testing.T) {
		answers := []model.Answer{
			{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
			{QuestionID: "q-boxes", Type: model.QuestionTypeCheckboxes, CheckboxValues: []string{"box-1", "box-9"}},
		}
		requireRejected(t, sampleQuestions(), answers, CodeInvalidOptionSelected, "q-boxes")
	})
}

func TestBatchScaleBounds(t *testing.T) {
	submit := func(v int) []model.Answer {
		return []model.Answer{
			{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
			{QuestionID: "q-scale", Type: model.QuestionTypeLinearScale, ScaleValue: intPtr(v)},
		}
	}

	// Both endpoints are inside the range.
	requireAccepted(t, sampleQuestions(), submit(1))
	requireAccepted(t, sampleQuestions(), submit(5))

	requireRejected(t, sampleQuestions(), submit(0), CodeScaleValueOutOfRange, "q-scale")
	requireRejected(t, sampleQuestions(), submit(6), CodeScaleValueOutOfRange, "q-scale")

	rej := Batch(sampleQuestions(), submit(6))
	if rej.Min != 1 || rej.Max != 5 {
		t.Errorf("rejection bounds = [%d,%d], want [1,5]", rej.Min, rej.Max)
	}
}

func TestBatchUnknownQuestion(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-ghost", Type: model.QuestionTypeShortAnswer, TextValue: "boo"},
	}
	requireRejected(t, sampleQuestions(), answers, CodeAnswerForUnknownQuestion, "q-ghost")
}

func TestBatchDuplicateAnswers(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Grace"},
	}
	requireRejected(t, sampleQuestions(), answers, CodeDuplicateAnswer, "q-name")
}

func TestBatchDateAcceptedAsIs(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-date", Type: model.QuestionTypeDate, DateValue: "next tuesday"},
	}
	requireAccepted(t, sampleQuestions(), answers)
}

func TestBatchRequiredBeforeValueChecks(t *testing.T) {
	// The missing required answer is reported even though a later answer
	// also carries an out-of-range scale value.
	answers := []model.Answer{
		{QuestionID: "q-scale", Type: model.QuestionTypeLinearScale, ScaleValue: intPtr(99)},
	}
	requireRejected(t, sampleQuestions(), answers, CodeRequiredAnswerMissing, "q-name")
}

func TestBatchIsPure(t *testing.T) {
	questions := sampleQuestions()
	answers := []model.Answer{
		{QuestionID: "q-name", Type: model.QuestionTypeShortAnswer, TextValue: "Ada"},
		{QuestionID: "q-scale", Type: model.QuestionTypeLinearScale, ScaleValue: intPtr(3)},
	}

	first := Batch(questions, answers)
	second := Batch(questions, answers)
	if first != nil || second != nil {
		t.Fatalf("repeat validation diverged: %v then %v", first, second)
	}
	if questions[3].Min != 1 || *answers[1].ScaleValue != 3 {
		t.Error("inputs were mutated during validation")
	}
}

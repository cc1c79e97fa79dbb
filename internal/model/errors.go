package model

import "fmt"

// DefinitionError reports a structurally invalid survey or question
// definition. Field names the offending field; QuestionID is empty for
// survey-level fields.
type DefinitionError struct {
	QuestionID string
	Field      string
	Reason     string
}

func (e *DefinitionError) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("invalid question definition (question %s, field %s): %s", e.QuestionID, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid survey definition (field %s): %s", e.Field, e.Reason)
}

// ShapeError reports an answer whose value fields do not match its declared
// type, or whose type tag is not a known question type.
type ShapeError struct {
	QuestionID string
	Reason     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid answer shape (question %s): %s", e.QuestionID, e.Reason)
}

package model

import (
	"strings"
	"time"
)

// SurveyStatus is the survey lifecycle state
type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "DRAFT"
	SurveyStatusPublished SurveyStatus = "PUBLISHED"
)

// Survey limits
const (
	TitleMaxLen       = 255
	DescriptionMaxLen = 2000
)

// Survey is an owned, ordered collection of questions with a
// DRAFT/PUBLISHED lifecycle. Questions are stored inline as a list blob.
type Survey struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	OwnerID     string       `json:"ownerId" bson:"ownerId"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Questions   []Question   `json:"questions" bson:"questions"`
	Status      SurveyStatus `json:"status" bson:"status"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// SurveyListItem is the lighter-weight shape returned by owner listings.
type SurveyListItem struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Status        SurveyStatus `json:"status"`
	QuestionCount int          `json:"questionCount"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Question returns the question with the given id, or nil.
func (s *Survey) Question(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// ListItem projects the survey into its listing shape.
func (s *Survey) ListItem() SurveyListItem {
	return SurveyListItem{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Status:        s.Status,
		QuestionCount: len(s.Questions),
		CreatedAt:     s.CreatedAt,
	}
}

// Validate checks the survey definition: title length, description length,
// at least one question, question ids unique within the survey, and every
// question structurally valid. Returns a *DefinitionError or nil.
func (s *Survey) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return &DefinitionError{Field: "title", Reason: "survey title is required"}
	}
	if len(s.Title) > TitleMaxLen {
		return &DefinitionError{Field: "title", Reason: "title must be 255 characters or less"}
	}
	if len(s.Description) > DescriptionMaxLen {
		return &DefinitionError{Field: "description", Reason: "description must be 2000 characters or less"}
	}
	if len(s.Questions) == 0 {
		return &DefinitionError{Field: "questions", Reason: "at least one question is required"}
	}

	seen := make(map[string]struct{}, len(s.Questions))
	for i := range s.Questions {
		q := &s.Questions[i]
		if _, dup := seen[q.ID]; dup {
			return &DefinitionError{QuestionID: q.ID, Field: "id", Reason: "duplicate question id"}
		}
		seen[q.ID] = struct{}{}
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

package model

import "time"

// Response is an accepted batch of answers submitted against one published
// survey. Responses are created exactly once and never edited.
type Response struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SurveyID  string    `json:"surveyId" bson:"surveyId"`
	Answers   []Answer  `json:"answers" bson:"answers"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Answer returns the response's answer for the given question, or nil.
func (r *Response) Answer(questionID string) *Answer {
	for i := range r.Answers {
		if r.Answers[i].QuestionID == questionID {
			return &r.Answers[i]
		}
	}
	return nil
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quicksurvey/internal/model"
	"quicksurvey/internal/service"
	"quicksurvey/internal/transport/rest/middleware"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc   *service.SurveyService
	responseSvc *service.ResponseService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService, responseSvc *service.ResponseService) *SurveyHandler {
	return &SurveyHandler{
		surveySvc:   surveySvc,
		responseSvc: responseSvc,
	}
}

// OptionInput is one option of a choice question in a create request.
type OptionInput struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuestionInput is one question in a create request. Min and Max are
// pointers so absent scale bounds can fall back to the 1..5 default.
type QuestionInput struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Required bool               `json:"required"`
	Type     model.QuestionType `json:"type"`
	Options  []OptionInput      `json:"options"`
	Min      *int               `json:"min"`
	Max      *int               `json:"max"`
	MinLabel string             `json:"minLabel"`
	MaxLabel string             `json:"maxLabel"`
}

// CreateSurveyRequest is the request body for creating a survey
type CreateSurveyRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

func (in *QuestionInput) toModel() model.Question {
	q := model.Question{
		ID:       in.ID,
		Title:    in.Title,
		Required: in.Required,
		Type:     in.Type,
		MinLabel: in.MinLabel,
		MaxLabel: in.MaxLabel,
	}
	for _, o := range in.Options {
		q.Options = append(q.Options, model.Option{ID: o.ID, Text: o.Text})
	}
	if in.Type == model.QuestionTypeLinearScale {
		q.Min, q.Max = 1, 5
		if in.Min != nil {
			q.Min = *in.Min
		}
		if in.Max != nil {
			q.Max = *in.Max
		}
	}
	return q
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey := &model.Survey{
		Title:       req.Title,
		Description: req.Description,
	}
	for i := range req.Questions {
		survey.Questions = append(survey.Questions, req.Questions[i].toModel())
	}

	created, err := h.surveySvc.Create(r.Context(), userID, survey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	surveys, err := h.surveySvc.ListByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]model.SurveyListItem, 0, len(surveys))
	for _, s := range surveys {
		items = append(items, s.ListItem())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": items})
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	callerID := middleware.GetUserID(r.Context())

	survey, err := h.surveySvc.Get(r.Context(), surveyID, callerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Publish handles POST /v1/surveys/{surveyId}/publish
func (h *SurveyHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.SurveyStatusPublished)
}

// Unpublish handles POST /v1/surveys/{surveyId}/unpublish
func (h *SurveyHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.SurveyStatusDraft)
}

func (h *SurveyHandler) setStatus(w http.ResponseWriter, r *http.Request, status model.SurveyStatus) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())

	survey, err := h.surveySvc.SetStatus(r.Context(), surveyID, userID, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Stats handles GET /v1/surveys/{surveyId}/stats
func (h *SurveyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())

	st, err := h.responseSvc.AggregateSurvey(r.Context(), surveyID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// QuestionStats handles GET /v1/surveys/{surveyId}/stats/{questionId}
func (h *SurveyHandler) QuestionStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := middleware.GetUserID(r.Context())

	st, err := h.responseSvc.AggregateQuestion(r.Context(), vars["surveyId"], vars["questionId"], userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quicksurvey/internal/model"
	"quicksurvey/internal/service"
	"quicksurvey/internal/transport/rest/middleware"
)

// ResponseHandler handles response endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	Answers []model.Answer `json:"answers"`
}

// Submit handles POST /v1/surveys/{surveyId}/responses (public)
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.responseSvc.Submit(r.Context(), surveyID, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// List handles GET /v1/surveys/{surveyId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())

	responses, err := h.responseSvc.List(r.Context(), surveyID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if responses == nil {
		responses = []*model.Response{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quicksurvey/internal/model"
	"quicksurvey/internal/service"
	"quicksurvey/internal/transport/rest/middleware"
	"quicksurvey/internal/validate"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authSvc.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := h.authSvc.GenerateToken(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.AuthResponse{Token: token, User: user})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AuthResponse{Token: token, User: user})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authSvc.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// rejectionBody is the wire shape of a validation rejection, carrying the
// offending question id for client-side field highlighting.
type rejectionBody struct {
	Error      string        `json:"error"`
	Code       validate.Code `json:"code"`
	QuestionID string        `json:"questionId,omitempty"`
	Min        int           `json:"min,omitempty"`
	Max        int           `json:"max,omitempty"`
}

// writeServiceError maps every service and validation error to a
// deterministic HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	var rej *validate.Rejection
	if errors.As(err, &rej) {
		writeJSON(w, http.StatusUnprocessableEntity, rejectionBody{
			Error:      rej.Error(),
			Code:       rej.Code,
			QuestionID: rej.QuestionID,
			Min:        rej.Min,
			Max:        rej.Max,
		})
		return
	}

	var shape *model.ShapeError
	if errors.As(err, &shape) {
		writeError(w, http.StatusBadRequest, shape.Error())
		return
	}
	var def *model.DefinitionError
	if errors.As(err, &def) {
		writeError(w, http.StatusBadRequest, def.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrSurveyNotFound), errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSurveyNotPublished), errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

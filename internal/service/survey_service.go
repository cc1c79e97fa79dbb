package service

import (
	"context"

	"github.com/google/uuid"

	"quicksurvey/internal/cache"
	"quicksurvey/internal/model"
	"quicksurvey/internal/repository"
	"quicksurvey/log"
)

// SurveyService handles survey authoring and the DRAFT/PUBLISHED lifecycle.
type SurveyService struct {
	surveyRepo  repository.SurveyRepo
	formCache   cache.FormCache
	broadcaster Broadcaster
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, formCache cache.FormCache) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
		formCache:  formCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SurveyService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and persists a new survey in DRAFT for the given owner.
// Questions and options without ids get fresh uuids before validation.
func (s *SurveyService) Create(ctx context.Context, ownerID string, survey *model.Survey) (*model.Survey, error) {
	for i := range survey.Questions {
		q := &survey.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		for j := range q.Options {
			if q.Options[j].ID == "" {
				q.Options[j].ID = uuid.NewString()
			}
		}
	}

	survey.OwnerID = ownerID
	survey.Status = model.SurveyStatusDraft

	if err := survey.Validate(); err != nil {
		return nil, err
	}

	id, err := s.surveyRepo.Create(ctx, survey)
	if err != nil {
		return nil, err
	}
	survey.ID = id
	return survey, nil
}

// SetStatus publishes or unpublishes a survey. Only the owner may
// transition; the form cache entry is dropped on every transition so the
// public form never renders a stale definition.
func (s *SurveyService) SetStatus(ctx context.Context, surveyID, callerID string, status model.SurveyStatus) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.OwnerID != callerID {
		return nil, ErrNotAuthorized
	}

	if err := s.surveyRepo.UpdateStatus(ctx, surveyID, status); err != nil {
		return nil, err
	}
	survey.Status = status

	if err := s.formCache.Invalidate(ctx, surveyID); err != nil {
		log.Warnf("failed to invalidate form cache for survey %s: %v", surveyID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(surveyID, "status_changed", map[string]string{
			"surveyId": surveyID,
			"status":   string(status),
		})
	}

	return survey, nil
}

// Get returns a survey for the given caller. DRAFT surveys are visible only
// to their owner; PUBLISHED surveys are world-readable so the public
// response form can render. Published definitions are served through the
// form cache.
func (s *SurveyService) Get(ctx context.Context, surveyID, callerID string) (*model.Survey, error) {
	if cached, err := s.formCache.GetForm(ctx, surveyID); err == nil && cached != nil {
		if cached.Status == model.SurveyStatusPublished {
			return cached, nil
		}
	} else if err != nil {
		log.Warnf("form cache read failed for survey %s: %v", surveyID, err)
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	if survey.Status == model.SurveyStatusDraft && survey.OwnerID != callerID {
		return nil, ErrNotAuthorized
	}

	if survey.Status == model.SurveyStatusPublished {
		if err := s.formCache.SetForm(ctx, survey); err != nil {
			log.Warnf("form cache write failed for survey %s: %v", surveyID, err)
		}
	}

	return survey, nil
}

// ListByOwner returns the owner's surveys, newest first.
func (s *SurveyService) ListByOwner(ctx context.Context, ownerID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByOwnerID(ctx, ownerID)
}

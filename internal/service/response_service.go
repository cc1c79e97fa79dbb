package service

import (
	"context"
	"time"

	"quicksurvey/internal/cache"
	"quicksurvey/internal/model"
	"quicksurvey/internal/repository"
	"quicksurvey/internal/stats"
	"quicksurvey/internal/validate"
	"quicksurvey/log"
)

// ResponseService handles response submission, listing, and aggregation.
type ResponseService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
	counter      cache.CounterCache
	broadcaster  Broadcaster
	now          func() time.Time
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo, counter cache.CounterCache) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		counter:      counter,
		now:          time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetClock overrides the submission timestamp source.
func (s *ResponseService) SetClock(now func() time.Time) {
	s.now = now
}

// Submit validates an answer batch against the survey and persists it as a
// Response. The survey status is read fresh from storage on every call, never
// from a cache. Acceptance is all-or-nothing: nothing is persisted unless the
// whole batch passes.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, answers []model.Answer) (*model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if survey.Status != model.SurveyStatusPublished {
		return nil, ErrSurveyNotPublished
	}

	for i := range answers {
		if err := answers[i].ValidateShape(); err != nil {
			return nil, err
		}
	}
	if rej := validate.Batch(survey.Questions, answers); rej != nil {
		return nil, rej
	}

	response := &model.Response{
		SurveyID:  surveyID,
		Answers:   answers,
		CreatedAt: s.now().UTC(),
	}
	id, err := s.responseRepo.Create(ctx, response)
	if err != nil {
		return nil, err
	}
	response.ID = id

	count, err := s.counter.Increment(ctx, surveyID)
	if err != nil {
		log.Warnf("response counter increment failed for survey %s: %v", surveyID, err)
		if n, cerr := s.responseRepo.CountBySurveyID(ctx, surveyID); cerr == nil {
			count = n
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(surveyID, "response_received", map[string]interface{}{
			"surveyId":      surveyID,
			"responseId":    response.ID,
			"responseCount": count,
			"submittedAt":   response.CreatedAt,
		})
	}

	return response, nil
}

// LiveCount returns the advisory response counter shown on a freshly opened
// dashboard. It reads the cache, falling back to a collection count when the
// cache is empty or unreachable.
func (s *ResponseService) LiveCount(ctx context.Context, surveyID string) int64 {
	n, err := s.counter.Get(ctx, surveyID)
	if err == nil && n > 0 {
		return n
	}
	if err != nil {
		log.Warnf("response counter read failed for survey %s: %v", surveyID, err)
	}
	n, err = s.responseRepo.CountBySurveyID(ctx, surveyID)
	if err != nil {
		log.Warnf("response count failed for survey %s: %v", surveyID, err)
		return 0
	}
	return n
}

// List returns a survey's responses, newest first. Only the owner may
// enumerate them.
func (s *ResponseService) List(ctx context.Context, surveyID, callerID string) ([]*model.Response, error) {
	if _, err := s.ownedSurvey(ctx, surveyID, callerID); err != nil {
		return nil, err
	}
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}

// AggregateQuestion recomputes the stats for one question from all of the
// survey's responses. Owner only.
func (s *ResponseService) AggregateQuestion(ctx context.Context, surveyID, questionID, callerID string) (*model.QuestionStats, error) {
	survey, err := s.ownedSurvey(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}

	question := survey.Question(questionID)
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	st := stats.Aggregate(question, responses)
	return &st, nil
}

// AggregateSurvey recomputes the stats for every chartable question of the
// survey. Owner only.
func (s *ResponseService) AggregateSurvey(ctx context.Context, surveyID, callerID string) (*model.SurveyStats, error) {
	survey, err := s.ownedSurvey(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	st := stats.AggregateSurvey(survey, responses)
	return &st, nil
}

func (s *ResponseService) ownedSurvey(ctx context.Context, surveyID, callerID string) (*model.Survey, error) {
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
	return survey, nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quicksurvey/internal/model"
)

// FormCache handles Redis caching of published survey definitions for the
// public response form. It is a render-path cache only: the submit path
// always reads the survey fresh from storage, so a stale entry can never
// admit a response to an unpublished survey.
type FormCache interface {
	GetForm(ctx context.Context, surveyID string) (*model.Survey, error)
	SetForm(ctx context.Context, survey *model.Survey) error
	Invalidate(ctx context.Context, surveyID string) error
}

type formCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormCache creates a new form cache
func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *formCache) formKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:form", surveyID)
}

func (c *formCache) GetForm(ctx context.Context, surveyID string) (*model.Survey, error) {
	data, err := c.client.Get(ctx, c.formKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var survey model.Survey
	if err := json.Unmarshal([]byte(data), &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (c *formCache) SetForm(ctx context.Context, survey *model.Survey) error {
	data, err := json.Marshal(survey)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.formKey(survey.ID), data, c.ttl).Err()
}

func (c *formCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.formKey(surveyID)).Err()
}

// Package testutil provides in-memory implementations of the storage
// interfaces plus small HTTP test helpers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"quicksurvey/internal/model"
)

// FakeSurveyRepo is an in-memory repository.SurveyRepo.
type FakeSurveyRepo struct {
	mu      sync.Mutex
	nextID  int
	Surveys map[string]*model.Survey
	Err     error
}

func NewFakeSurveyRepo() *FakeSurveyRepo {
	return &FakeSurveyRepo{Surveys: make(map[string]*model.Survey)}
}

func (r *FakeSurveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	r.nextID++
	id := fmt.Sprintf("survey-%d", r.nextID)
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()
	cp := *survey
	cp.ID = id
	r.Surveys[id] = &cp
	return id, nil
}

func (r *FakeSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	s, ok := r.Surveys[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *FakeSurveyRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*model.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*model.Survey
	for _, s := range r.Surveys {
		if s.OwnerID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *FakeSurveyRepo) UpdateStatus(ctx context.Context, id string, status model.SurveyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	s, ok := r.Surveys[id]
	if !ok {
		return fmt.Errorf("survey %s not found", id)
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return nil
}

// FakeResponseRepo is an in-memory repository.ResponseRepo.
type FakeResponseRepo struct {
	mu        sync.Mutex
	nextID    int
	Responses []*model.Response
	Err       error
}

func NewFakeResponseRepo() *FakeResponseRepo {
	return &FakeResponseRepo{}
}

func (r *FakeResponseRepo) Create(ctx context.Context, response *model.Response) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	r.nextID++
	id := fmt.Sprintf("response-%d", r.nextID)
	cp := *response
	cp.ID = id
	r.Responses = append(r.Responses, &cp)
	return id, nil
}

func (r *FakeResponseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*model.Response
	for _, resp := range r.Responses {
		if resp.SurveyID == surveyID {
			cp := *resp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *FakeResponseRepo) CountBySurveyID(ctx context.Context, surveyID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for _, resp := range r.Responses {
		if resp.SurveyID == surveyID {
			n++
		}
	}
	return n, nil
}

// FakeUserRepo is an in-memory repository.UserRepo.
type FakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	Users  map[string]*model.User
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{Users: make(map[string]*model.User)}
}

func (r *FakeUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("user-%d", r.nextID)
	cp := *user
	cp.ID = id
	r.Users[id] = &cp
	return id, nil
}

func (r *FakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *FakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// FakeFormCache is an in-memory cache.FormCache.
type FakeFormCache struct {
	mu      sync.Mutex
	Forms   map[string]*model.Survey
	Sets    int
	Evicted []string
}

func NewFakeFormCache() *FakeFormCache {
	return &FakeFormCache{Forms: make(map[string]*model.Survey)}
}

func (c *FakeFormCache) GetForm(ctx context.Context, surveyID string) (*model.Survey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.Forms[surveyID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (c *FakeFormCache) SetForm(ctx context.Context, survey *model.Survey) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *survey
	c.Forms[survey.ID] = &cp
	c.Sets++
	return nil
}

func (c *FakeFormCache) Invalidate(ctx context.Context, surveyID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Forms, surveyID)
	c.Evicted = append(c.Evicted, surveyID)
	return nil
}

// FakeCounterCache is an in-memory cache.CounterCache.
type FakeCounterCache struct {
	mu     sync.Mutex
	Counts map[string]int64
}

func NewFakeCounterCache() *FakeCounterCache {
	return &FakeCounterCache{Counts: make(map[string]int64)}
}

func (c *FakeCounterCache) Increment(ctx context.Context, surveyID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Counts[surveyID]++
	return c.Counts[surveyID], nil
}

func (c *FakeCounterCache) Get(ctx context.Context, surveyID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Counts[surveyID], nil
}

// FakeBroadcaster records broadcast calls for assertions.
type FakeBroadcaster struct {
	mu       sync.Mutex
	Messages []BroadcastCall
}

type BroadcastCall struct {
	SurveyID string
	Type     string
	Payload  interface{}
}

func (b *FakeBroadcaster) BroadcastToOwner(surveyID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Messages = append(b.Messages, BroadcastCall{SurveyID: surveyID, Type: msgType, Payload: payload})
}

func (b *FakeBroadcaster) Calls() []BroadcastCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BroadcastCall, len(b.Messages))
	copy(out, b.Messages)
	return out
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

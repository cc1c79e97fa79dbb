package service

import (
	"context"
	"errors"
	"testing"

	"quicksurvey/internal/model"
	"quicksurvey/internal/testutil"
)

func newSurveyService() (*SurveyService, *testutil.FakeSurveyRepo, *testutil.FakeFormCache, *testutil.FakeBroadcaster) {
	repo := testutil.NewFakeSurveyRepo()
	formCache := testutil.NewFakeFormCache()
	bc := &testutil.FakeBroadcaster{}
	svc := NewSurveyService(repo, formCache)
	svc.SetBroadcaster(bc)
	return svc, repo, formCache, bc
}

func draftSurvey() *model.Survey {
	return &model.Survey{
		Title: "Team lunch",
		Questions: []model.Question{
			{Title: "Coming?", Type: model.QuestionTypeMultipleChoice, Required: true,
				Options: []model.Option{{Text: "Yes"}, {Text: "No"}}},
			{Title: "Notes", Type: model.QuestionTypeParagraph},
		},
	}
}

func TestSurveyCreate(t *testing.T) {
	svc, repo, _, _ := newSurveyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", draftSurvey())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == "" {
		t.Error("expected a generated survey id")
	}
	if created.OwnerID != "owner-1" {
		t.Errorf("OwnerID = %q, want owner-1", created.OwnerID)
	}
	if created.Status != model.SurveyStatusDraft {
		t.Errorf("Status = %q, want DRAFT", created.Status)
	}
	for _, q := range created.Questions {
		if q.ID == "" {
			t.Error("expected generated question id")
		}
		for _, o := range q.Options {
			if o.ID == "" {
				t.Error("expected generated option id")
			}
		}
	}
	if len(repo.Surveys) != 1 {
		t.Errorf("stored surveys = %d, want 1", len(repo.Surveys))
	}
}

func TestSurveyCreateRejectsInvalidDefinition(t *testing.T) {
	svc, repo, _, _ := newSurveyService()

	s := draftSurvey()
	s.Title = ""
	_, err := svc.Create(context.Background(), "owner-1", s)

	var defErr *model.DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("Create = %v, want *DefinitionError", err)
	}
	if len(repo.Surveys) != 0 {
		t.Error("invalid survey must not be persisted")
	}
}

func TestSurveySetStatus(t *testing.T) {
	svc, _, formCache, bc := newSurveyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", draftSurvey())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("owner publishes", func(t *testing.T) {
		updated, err := svc.SetStatus(ctx, created.ID, "owner-1", model.SurveyStatusPublished)
		if err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
		if updated.Status != model.SurveyStatusPublished {
			t.Errorf("Status = %q, want PUBLISHED", updated.Status)
		}
		if len(formCache.Evicted) == 0 || formCache.Evicted[0] != created.ID {
			t.Error("expected form cache eviction on transition")
		}
		calls := bc.Calls()
		if len(calls) != 1 || calls[0].Type != "status_changed" {
			t.Errorf("broadcasts = %+v, want one status_changed", calls)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		if _, err := svc.SetStatus(ctx, created.ID, "intruder", model.SurveyStatusDraft); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("SetStatus = %v, want ErrNotAuthorized", err)
		}
	})

	t.Run("missing survey", func(t *testing.T) {
		if _, err := svc.SetStatus(ctx, "nope", "owner-1", model.SurveyStatusPublished); !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("SetStatus = %v, want ErrSurveyNotFound", err)
		}
	})

	t.Run("owner unpublishes", func(t *testing.T) {
		updated, err := svc.SetStatus(ctx, created.ID, "owner-1", model.SurveyStatusDraft)
		if err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
		if updated.Status != model.SurveyStatusDraft {
			t.Errorf("Status = %q, want DRAFT", updated.Status)
		}
	})
}

func TestSurveyGetVisibility(t *testing.T) {
	svc, _, formCache, _ := newSurveyService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", draftSurvey())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("draft visible to owner", func(t *testing.T) {
		if _, err := svc.Get(ctx, created.ID, "owner-1"); err != nil {
			t.Fatalf("Get: %v", err)
		}
	})

	t.Run("draft hidden from others", func(t *testing.T) {
		if _, err := svc.Get(ctx, created.ID, "somebody"); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("Get = %v, want ErrNotAuthorized", err)
		}
		if _, err := svc.Get(ctx, created.ID, ""); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("anonymous Get = %v, want ErrNotAuthorized", err)
		}
	})

	t.Run("published visible to anyone and cached", func(t *testing.T) {
		if _, err := svc.SetStatus(ctx, created.ID, "owner-1", model.SurveyStatusPublished); err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
		got, err := svc.Get(ctx, created.ID, "")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Status != model.SurveyStatusPublished {
			t.Errorf("Status = %q, want PUBLISHED", got.Status)
		}
		if formCache.Sets == 0 {
			t.Error("expected published form to be cached")
		}
	})

	t.Run("unknown survey", func(t *testing.T) {
		if _, err := svc.Get(ctx, "nope", "owner-1"); !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("Get = %v, want ErrSurveyNotFound", err)
		}
	})
}

func TestSurveyListByOwner(t *testing.T) {
	svc, _, _, _ := newSurveyService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", draftSurvey()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := draftSurvey()
	other.Title = "Other owner's survey"
	if _, err := svc.Create(ctx, "owner-2", other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mine, err := svc.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Team lunch" {
		t.Errorf("ListByOwner = %+v, want just owner-1's survey", mine)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

type stubHistoryRepo struct {
	items     []*domain.Translation
	appendErr error
}

func (r *stubHistoryRepo) Append(_ context.Context, t *domain.Translation) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, t)
	return nil
}

func (r *stubHistoryRepo) List(_ context.Context, ownerID string) ([]*domain.Translation, error) {
	var out []*domain.Translation
	for _, t := range r.items {
		if ownerID == "" || t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) Delete(_ context.Context, id, ownerID string) error {
	for i, t := range r.items {
		if t.ID == id && (ownerID == "" || t.UserID == ownerID) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrTranslationNotFound
}

func validInput() ports.CreateTranslationInput {
	return ports.CreateTranslationInput{
		OriginalText:   "Dzień dobry",
		TranslatedText: "Good morning",
		SourceLanguage: "Polish",
		TargetLanguage: "English",
	}
}

func TestHistoryService_Create(t *testing.T) {
	repo := &stubHistoryRepo{}
	svc := NewHistoryService(repo, zerolog.Nop())

	in := validInput()
	in.UserID = "u1"
	got, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.ID == "" || got.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", got)
	}
	if got.UserID != "u1" || got.TranslatedText != "Good morning" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(repo.items))
	}
}

func TestHistoryService_Create_RequiresAllFields(t *testing.T) {
	svc := NewHistoryService(&stubHistoryRepo{}, zerolog.Nop())

	mutators := []func(*ports.CreateTranslationInput){
		func(in *ports.CreateTranslationInput) { in.OriginalText = "" },
		func(in *ports.CreateTranslationInput) { in.TranslatedText = "" },
		func(in *ports.CreateTranslationInput) { in.SourceLanguage = "" },
		func(in *ports.CreateTranslationInput) { in.TargetLanguage = "" },
	}
	for i, mutate := range mutators {
		in := validInput()
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestHistoryService_Create_RepoError(t *testing.T) {
	svc := NewHistoryService(&stubHistoryRepo{appendErr: errors.New("boom")}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHistoryService_List_NewestFirst(t *testing.T) {
	repo := &stubHistoryRepo{}
	svc := NewHistoryService(repo, zerolog.Nop())

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return ts }
		if _, err := svc.Create(context.Background(), validInput()); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	items, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Timestamp.Before(items[i].Timestamp) {
			t.Fatalf("items not sorted newest first: %v before %v", items[i-1].Timestamp, items[i].Timestamp)
		}
	}
}

func TestHistoryService_Delete(t *testing.T) {
	repo := &stubHistoryRepo{}
	svc := NewHistoryService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty id, got %v", err)
	}

	in := validInput()
	in.UserID = "owner"
	created, _ := svc.Create(context.Background(), in)

	if err := svc.Delete(context.Background(), created.ID, "intruder"); !errors.Is(err, domain.ErrTranslationNotFound) {
		t.Fatalf("expected ErrTranslationNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "owner"); err != nil {
		t.Fatalf("delete by owner failed: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected entry removed")
	}
}

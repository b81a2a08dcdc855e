package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studyhub/model"
	"studyhub/repository"
)

type stubDoubtsStore struct {
	doubts       map[string]*model.Doubt
	resolveCalls int
}

func (s *stubDoubtsStore) CreateDoubt(ctx context.Context, doubt *model.Doubt) error {
	s.doubts[doubt.ID] = doubt
	return nil
}

func (s *stubDoubtsStore) GetAllDoubts(ctx context.Context) ([]*model.Doubt, error) {
	all := make([]*model.Doubt, 0, len(s.doubts))
	for _, d := range s.doubts {
		all = append(all, d)
	}
	return all, nil
}

func (s *stubDoubtsStore) GetDoubt(ctx context.Context, doubtID string) (*model.Doubt, error) {
	doubt, ok := s.doubts[doubtID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return doubt, nil
}

func (s *stubDoubtsStore) AppendAnswer(ctx context.Context, doubtID string, answer model.Answer) error {
	doubt, ok := s.doubts[doubtID]
	if !ok {
		return repository.ErrNotFound
	}
	doubt.Answers = append(doubt.Answers, answer)
	return nil
}

func (s *stubDoubtsStore) SetResolved(ctx context.Context, doubtID string, resolved bool) error {
	s.resolveCalls++
	doubt, ok := s.doubts[doubtID]
	if !ok {
		return repository.ErrNotFound
	}
	doubt.IsResolved = resolved
	return nil
}

func TestValidateDoubt(t *testing.T) {
	tests := []struct {
		name    string
		doubt   model.Doubt
		wantErr error
	}{
		{
			name:  "valid doubt",
			doubt: model.Doubt{Question: "Why is the sky blue?"},
		},
		{
			name:  "description allowed at the cap",
			doubt: model.Doubt{Question: "Q", Description: strings.Repeat("a", MaxContentBytes)},
		},
		{
			name:    "empty question",
			doubt:   model.Doubt{Question: "  "},
			wantErr: ValidationError("question is required"),
		},
		{
			name:    "oversized description",
			doubt:   model.Doubt{Question: "Q", Description: strings.Repeat("a", MaxContentBytes+1)},
			wantErr: ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDoubt(&tt.doubt)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolveDoubtUnknownID(t *testing.T) {
	store := &stubDoubtsStore{doubts: map[string]*model.Doubt{}}
	svc := &DoubtsService{DoubtsRepo: store}

	err := svc.ResolveDoubt(context.Background(), "missing", "caller", true)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveDoubtNonOwnerForbidden(t *testing.T) {
	store := &stubDoubtsStore{doubts: map[string]*model.Doubt{
		"d1": {ID: "d1", UserID: "owner"},
	}}
	svc := &DoubtsService{DoubtsRepo: store}

	err := svc.ResolveDoubt(context.Background(), "d1", "intruder", true)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.doubts["d1"].IsResolved {
		t.Error("a rejected attempt must leave the flag unchanged")
	}
	if store.resolveCalls != 0 {
		t.Error("the store write must not happen for a non-owner")
	}
}

func TestResolveDoubtIdempotent(t *testing.T) {
	store := &stubDoubtsStore{doubts: map[string]*model.Doubt{
		"d1": {ID: "d1", UserID: "owner"},
	}}
	svc := &DoubtsService{DoubtsRepo: store}

	for i := 0; i < 2; i++ {
		if err := svc.ResolveDoubt(context.Background(), "d1", "owner", true); err != nil {
			t.Fatalf("attempt %d failed: %v", i+1, err)
		}
		if !store.doubts["d1"].IsResolved {
			t.Fatalf("flag not set after attempt %d", i+1)
		}
	}

	// Unresolving works the same way
	if err := svc.ResolveDoubt(context.Background(), "d1", "owner", false); err != nil {
		t.Fatalf("unresolve failed: %v", err)
	}
	if store.doubts["d1"].IsResolved {
		t.Error("flag not cleared")
	}
}

func TestValidateDoubtTrimsQuestion(t *testing.T) {
	doubt := model.Doubt{Question: "  Why?  "}
	if err := ValidateDoubt(&doubt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doubt.Question != "Why?" {
		t.Errorf("question not trimmed, got %q", doubt.Question)
	}
}

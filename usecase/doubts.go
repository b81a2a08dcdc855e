package usecase

import (
	"context"
	"strings"
	"time"

	"studyhub/model"
	"studyhub/utils"
)

// DoubtsStore is the persistence surface the doubts service needs.
type DoubtsStore interface {
	CreateDoubt(ctx context.Context, doubt *model.Doubt) error
	GetAllDoubts(ctx context.Context) ([]*model.Doubt, error)
	GetDoubt(ctx context.Context, doubtID string) (*model.Doubt, error)
	AppendAnswer(ctx context.Context, doubtID string, answer model.Answer) error
	SetResolved(ctx context.Context, doubtID string, resolved bool) error
}

// UsernameResolver maps author ids onto display names for the public board.
type UsernameResolver interface {
	UsernamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error)
}

type DoubtsService struct {
	DoubtsRepo DoubtsStore
	UsersRepo  UsernameResolver
}

// ValidateDoubt normalizes and checks a doubt in place.
func ValidateDoubt(doubt *model.Doubt) error {
	doubt.Question = strings.TrimSpace(doubt.Question)
	if doubt.Question == "" {
		return ValidationError("question is required")
	}
	if len(doubt.Description) > MaxContentBytes {
		return ErrPayloadTooLarge
	}

	doubt.Tags = normalizeTags(doubt.Tags)
	if len(doubt.Tags) > maxTags {
		return ValidationError("maximum 10 tags allowed")
	}

	return nil
}

func (svc *DoubtsService) CreateDoubt(ctx context.Context, doubt *model.Doubt) error {
	if err := ValidateDoubt(doubt); err != nil {
		return err
	}

	doubt.ID = utils.NewID()
	doubt.IsResolved = false
	doubt.Answers = []model.Answer{}
	now := time.Now()
	doubt.CreatedAt = now
	doubt.UpdatedAt = now

	return svc.DoubtsRepo.CreateDoubt(ctx, doubt)
}

// ListDoubts returns every doubt plus a user_id -> username map covering all
// authors and answerers, resolved in a single lookup.
func (svc *DoubtsService) ListDoubts(ctx context.Context) ([]*model.Doubt, map[string]string, error) {
	doubts, err := svc.DoubtsRepo.GetAllDoubts(ctx)
	if err != nil {
		return nil, nil, err
	}

	idSet := map[string]struct{}{}
	for _, d := range doubts {
		idSet[d.UserID] = struct{}{}
		for _, a := range d.Answers {
			idSet[a.UserID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	authors, err := svc.UsersRepo.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return doubts, authors, nil
}

// AnswerDoubt appends an answer. Any authenticated caller may answer; only
// the doubt must exist.
func (svc *DoubtsService) AnswerDoubt(ctx context.Context, doubtID, userID, text string) (*model.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ValidationError("answer text is required")
	}
	if len(text) > MaxContentBytes {
		return nil, ErrPayloadTooLarge
	}

	answer := model.Answer{
		AnswerID:  utils.NewID(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := svc.DoubtsRepo.AppendAnswer(ctx, doubtID, answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// ResolveDoubt sets the resolution flag. Unlike notes, a cross-owner attempt
// is reported as forbidden, not hidden as absent.
func (svc *DoubtsService) ResolveDoubt(ctx context.Context, doubtID, callerID string, resolved bool) error {
	doubt, err := svc.DoubtsRepo.GetDoubt(ctx, doubtID)
	if err != nil {
		return err
	}
	if doubt.UserID != callerID {
		return ErrForbidden
	}

	return svc.DoubtsRepo.SetResolved(ctx, doubtID, resolved)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"studyhub/model"
	"studyhub/utils"
)

// NotesStore is the persistence surface the notes service needs.
type NotesStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type NotesService struct {
	NotesRepo NotesStore
}

const (
	maxTitleLength = 200
	maxTags        = 10
)

// ValidateNote normalizes and checks a note in place.
func ValidateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return ValidationError("note title is required")
	}
	if len([]rune(note.Title)) > maxTitleLength {
		return ValidationError("note title exceeds maximum length")
	}

	// Content may be empty; only the byte cap applies.
	// A 100,000-byte body passes, 100,001 does not.
	if len(note.Content) > MaxContentBytes {
		return ErrPayloadTooLarge
	}

	note.Tags = normalizeTags(note.Tags)
	if len(note.Tags) > maxTags {
		return ValidationError("maximum 10 tags allowed")
	}

	return nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

func (svc *NotesService) CreateNote(ctx context.Context, note *model.Note) error {
	if err := ValidateNote(note); err != nil {
		return err
	}

	note.ID = utils.NewID()
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	return svc.NotesRepo.CreateNote(ctx, note)
}

func (svc *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error {
	if err := ValidateNote(updates); err != nil {
		return err
	}

	updates.UpdatedAt = time.Now()
	return svc.NotesRepo.UpdateNote(ctx, noteID, userID, updates)
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	return svc.NotesRepo.DeleteNote(ctx, noteID, userID)
}

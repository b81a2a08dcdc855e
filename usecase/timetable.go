package usecase

import (
	"context"
	"strings"

	"studyhub/model"
	"studyhub/repository"
)

type TimetableService struct {
	TimetableRepo *repository.TimetableRepo
}

// ValidateDays checks a replacement week: exactly seven entries, Monday
// through Sunday in order, and normalizes nil slot lists.
func ValidateDays(days []model.DaySchedule) error {
	if len(days) != len(model.Weekdays) {
		return ValidationError("timetable must contain exactly 7 day entries")
	}

	for i := range days {
		if !strings.EqualFold(days[i].Day, model.Weekdays[i]) {
			return ValidationError("timetable days must run Monday through Sunday")
		}
		days[i].Day = model.Weekdays[i]
		if days[i].Slots == nil {
			days[i].Slots = []model.Slot{}
		}
		for _, slot := range days[i].Slots {
			if strings.TrimSpace(slot.Subject) == "" {
				return ValidationError("every slot needs a subject")
			}
		}
	}

	return nil
}

// GetTimetable returns the caller's timetable, creating the default
// seven-day week if this is the first read.
func (svc *TimetableService) GetTimetable(ctx context.Context, userID string) (*model.Timetable, error) {
	return svc.TimetableRepo.GetOrCreate(ctx, userID)
}

// ReplaceTimetable overwrites the caller's week.
func (svc *TimetableService) ReplaceTimetable(ctx context.Context, userID string, days []model.DaySchedule) (*model.Timetable, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}
	return svc.TimetableRepo.ReplaceDays(ctx, userID, days)
}

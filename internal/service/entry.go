package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/martyacryl/the-daily-david-sub003/internal/model"

	"gorm.io/gorm"
)

type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// Upsert saves one autosave payload: the record for user+date is updated when
// it exists and inserted otherwise.
func (s *EntryService) Upsert(ctx context.Context, userID int, req model.SaveEntryRequest) (*model.Entry, error) {
	if _, err := ParseDay(req.Date); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	var existing model.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, req.Date).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry := entryFromRequest(userID, req)
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("insert entry: %w", err)
		}
		return &entry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}

	updated := entryFromRequest(userID, req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return &updated, nil
}

// List returns every entry for the user, newest first, including the
// soft-deleted-goal metadata reconciliation depends on.
func (s *EntryService) List(ctx context.Context, userID int) ([]model.Entry, error) {
	var entries []model.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// GetByDate returns the entry for a date, or nil when none exists.
func (s *EntryService) GetByDate(ctx context.Context, userID int, date string) (*model.Entry, error) {
	var e model.Entry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, date).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}
	return &e, nil
}

func entryFromRequest(userID int, req model.SaveEntryRequest) model.Entry {
	return model.Entry{
		UserID:           userID,
		EntryDate:        req.Date,
		CheckIn:          req.CheckIn,
		Gratitude:        req.Gratitude,
		SOAP:             req.SOAP,
		Goals:            req.Goals,
		DeletedGoalIDs:   req.DeletedGoalIDs,
		DailyIntention:   req.DailyIntention,
		GrowthQuestion:   req.GrowthQuestion,
		LeadershipRating: req.LeadershipRating,
		Completed:        req.Completed,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/martyacryl/the-daily-david-sub003/internal/model"

	"gorm.io/gorm"
)

type SermonService struct{ db *gorm.DB }

func NewSermonService(db *gorm.DB) *SermonService { return &SermonService{db: db} }

func (s *SermonService) Create(ctx context.Context, note *model.SermonNote) error {
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("insert sermon note: %w", err)
	}
	return nil
}

func (s *SermonService) List(ctx context.Context, userID int) ([]model.SermonNote, error) {
	var notes []model.SermonNote
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("note_date DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("list sermon notes: %w", err)
	}
	return notes, nil
}

func (s *SermonService) Get(ctx context.Context, userID, id int) (*model.SermonNote, error) {
	var note model.SermonNote
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query sermon note: %w", err)
	}
	return &note, nil
}

func (s *SermonService) Update(ctx context.Context, note *model.SermonNote) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(note)
	if res.Error != nil {
		return fmt.Errorf("update sermon note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sermon note not found")
	}
	return nil
}

func (s *SermonService) Delete(ctx context.Context, userID, id int) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SermonNote{})
	if res.Error != nil {
		return fmt.Errorf("delete sermon note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sermon note not found")
	}
	return nil
}

func (s *SermonService) Churches(ctx context.Context, userID int) ([]string, error) {
	return s.distinct(ctx, userID, "church")
}

func (s *SermonService) Speakers(ctx context.Context, userID int) ([]string, error) {
	return s.distinct(ctx, userID, "speaker")
}

func (s *SermonService) distinct(ctx context.Context, userID int, column string) ([]string, error) {
	var values []string
	err := s.db.WithContext(ctx).
		Model(&model.SermonNote{}).
		Where("user_id = ? AND "+column+" <> ''", userID).
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	return values, nil
}

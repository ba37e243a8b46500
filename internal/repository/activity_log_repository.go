package repository

import (
	"time"

	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepositoryInterface interface {
	Append(userID uuid.UUID, action, payload string) error
	List(offset, limit int, userID *uuid.UUID, action string) ([]model.ActivityLog, int64, error)
	CountActionBetween(action string, start, end time.Time) (int64, error)
}

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db}
}

func (r *ActivityLogRepository) Append(userID uuid.UUID, action, payload string) error {
	if payload == "" {
		payload = "{}"
	}
	entry := model.ActivityLog{UserID: userID, Action: action, Payload: payload}
	return r.db.Create(&entry).Error
}

func (r *ActivityLogRepository) List(offset, limit int, userID *uuid.UUID, action string) ([]model.ActivityLog, int64, error) {
	var logs []model.ActivityLog
	var total int64
	q := r.db.Model(&model.ActivityLog{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if action != "" {
		q = q.Where("action = ?", action)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error
	return logs, total, err
}

func (r *ActivityLogRepository) CountActionBetween(action string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.ActivityLog{}).
		Where("action = ? AND created_at BETWEEN ? AND ?", action, start, end).
		Count(&count).Error
	return count, err
}

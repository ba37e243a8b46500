package repository

import (
	"errors"
	"time"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDailyLimitReached means the user already spent today's download quota.
var ErrDailyLimitReached = errors.New("daily download limit reached")

type DownloadLogRepositoryInterface interface {
	ConsumeIfUnder(userID, candidateID uuid.UUID, ip string, limit int, start, end time.Time) (int64, error)
	CountBetween(userID uuid.UUID, start, end time.Time) (int64, error)
	CountAllBetween(start, end time.Time) (int64, error)
	CountsByUserBetween(start, end time.Time) ([]dto.UserDownloadCount, error)
}

type DownloadLogRepository struct {
	db *gorm.DB
}

func NewDownloadLogRepository(db *gorm.DB) *DownloadLogRepository {
	return &DownloadLogRepository{db}
}

// ConsumeIfUnder counts the user's download logs inside [start, end] and
// appends a new one when the count is below limit, returning the count after
// the append. The count and the insert run in one transaction under a
// per-user advisory lock, so two simultaneous requests from the same user
// cannot both slip under the limit.
func (r *DownloadLogRepository) ConsumeIfUnder(userID, candidateID uuid.UUID, ip string, limit int, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID.String()).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.DownloadLog{}).
			Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(limit) {
			return ErrDailyLimitReached
		}
		entry := model.DownloadLog{UserID: userID, CandidateID: candidateID, IP: ip}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func (r *DownloadLogRepository) CountBetween(userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.DownloadLog{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Count(&count).Error
	return count, err
}

func (r *DownloadLogRepository) CountAllBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.DownloadLog{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *DownloadLogRepository) CountsByUserBetween(start, end time.Time) ([]dto.UserDownloadCount, error) {
	var counts []dto.UserDownloadCount
	err := r.db.Model(&model.DownloadLog{}).
		Select("download_logs.user_id, users.name, count(*) as count").
		Joins("JOIN users ON users.id = download_logs.user_id").
		Where("download_logs.created_at BETWEEN ? AND ?", start, end).
		Group("download_logs.user_id, users.name").
		Order("count desc").
		Scan(&counts).Error
	return counts, err
}

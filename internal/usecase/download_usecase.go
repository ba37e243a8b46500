package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCandidateNotFound means the requested candidate id does not resolve.
// It is independent of the quota state.
var ErrCandidateNotFound = errors.New("candidate not found")

// ErrQuotaExceeded is the soft denial handed to callers once today's
// download quota is spent.
var ErrQuotaExceeded = repository.ErrDailyLimitReached

type DownloadUsecase struct {
	userRepo      repository.UserRepositoryInterface
	candidateRepo repository.CandidateRepositoryInterface
	downloadRepo  repository.DownloadLogRepositoryInterface
	activityRepo  repository.ActivityLogRepositoryInterface
	defaultLimit  int
	now           func() time.Time
}

func NewDownloadUsecase(userRepo repository.UserRepositoryInterface, candidateRepo repository.CandidateRepositoryInterface, downloadRepo repository.DownloadLogRepositoryInterface, activityRepo repository.ActivityLogRepositoryInterface, defaultLimit int) *DownloadUsecase {
	return &DownloadUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		downloadRepo:  downloadRepo,
		activityRepo:  activityRepo,
		defaultLimit:  defaultLimit,
		now:           time.Now,
	}
}

// AccessResume gates one resume access for the user. Admins bypass the quota
// entirely; recruiters consume one unit of today's quota, and the download
// log row is written before the URL is returned. Returns the URL and the
// user's download count for the day (0 for admins).
func (uc *DownloadUsecase) AccessResume(userID uuid.UUID, candidateID, ip string) (string, int64, error) {
	user, err := uc.userRepo.FindByID(userID.String())
	if err != nil {
		return "", 0, fmt.Errorf("resolve user %s: %w", userID, err)
	}

	candidate, err := uc.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrCandidateNotFound
		}
		return "", 0, err
	}

	var count int64
	if user.Role != model.RoleAdmin {
		limit := user.DailyLimit
		if limit <= 0 {
			limit = uc.defaultLimit
		}
		start, end := DayBoundsUTC(uc.now())
		count, err = uc.downloadRepo.ConsumeIfUnder(user.ID, candidate.ID, ip, limit, start, end)
		if err != nil {
			return "", 0, err
		}
	}

	payload, _ := json.Marshal(map[string]any{"candidate_id": candidate.ID.String(), "count": count})
	if err := uc.activityRepo.Append(user.ID, model.ActionDownload, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return candidate.ResumeURL, count, nil
}

// DayBoundsUTC returns the inclusive bounds of the UTC calendar day holding
// t: [00:00:00.000, 23:59:59.999].
func DayBoundsUTC(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

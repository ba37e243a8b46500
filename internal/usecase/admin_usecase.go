package usecase

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/fadilmartias/recruit-track/internal/response"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUsecase struct {
	userRepo      repository.UserRepositoryInterface
	candidateRepo repository.CandidateRepositoryInterface
	downloadRepo  repository.DownloadLogRepositoryInterface
	activityRepo  repository.ActivityLogRepositoryInterface
	now           func() time.Time
}

func NewAdminUsecase(userRepo repository.UserRepositoryInterface, candidateRepo repository.CandidateRepositoryInterface, downloadRepo repository.DownloadLogRepositoryInterface, activityRepo repository.ActivityLogRepositoryInterface) *AdminUsecase {
	return &AdminUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		downloadRepo:  downloadRepo,
		activityRepo:  activityRepo,
		now:           time.Now,
	}
}

func (uc *AdminUsecase) CreateRecruiter(adminID uuid.UUID, in dto.CreateRecruiterInput) (*model.User, error) {
	fieldErrors := map[string]string{}
	if in.Name == "" {
		fieldErrors["name"] = "name is required"
	}
	if in.Email == "" {
		fieldErrors["email"] = "email is required"
	}
	if len(in.Password) < 8 {
		fieldErrors["password"] = "password must be at least 8 characters"
	}
	if len(fieldErrors) > 0 {
		return nil, util.NewFormError("invalid recruiter input", fieldErrors)
	}
	if _, err := uc.userRepo.FindByEmail(in.Email); err == nil {
		return nil, util.NewFormError("invalid recruiter input", map[string]string{"email": "email already in use"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         model.RoleRecruiter,
		Active:       true,
		DailyLimit:   in.DailyLimit,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]string{"recruiter_id": user.ID.String(), "email": user.Email})
	if err := uc.activityRepo.Append(adminID, model.ActionCreateRecruiter, string(payload)); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return user, nil
}

func (uc *AdminUsecase) ListRecruiters(page, pageSize int) ([]dto.UserDTO, *response.Pagination, error) {
	page, pageSize = NormalizePage(page, pageSize)
	users, total, err := uc.userRepo.ListRecruiters((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDTO{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			Active:     u.Active,
			DailyLimit: u.DailyLimit,
			CreatedAt:  u.CreatedAt,
		})
	}
	return out, response.NewPagination(page, pageSize, total), nil
}

func (uc *AdminUsecase) UpdateRecruiter(id string, in dto.UpdateRecruiterInput) (*model.User, error) {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.DailyLimit != nil {
		user.DailyLimit = *in.DailyLimit
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AdminUsecase) Analytics() (*dto.AnalyticsReport, error) {
	start, end := DayBoundsUTC(uc.now())

	candidates, err := uc.candidateRepo.Count()
	if err != nil {
		return nil, err
	}
	recruiters, err := uc.userRepo.CountRecruiters()
	if err != nil {
		return nil, err
	}
	downloads, err := uc.downloadRepo.CountAllBetween(start, end)
	if err != nil {
		return nil, err
	}
	searches, err := uc.activityRepo.CountActionBetween(model.ActionSearch, start, end)
	if err != nil {
		return nil, err
	}
	byUser, err := uc.downloadRepo.CountsByUserBetween(start, end)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsReport{
		Candidates:      candidates,
		Recruiters:      recruiters,
		DownloadsToday:  downloads,
		SearchesToday:   searches,
		DownloadsByUser: byUser,
	}, nil
}

func (uc *AdminUsecase) ActivityLogs(page, pageSize int, userID, action string) ([]model.ActivityLog, *response.Pagination, error) {
	page, pageSize = NormalizePage(page, pageSize)

	var userFilter *uuid.UUID
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return nil, nil, util.NewFormError("invalid filter", map[string]string{"userId": "must be a valid uuid"})
		}
		userFilter = &parsed
	}

	logs, total, err := uc.activityRepo.List((page-1)*pageSize, pageSize, userFilter, action)
	if err != nil {
		return nil, nil, err
	}
	return logs, response.NewPagination(page, pageSize, total), nil
}

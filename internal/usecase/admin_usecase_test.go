package usecase_test

import (
	"testing"
	"time"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateRecruiter(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, Email: "admin@example.com", Active: true}
	userRepo := newFakeUserRepo(admin)
	activityRepo := &fakeActivityRepo{}
	uc := usecase.NewAdminUsecase(userRepo, newFakeCandidateRepo(), &fakeDownloadRepo{}, activityRepo)

	user, err := uc.CreateRecruiter(admin.ID, dto.CreateRecruiterInput{
		Name:       "New Recruiter",
		Email:      "new@example.com",
		Password:   "longenough",
		DailyLimit: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, model.RoleRecruiter, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, 5, user.DailyLimit)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
	assert.Equal(t, []string{model.ActionCreateRecruiter}, activityRepo.actions())
}

func TestCreateRecruiterValidation(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, Active: true}
	uc := usecase.NewAdminUsecase(newFakeUserRepo(admin), newFakeCandidateRepo(), &fakeDownloadRepo{}, &fakeActivityRepo{})

	_, err := uc.CreateRecruiter(admin.ID, dto.CreateRecruiterInput{Password: "short"})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "name")
	assert.Contains(t, formErr.Errors, "email")
	assert.Contains(t, formErr.Errors, "password")
}

func TestCreateRecruiterDuplicateEmail(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, Active: true}
	existing := &model.User{ID: uuid.New(), Role: model.RoleRecruiter, Email: "taken@example.com", Active: true}
	uc := usecase.NewAdminUsecase(newFakeUserRepo(admin, existing), newFakeCandidateRepo(), &fakeDownloadRepo{}, &fakeActivityRepo{})

	_, err := uc.CreateRecruiter(admin.ID, dto.CreateRecruiterInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "longenough",
	})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "email")
}

func TestUpdateRecruiterPartial(t *testing.T) {
	recruiter := &model.User{ID: uuid.New(), Role: model.RoleRecruiter, Active: true, DailyLimit: 5}
	uc := usecase.NewAdminUsecase(newFakeUserRepo(recruiter), newFakeCandidateRepo(), &fakeDownloadRepo{}, &fakeActivityRepo{})

	inactive := false
	updated, err := uc.UpdateRecruiter(recruiter.ID.String(), dto.UpdateRecruiterInput{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	// untouched fields stay put
	assert.Equal(t, 5, updated.DailyLimit)

	limit := 20
	updated, err = uc.UpdateRecruiter(recruiter.ID.String(), dto.UpdateRecruiterInput{DailyLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.DailyLimit)
	assert.False(t, updated.Active)
}

func TestAnalytics(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, Active: true}
	recruiter := &model.User{ID: uuid.New(), Role: model.RoleRecruiter, Active: true}
	userRepo := newFakeUserRepo(admin, recruiter)

	candidateRepo := newFakeCandidateRepo()
	seedCandidates(t, candidateRepo, "A-1", "A-2")

	now := time.Now().UTC()
	downloadRepo := &fakeDownloadRepo{now: now}
	downloadRepo.entries = []model.DownloadLog{
		{UserID: recruiter.ID, CreatedAt: now},
		{UserID: recruiter.ID, CreatedAt: now.Add(-48 * time.Hour)}, // not today
	}
	activityRepo := &fakeActivityRepo{}
	require.NoError(t, activityRepo.Append(recruiter.ID, model.ActionSearch, "{}"))

	uc := usecase.NewAdminUsecase(userRepo, candidateRepo, downloadRepo, activityRepo)
	report, err := uc.Analytics()
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.Candidates)
	assert.Equal(t, int64(1), report.Recruiters)
	assert.Equal(t, int64(1), report.DownloadsToday)
	assert.Equal(t, int64(1), report.SearchesToday)
	require.Len(t, report.DownloadsByUser, 1)
	assert.Equal(t, int64(1), report.DownloadsByUser[0].Count)
}

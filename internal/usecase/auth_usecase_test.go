package usecase_test

import (
	"os"
	"testing"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	user := &model.User{
		ID:           uuid.New(),
		Email:        "recruiter@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		Role:         model.RoleRecruiter,
		Active:       true,
	}
	userRepo := newFakeUserRepo(user)
	activityRepo := &fakeActivityRepo{}
	uc := usecase.NewAuthUsecase(userRepo, activityRepo)

	token, got, err := uc.Login(dto.LoginInput{Email: "recruiter@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	userID, role, err := util.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, model.RoleRecruiter, role)

	assert.Equal(t, []string{model.ActionLogin}, activityRepo.actions())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	user := &model.User{
		ID:           uuid.New(),
		Email:        "recruiter@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		Role:         model.RoleRecruiter,
		Active:       true,
	}
	uc := usecase.NewAuthUsecase(newFakeUserRepo(user), &fakeActivityRepo{})

	_, _, err := uc.Login(dto.LoginInput{Email: "recruiter@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, _, err = uc.Login(dto.LoginInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	user := &model.User{
		ID:           uuid.New(),
		Email:        "left@example.com",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		Role:         model.RoleRecruiter,
		Active:       false,
	}
	activityRepo := &fakeActivityRepo{}
	uc := usecase.NewAuthUsecase(newFakeUserRepo(user), activityRepo)

	_, _, err := uc.Login(dto.LoginInput{Email: "left@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, usecase.ErrUserInactive)
	assert.Empty(t, activityRepo.entries)
}

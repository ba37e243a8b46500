package usecase

import (
	"errors"
	"log"

	"github.com/fadilmartias/recruit-track/internal/dto"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/fadilmartias/recruit-track/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthUsecase struct {
	userRepo     repository.UserRepositoryInterface
	activityRepo repository.ActivityLogRepositoryInterface
}

func NewAuthUsecase(userRepo repository.UserRepositoryInterface, activityRepo repository.ActivityLogRepositoryInterface) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, activityRepo: activityRepo}
}

func (uc *AuthUsecase) Login(in dto.LoginInput) (string, *model.User, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, ErrUserInactive
	}

	token, err := util.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	if err := uc.activityRepo.Append(user.ID, model.ActionLogin, ""); err != nil {
		log.Printf("activity log append failed: %v", err)
	}
	return token, user, nil
}

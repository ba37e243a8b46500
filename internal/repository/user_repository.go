package repository

import (
	"github.com/fadilmartias/recruit-track/internal/model"
	"gorm.io/gorm"
)

type UserRepositoryInterface interface {
	Create(user *model.User) error
	Update(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	ListRecruiters(offset, limit int) ([]model.User, int64, error)
	CountRecruiters() (int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "id = ?", id).Error
	return &u, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "email = ?", email).Error
	return &u, err
}

func (r *UserRepository) ListRecruiters(offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64
	q := r.db.Model(&model.User{}).Where("role = ?", model.RoleRecruiter)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) CountRecruiters() (int64, error) {
	var total int64
	err := r.db.Model(&model.User{}).Where("role = ?", model.RoleRecruiter).Count(&total).Error
	return total, err
}

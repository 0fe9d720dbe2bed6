package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	ListUsers() ([]user.User, error)
	ListUsersByIDs(ids []uint) ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
	GetProfile(uid uint) (user.UserProfile, error)
	SaveProfile(p *user.UserProfile) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("u_id IN ?", ids).Order("username").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.Where("u_id = ?", id).First(&u).Error
	return u, notFound(err)
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, notFound(err)
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) GetProfile(uid uint) (user.UserProfile, error) {
	var p user.UserProfile
	err := r.db.Where("u_id = ?", uid).First(&p).Error
	return p, notFound(err)
}

func (r *DBUserRepo) SaveProfile(p *user.UserProfile) error {
	return r.db.Omit("User").Save(p).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}

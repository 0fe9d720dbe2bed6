package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/grant"
	"gorm.io/gorm"
)

type GrantRepo interface {
	ListGrants() ([]grant.Grant, error)
	GetGrantByID(id uint) (grant.Grant, error)
	GetGrantBySlug(slug string) (grant.Grant, error)
	CreateGrant(g *grant.Grant) error
	WithTx(tx *gorm.DB) GrantRepo
}

type DBGrantRepo struct {
	db *gorm.DB
}

func NewGrantRepo(db *gorm.DB) *DBGrantRepo {
	return &DBGrantRepo{
		db: db,
	}
}

func (r *DBGrantRepo) withTopics() *gorm.DB {
	return r.db.Preload("Topics", func(db *gorm.DB) *gorm.DB {
		return db.Order("topics.id")
	}).Preload("Topics.Admins")
}

func (r *DBGrantRepo) ListGrants() ([]grant.Grant, error) {
	var grants []grant.Grant
	err := r.withTopics().Order("id").Find(&grants).Error
	return grants, err
}

func (r *DBGrantRepo) GetGrantByID(id uint) (grant.Grant, error) {
	var g grant.Grant
	err := r.withTopics().First(&g, id).Error
	return g, notFound(err)
}

func (r *DBGrantRepo) GetGrantBySlug(slug string) (grant.Grant, error) {
	var g grant.Grant
	err := r.withTopics().Where("slug = ?", slug).First(&g).Error
	return g, notFound(err)
}

func (r *DBGrantRepo) CreateGrant(g *grant.Grant) error {
	return r.db.Create(g).Error
}

func (r *DBGrantRepo) WithTx(tx *gorm.DB) GrantRepo {
	if tx == nil {
		return r
	}
	return &DBGrantRepo{
		db: tx,
	}
}

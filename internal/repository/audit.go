package repository

import (
	"time"

	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail. Zero values match everything.
type AuditFilter struct {
	UserID     *uint
	Resource   audit.Resource
	ResourceID *uint
	Action     audit.Action
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

type AuditRepo interface {
	ListAuditLogs(f AuditFilter) ([]audit.AuditLog, error)
	// ResourceHistory returns every row about one record, oldest first.
	ResourceHistory(resource audit.Resource, id uint) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	PurgeAuditLogsBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) PurgeAuditLogsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) ListAuditLogs(f AuditFilter) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	q := r.db.Model(&audit.AuditLog{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Resource != "" {
		q = q.Where("resource_type = ?", f.Resource)
	}
	if f.ResourceID != nil {
		q = q.Where("resource_id = ?", *f.ResourceID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Since != nil {
		q = q.Where("created_at >= ?", *f.Since)
	}
	if f.Until != nil {
		q = q.Where("created_at <= ?", *f.Until)
	}

	q = q.Order("created_at DESC").Order("id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	err := q.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) ResourceHistory(resource audit.Resource, id uint) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	err := r.db.
		Where("resource_type = ? AND resource_id = ?", resource, id).
		Order("created_at ASC").Order("id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}

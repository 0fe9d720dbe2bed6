package repository

import (
	"github.com/linskybing/grant-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	ListDocuments(ticketID uint) ([]ticket.Document, error)
	GetDocument(ticketID uint, filename string) (ticket.Document, error)
	CreateDocument(d *ticket.Document) error
	UpdateDocument(d *ticket.Document) error
	DeleteDocument(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) ListDocuments(ticketID uint) ([]ticket.Document, error) {
	var docs []ticket.Document
	err := r.db.Where("ticket_id = ?", ticketID).Order("filename").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) GetDocument(ticketID uint, filename string) (ticket.Document, error) {
	var d ticket.Document
	err := r.db.Where("ticket_id = ? AND filename = ?", ticketID, filename).First(&d).Error
	return d, notFound(err)
}

func (r *DBDocumentRepo) CreateDocument(d *ticket.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) UpdateDocument(d *ticket.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return r.db.Delete(&ticket.Document{}, id).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}

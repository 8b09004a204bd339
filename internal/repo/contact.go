package repo

import (
	"studio-site-backend/internal/models"

	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

type ContactRepoInterface interface {
	EnsureSchema() error
	CreateSubmission(sub *models.ContactSubmission) error
}

func NewContactRepository(db *gorm.DB) ContactRepoInterface {
	return &ContactRepo{db: db}
}

// EnsureSchema creates the submissions table when missing. Safe to call on
// every request.
func (r *ContactRepo) EnsureSchema() error {
	if r.db.Migrator().HasTable(&models.ContactSubmission{}) {
		return nil
	}
	return r.db.AutoMigrate(&models.ContactSubmission{})
}

// CreateSubmission inserts one row; the id and timestamp are assigned by
// the database.
func (r *ContactRepo) CreateSubmission(sub *models.ContactSubmission) error {
	return r.db.Create(sub).Error
}

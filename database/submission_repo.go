package database

import (
	"context"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"gorm.io/gorm"
)

type SubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo {
	return &SubmissionRepo{db}
}

// InsertSubmission stores a new submission
func (r *SubmissionRepo) InsertSubmission(ctx context.Context, s *models.Submission) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return errs.NewDatabaseError("create", "submission", err)
	}
	return nil
}

// FindAll returns submissions, newest first
func (r *SubmissionRepo) FindAll(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "submissions", err)
	}
	return submissions, nil
}

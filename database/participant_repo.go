package database

import (
	"context"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"gorm.io/gorm"
)

type ParticipantRepo struct {
	db *gorm.DB
}

func NewParticipantRepo(db *gorm.DB) *ParticipantRepo {
	return &ParticipantRepo{db}
}

// FindAll returns all participants ordered by name
func (r *ParticipantRepo) FindAll(ctx context.Context) ([]models.Participant, error) {
	var participants []models.Participant
	if err := r.db.WithContext(ctx).Order("name").Find(&participants).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "participants", err)
	}
	return participants, nil
}

// FindMedia returns every participant media row
func (r *ParticipantRepo) FindMedia(ctx context.Context) ([]models.ParticipantMedia, error) {
	var media []models.ParticipantMedia
	if err := r.db.WithContext(ctx).Find(&media).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "participant media", err)
	}
	return media, nil
}

func (r *ParticipantRepo) Add(ctx context.Context, participant *models.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return errs.NewDatabaseError("create", "participant", err)
	}
	return nil
}

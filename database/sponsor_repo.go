package database

import (
	"context"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"gorm.io/gorm"
)

type SponsorRepo struct {
	db *gorm.DB
}

func NewSponsorRepo(db *gorm.DB) *SponsorRepo {
	return &SponsorRepo{db}
}

func (r *SponsorRepo) FindAll(ctx context.Context) ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	if err := r.db.WithContext(ctx).Find(&sponsors).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "sponsors", err)
	}
	return sponsors, nil
}

func (r *SponsorRepo) Add(ctx context.Context, sponsor *models.Sponsor) error {
	if err := r.db.WithContext(ctx).Create(sponsor).Error; err != nil {
		return errs.NewDatabaseError("create", "sponsor", err)
	}
	return nil
}

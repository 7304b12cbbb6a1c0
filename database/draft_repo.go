package database

import (
	"context"
	"errors"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftRepo persists submission drafts, one row per session.
type DraftRepo struct {
	db *gorm.DB
}

var _ drafts.Persistence = (*DraftRepo)(nil)

func NewDraftRepo(db *gorm.DB) *DraftRepo {
	return &DraftRepo{db}
}

func (r *DraftRepo) Load(ctx context.Context, key string) (drafts.Draft, error) {
	var row models.SubmissionDraft
	err := r.db.WithContext(ctx).First(&row, "session_id = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return drafts.Draft{}, drafts.ErrNotFound
	}
	if err != nil {
		return drafts.Draft{}, errs.NewDatabaseError("load", "draft", err)
	}
	return drafts.Decode(row.Payload)
}

// Save upserts the draft for key
func (r *DraftRepo) Save(ctx context.Context, key string, d drafts.Draft) error {
	payload, err := drafts.Encode(d)
	if err != nil {
		return err
	}
	row := models.SubmissionDraft{SessionID: key, Payload: payload, SavedAt: d.SavedAt}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "saved_at"}),
	}).Create(&row).Error
	if err != nil {
		return errs.NewDatabaseError("save", "draft", err)
	}
	return nil
}

func (r *DraftRepo) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Delete(&models.SubmissionDraft{}, "session_id = ?", key).Error; err != nil {
		return errs.NewDatabaseError("delete", "draft", err)
	}
	return nil
}

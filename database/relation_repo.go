package database

import (
	"context"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"gorm.io/gorm"
)

// RelationRepo reads one project relationship table.
type RelationRepo[T any] struct {
	db     *gorm.DB
	entity string
}

func NewRelationRepo[T any](db *gorm.DB, entity string) *RelationRepo[T] {
	return &RelationRepo[T]{db: db, entity: entity}
}

// FindAll returns every row of the table
func (r *RelationRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errs.NewDatabaseError("list", r.entity, err)
	}
	return rows, nil
}

// FindByProject returns the rows belonging to one project
func (r *RelationRepo[T]) FindByProject(ctx context.Context, projectID string) ([]T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&rows).Error; err != nil {
		return nil, errs.NewDatabaseError("list", r.entity, err)
	}
	return rows, nil
}

// Add inserts a new row
func (r *RelationRepo[T]) Add(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return errs.NewDatabaseError("create", r.entity, err)
	}
	return nil
}

package database

import (
	"context"
	"fmt"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/fixtures"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts a fixture document in one transaction. Rows whose primary key
// already exists are left untouched, so seeding twice is harmless.
func (d Database) Seed(ctx context.Context, doc fixtures.Document) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
		batches := []struct {
			name string
			rows any
			n    int
		}{
			{"projects", doc.Projects, len(doc.Projects)},
			{"participants", doc.Participants, len(doc.Participants)},
			{"sponsors", doc.Sponsors, len(doc.Sponsors)},
			{"participant media", doc.ParticipantMedia, len(doc.ParticipantMedia)},
			{"project participants", doc.ProjectParticipants, len(doc.ProjectParticipants)},
			{"project sponsors", doc.ProjectSponsors, len(doc.ProjectSponsors)},
			{"project links", doc.ProjectLinks, len(doc.ProjectLinks)},
			{"project tags", doc.ProjectTags, len(doc.ProjectTags)},
			{"project media", doc.ProjectMedia, len(doc.ProjectMedia)},
			{"project budget", doc.ProjectBudgets, len(doc.ProjectBudgets)},
			{"project timeline", doc.ProjectTimelines, len(doc.ProjectTimelines)},
			{"project access", doc.ProjectAccess, len(doc.ProjectAccess)},
			{"project voting", doc.ProjectVoting, len(doc.ProjectVoting)},
		}
		for _, b := range batches {
			if b.n == 0 {
				continue
			}
			if err := tx.Create(b.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", b.name, err)
			}
		}
		return nil
	})
}

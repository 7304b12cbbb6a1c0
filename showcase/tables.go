package showcase

import (
	"context"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// Relationships holds every project relationship table.
type Relationships struct {
	Participants []models.ProjectParticipant
	Sponsors     []models.ProjectSponsor
	Links        []models.ProjectLink
	Tags         []models.ProjectTag
	Media        []models.ProjectMedia
	Budgets      []models.ProjectBudget
	Timelines    []models.ProjectTimeline
	Access       []models.ProjectAccess
	Voting       []models.ProjectVoting
}

// Tables is one snapshot of the entity store, the input of BuildCards.
type Tables struct {
	Projects         []models.Project
	Participants     []models.Participant
	Sponsors         []models.Sponsor
	ParticipantMedia []models.ParticipantMedia
	Relationships    Relationships

	// ExtraCards are curated cards that bypass the join and are appended as-is.
	ExtraCards []Card
}

// EntityStore reads the showcase tables. Reads are snapshot reads; no transaction is needed.
type EntityStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
	ListParticipantMedia(ctx context.Context) ([]models.ParticipantMedia, error)
	ListRelationships(ctx context.Context) (Relationships, error)
}

func groupBy[T any](rows []T, key func(T) string) map[string][]T {
	grouped := make(map[string][]T)
	for _, row := range rows {
		k := key(row)
		grouped[k] = append(grouped[k], row)
	}
	return grouped
}

func indexBy[T any](rows []T, key func(T) string) map[string]T {
	index := make(map[string]T, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, exists := index[k]; !exists {
			index[k] = row
		}
	}
	return index
}

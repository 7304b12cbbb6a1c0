package database

import (
	"context"
	"fmt"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Database struct {
	db                     *gorm.DB
	projectRepo            *ProjectRepo
	participantRepo        *ParticipantRepo
	sponsorRepo            *SponsorRepo
	submissionRepo         *SubmissionRepo
	draftRepo              *DraftRepo
	projectParticipantRepo *RelationRepo[models.ProjectParticipant]
	projectSponsorRepo     *RelationRepo[models.ProjectSponsor]
	projectLinkRepo        *RelationRepo[models.ProjectLink]
	projectTagRepo         *RelationRepo[models.ProjectTag]
	projectMediaRepo       *RelationRepo[models.ProjectMedia]
	projectBudgetRepo      *RelationRepo[models.ProjectBudget]
	projectTimelineRepo    *RelationRepo[models.ProjectTimeline]
	projectAccessRepo      *RelationRepo[models.ProjectAccess]
	projectVotingRepo      *RelationRepo[models.ProjectVoting]
}

var _ showcase.EntityStore = Database{}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                     db,
		projectRepo:            NewProjectRepo(db),
		participantRepo:        NewParticipantRepo(db),
		sponsorRepo:            NewSponsorRepo(db),
		submissionRepo:         NewSubmissionRepo(db),
		draftRepo:              NewDraftRepo(db),
		projectParticipantRepo: NewRelationRepo[models.ProjectParticipant](db, "project participants"),
		projectSponsorRepo:     NewRelationRepo[models.ProjectSponsor](db, "project sponsors"),
		projectLinkRepo:        NewRelationRepo[models.ProjectLink](db, "project links"),
		projectTagRepo:         NewRelationRepo[models.ProjectTag](db, "project tags"),
		projectMediaRepo:       NewRelationRepo[models.ProjectMedia](db, "project media"),
		projectBudgetRepo:      NewRelationRepo[models.ProjectBudget](db, "project budget"),
		projectTimelineRepo:    NewRelationRepo[models.ProjectTimeline](db, "project timeline"),
		projectAccessRepo:      NewRelationRepo[models.ProjectAccess](db, "project access"),
		projectVotingRepo:      NewRelationRepo[models.ProjectVoting](db, "project voting"),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ParticipantRepo() *ParticipantRepo {
	return d.participantRepo
}

func (d Database) SponsorRepo() *SponsorRepo {
	return d.sponsorRepo
}

func (d Database) SubmissionRepo() *SubmissionRepo {
	return d.submissionRepo
}

func (d Database) DraftRepo() *DraftRepo {
	return d.draftRepo
}

func (d Database) ProjectTagRepo() *RelationRepo[models.ProjectTag] {
	return d.projectTagRepo
}

func (d Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	return d.projectRepo.FindAll(ctx)
}

func (d Database) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return d.participantRepo.FindAll(ctx)
}

func (d Database) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	return d.sponsorRepo.FindAll(ctx)
}

func (d Database) ListParticipantMedia(ctx context.Context) ([]models.ParticipantMedia, error) {
	return d.participantRepo.FindMedia(ctx)
}

// ListRelationships loads every relationship table concurrently.
func (d Database) ListRelationships(ctx context.Context) (showcase.Relationships, error) {
	var rel showcase.Relationships
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { rel.Participants, err = d.projectParticipantRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Sponsors, err = d.projectSponsorRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Links, err = d.projectLinkRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Tags, err = d.projectTagRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Media, err = d.projectMediaRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Budgets, err = d.projectBudgetRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Timelines, err = d.projectTimelineRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Access, err = d.projectAccessRepo.FindAll(ctx); return })
	g.Go(func() (err error) { rel.Voting, err = d.projectVotingRepo.FindAll(ctx); return })
	if err := g.Wait(); err != nil {
		return showcase.Relationships{}, err
	}
	return rel, nil
}

// AdminTables are the tables exposed read-only to administrators.
var AdminTables = []string{"projects", "participants", "sponsors", "submissions"}

// ListTable returns the raw rows of one admin table.
func (d Database) ListTable(ctx context.Context, table string) (any, error) {
	switch table {
	case "projects":
		return d.projectRepo.FindAll(ctx)
	case "participants":
		return d.participantRepo.FindAll(ctx)
	case "sponsors":
		return d.sponsorRepo.FindAll(ctx)
	case "submissions":
		return d.submissionRepo.FindAll(ctx)
	default:
		return nil, errs.NewNotFoundError(fmt.Sprintf("table %q", table))
	}
}

// Ping checks that the primary connection is usable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseError("open", "connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseError("ping", "connection", err)
	}
	return nil
}

// Package fixtures serves the showcase from a YAML file instead of a database.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"gopkg.in/yaml.v3"
)

//go:embed showcase.yaml
var defaultFixtures []byte

// Document is the on-disk layout: one list per table plus curated cards.
type Document struct {
	Projects            []models.Project            `yaml:"projects"`
	Participants        []models.Participant        `yaml:"participants"`
	Sponsors            []models.Sponsor            `yaml:"sponsors"`
	ParticipantMedia    []models.ParticipantMedia   `yaml:"participant_media"`
	ProjectParticipants []models.ProjectParticipant `yaml:"project_participants"`
	ProjectSponsors     []models.ProjectSponsor     `yaml:"project_sponsors"`
	ProjectLinks        []models.ProjectLink        `yaml:"project_links"`
	ProjectTags         []models.ProjectTag         `yaml:"project_tags"`
	ProjectMedia        []models.ProjectMedia       `yaml:"project_media"`
	ProjectBudgets      []models.ProjectBudget      `yaml:"project_budget"`
	ProjectTimelines    []models.ProjectTimeline    `yaml:"project_timeline"`
	ProjectAccess       []models.ProjectAccess      `yaml:"project_access"`
	ProjectVoting       []models.ProjectVoting      `yaml:"project_voting"`
	ExtraCards          []showcase.Card             `yaml:"extra_cards"`
}

// Store is a read-only EntityStore backed by a Document.
type Store struct {
	doc Document
}

var _ showcase.EntityStore = (*Store)(nil)

// Load reads a fixture file from path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the fixtures compiled into the binary.
func Default() (*Store, error) {
	return Parse(bytes.NewReader(defaultFixtures))
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &Store{doc: doc}, nil
}

func (d Document) validate() error {
	seen := make(map[string]bool, len(d.Projects))
	for i, p := range d.Projects {
		if p.ID == "" {
			return fmt.Errorf("fixtures: project %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("fixtures: duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
	}
	for i, p := range d.Participants {
		if p.ID == "" {
			return fmt.Errorf("fixtures: participant %d has no id", i)
		}
	}
	return nil
}

// Document returns the parsed fixture tables.
func (s *Store) Document() Document {
	return s.doc
}

// ExtraCards returns the curated cards listed in the file.
func (s *Store) ExtraCards() []showcase.Card {
	return s.doc.ExtraCards
}

func (s *Store) ListProjects(context.Context) ([]models.Project, error) {
	return s.doc.Projects, nil
}

func (s *Store) ListParticipants(context.Context) ([]models.Participant, error) {
	return s.doc.Participants, nil
}

func (s *Store) ListSponsors(context.Context) ([]models.Sponsor, error) {
	return s.doc.Sponsors, nil
}

func (s *Store) ListParticipantMedia(context.Context) ([]models.ParticipantMedia, error) {
	return s.doc.ParticipantMedia, nil
}

func (s *Store) ListRelationships(context.Context) (showcase.Relationships, error) {
	return showcase.Relationships{
		Participants: s.doc.ProjectParticipants,
		Sponsors:     s.doc.ProjectSponsors,
		Links:        s.doc.ProjectLinks,
		Tags:         s.doc.ProjectTags,
		Media:        s.doc.ProjectMedia,
		Budgets:      s.doc.ProjectBudgets,
		Timelines:    s.doc.ProjectTimelines,
		Access:       s.doc.ProjectAccess,
		Voting:       s.doc.ProjectVoting,
	}, nil
}

package showcase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service answers showcase queries. Every call takes a fresh snapshot from the
// store and rebuilds cards; nothing derived is cached or persisted.
type Service struct {
	store      EntityStore
	resolver   assets.Resolver
	extraCards []Card
	logger     zerolog.Logger
}

type Option func(*Service)

// WithExtraCards appends curated cards that are not present in the store.
func WithExtraCards(cards []Card) Option {
	return func(s *Service) {
		s.extraCards = append(s.extraCards, cards...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(store EntityStore, resolver assets.Resolver, opts ...Option) *Service {
	s := &Service{
		store:    store,
		resolver: resolver,
		logger:   log.With().Str("component", "showcase").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) snapshot(ctx context.Context) (Tables, error) {
	start := time.Now()
	var (
		t   Tables
		err error
	)
	if t.Projects, err = s.store.ListProjects(ctx); err != nil {
		return Tables{}, fmt.Errorf("list projects: %w", err)
	}
	if t.Participants, err = s.store.ListParticipants(ctx); err != nil {
		return Tables{}, fmt.Errorf("list participants: %w", err)
	}
	if t.Sponsors, err = s.store.ListSponsors(ctx); err != nil {
		return Tables{}, fmt.Errorf("list sponsors: %w", err)
	}
	if t.ParticipantMedia, err = s.store.ListParticipantMedia(ctx); err != nil {
		return Tables{}, fmt.Errorf("list participant media: %w", err)
	}
	if t.Relationships, err = s.store.ListRelationships(ctx); err != nil {
		return Tables{}, fmt.Errorf("list relationships: %w", err)
	}
	t.ExtraCards = s.extraCards

	s.logger.Debug().
		Int("projects", len(t.Projects)).
		Int("participants", len(t.Participants)).
		Dur("duration", time.Since(start)).
		Msg("loaded showcase snapshot")
	return t, nil
}

func (s *Service) allCards(ctx context.Context) ([]Card, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCards(s.resolver, t), nil
}

// Cards returns the cards matching q.
func (s *Service) Cards(ctx context.Context, q CardQuery) ([]Card, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCards(cards, q), nil
}

// Card returns one card by project id, or a not-found error.
func (s *Service) Card(ctx context.Context, id string) (Card, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return Card{}, err
	}
	for _, c := range cards {
		if c.ID == id {
			return c, nil
		}
	}
	return Card{}, errs.NewNotFound("project")
}

// Participants returns the aggregated participants matching q.
func (s *Service) Participants(ctx context.Context, q ParticipantQuery) ([]AggregatedParticipant, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return nil, err
	}
	return FilterParticipants(AggregateParticipants(cards), q), nil
}

// Participant returns one aggregated participant by slug, or a not-found error.
func (s *Service) Participant(ctx context.Context, slug string) (AggregatedParticipant, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return AggregatedParticipant{}, err
	}
	p, ok := FindParticipant(AggregateParticipants(cards), slug)
	if !ok {
		return AggregatedParticipant{}, errs.NewNotFound("participant")
	}
	return p, nil
}

// Roles returns the distinct participant roles for the filter UI.
func (s *Service) Roles(ctx context.Context) ([]string, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return nil, err
	}
	return CollectRoles(AggregateParticipants(cards)), nil
}

// Tags returns the distinct tags and associations for the filter UI.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	cards, err := s.allCards(ctx)
	if err != nil {
		return nil, err
	}
	return CollectTags(cards), nil
}

var sponsorRank = map[models.SponsorType]int{
	models.SponsorTypeMain:      0,
	models.SponsorTypePartner:   1,
	models.SponsorTypeSupporter: 2,
}

// Sponsors returns every sponsor, main sponsors first, then by name.
func (s *Service) Sponsors(ctx context.Context) ([]CardSponsor, error) {
	sponsors, err := s.store.ListSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	j := joiner{resolver: s.resolver}
	views := make([]CardSponsor, 0, len(sponsors))
	for _, sp := range sponsors {
		views = append(views, j.sponsorView(sp))
	}

	collator := newCollator()
	rank := func(t models.SponsorType) int {
		if r, ok := sponsorRank[t]; ok {
			return r
		}
		return len(sponsorRank)
	}
	sort.SliceStable(views, func(i, k int) bool {
		ri, rk := rank(views[i].Type), rank(views[k].Type)
		if ri != rk {
			return ri < rk
		}
		return collator.CompareString(views[i].Name, views[k].Name) < 0
	})
	return views, nil
}

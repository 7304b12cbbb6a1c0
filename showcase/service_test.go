package showcase

import (
	"context"
	"errors"
	"testing"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tables Tables
	err    error
}

func (f fakeStore) ListProjects(context.Context) ([]models.Project, error) {
	return f.tables.Projects, f.err
}

func (f fakeStore) ListParticipants(context.Context) ([]models.Participant, error) {
	return f.tables.Participants, nil
}

func (f fakeStore) ListSponsors(context.Context) ([]models.Sponsor, error) {
	return f.tables.Sponsors, nil
}

func (f fakeStore) ListParticipantMedia(context.Context) ([]models.ParticipantMedia, error) {
	return f.tables.ParticipantMedia, nil
}

func (f fakeStore) ListRelationships(context.Context) (Relationships, error) {
	return f.tables.Relationships, nil
}

func newTestService() *Service {
	store := fakeStore{tables: Tables{
		Projects: []models.Project{
			{ID: "1", Title: "Robotdans"},
			{ID: "2", Title: "Ljusrum"},
		},
		Participants: []models.Participant{{ID: "p1", Name: "Anna Li"}, {ID: "p2", Name: "Bo"}},
		Sponsors: []models.Sponsor{
			{ID: "s1", Name: "Zeta", Type: models.SponsorTypeSupporter},
			{ID: "s2", Name: "Beta", Type: models.SponsorTypePartner},
			{ID: "s3", Name: "Alfa", Type: models.SponsorTypePartner},
			{ID: "s4", Name: "Huvud", Type: models.SponsorTypeMain},
		},
		Relationships: Relationships{
			Participants: []models.ProjectParticipant{
				{ID: "r1", ProjectID: "1", ParticipantID: "p1", Role: "Artist"},
				{ID: "r2", ProjectID: "2", ParticipantID: "p1", Role: "Curator"},
				{ID: "r3", ProjectID: "2", ParticipantID: "p2", Role: "Technician"},
			},
			Tags: []models.ProjectTag{{ID: "t1", ProjectID: "1", Tag: "Robotik"}},
		},
	}}
	return NewService(store, testResolver, WithExtraCards([]Card{{ID: "extra", Title: "Gästverk", Tags: []string{"Gäst"}}}))
}

func TestService_Cards(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cards, err := svc.Cards(ctx, CardQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "extra"}, ids(cards))

	cards, err = svc.Cards(ctx, CardQuery{Tag: "Robotik"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(cards))
}

func TestService_Card(t *testing.T) {
	svc := newTestService()

	card, err := svc.Card(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Ljusrum", card.Title)

	_, err = svc.Card(context.Background(), "404")
	assert.True(t, errs.IsNotFound(err))
}

func TestService_Participants(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	list, err := svc.Participants(ctx, ParticipantQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Anna Li", list[0].Name)
	assert.Equal(t, []string{"Artist", "Curator"}, list[0].Roles)

	p, err := svc.Participant(ctx, "anna-li")
	require.NoError(t, err)
	assert.Len(t, p.Projects, 2)

	_, err = svc.Participant(ctx, "nobody")
	assert.True(t, errs.IsNotFound(err))

	roles, err := svc.Roles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Artist", "Curator", "Technician"}, roles)
}

func TestService_TagsAndSponsors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Robotik", "Gäst"}, tags)

	sponsors, err := svc.Sponsors(ctx)
	require.NoError(t, err)
	var names []string
	for _, s := range sponsors {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Huvud", "Alfa", "Beta", "Zeta"}, names)
}

func TestService_StoreErrorPropagates(t *testing.T) {
	svc := NewService(fakeStore{err: errors.New("boom")}, testResolver)
	_, err := svc.Cards(context.Background(), CardQuery{})
	assert.ErrorContains(t, err, "list projects")
}

package showcase

import (
	"testing"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var testResolver = assets.New("https://cdn.test/storage", "/placeholder.svg")

func TestBuildCards_NoRelationshipsLeavesSectionsAbsent(t *testing.T) {
	cards := BuildCards(testResolver, Tables{
		Projects: []models.Project{{ID: "1", Title: "X"}},
	})

	require.Len(t, cards, 1)
	c := cards[0]
	assert.Nil(t, c.Participants)
	assert.Nil(t, c.Sponsors)
	assert.Nil(t, c.Links)
	assert.Nil(t, c.Tags)
	assert.Nil(t, c.Media)
	assert.Nil(t, c.Budget)
	assert.Nil(t, c.Timeline)
	assert.Nil(t, c.Access)
	assert.Nil(t, c.Voting)
	assert.Equal(t, "/placeholder.svg", c.Image)
}

func TestBuildCards_DanglingForeignKeysAreDropped(t *testing.T) {
	cards := BuildCards(testResolver, Tables{
		Projects:     []models.Project{{ID: "1", Title: "X"}},
		Participants: []models.Participant{{ID: "p1", Name: "Anna"}},
		Sponsors:     []models.Sponsor{{ID: "s1", Name: "Acme", Type: models.SponsorTypeMain}},
		Relationships: Relationships{
			Participants: []models.ProjectParticipant{
				{ID: "r1", ProjectID: "1", ParticipantID: "missing", Role: "Artist"},
				{ID: "r2", ProjectID: "1", ParticipantID: "p1", Role: "Curator"},
				{ID: "r3", ProjectID: "gone", ParticipantID: "p1", Role: "Artist"},
			},
			Sponsors: []models.ProjectSponsor{{ID: "r4", ProjectID: "1", SponsorID: "missing"}},
			Tags:     []models.ProjectTag{{ID: "r5", ProjectID: "gone", Tag: "Robotik"}},
		},
	})

	require.Len(t, cards, 1)
	require.Len(t, cards[0].Participants, 1)
	assert.Equal(t, "Curator", cards[0].Participants[0].Role)
	assert.Nil(t, cards[0].Sponsors, "only dangling sponsor rows means the section is absent")
	assert.Nil(t, cards[0].Tags)
}

func TestBuildCards_FullJoin(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cards := BuildCards(testResolver, Tables{
		Projects: []models.Project{
			{ID: "1", Title: "Drönarbalett", ImagePath: "project-images/drone.png", Purpose: ptr("Dans"), Associations: []string{"Natur"}, CreatedAt: created},
			{ID: "2", Title: "Second", ImagePath: "https://elsewhere.test/b.png"},
		},
		Participants: []models.Participant{
			{ID: "p1", Name: "Anna", Bio: ptr("Konstnär"), AvatarPath: ptr("anna.jpg"), SocialLinks: []models.SocialLink{{Platform: "instagram", URL: "https://ig.test/anna"}}},
		},
		Sponsors: []models.Sponsor{{ID: "s1", Name: "Acme", Type: models.SponsorTypePartner, LogoPath: ptr("acme.svg")}},
		ParticipantMedia: []models.ParticipantMedia{
			{ID: "m1", ParticipantID: "p1", Type: models.MediaTypeVideo, Category: models.MediaCategoryFeatured, URL: "reel.mp4", Title: "Reel", Year: ptr("2023")},
		},
		Relationships: Relationships{
			Participants: []models.ProjectParticipant{{ID: "r1", ProjectID: "1", ParticipantID: "p1", Role: "Artist"}},
			Sponsors:     []models.ProjectSponsor{{ID: "r2", ProjectID: "1", SponsorID: "s1"}},
			Links:        []models.ProjectLink{{ID: "r3", ProjectID: "1", Type: models.LinkTypeGithub, URL: "https://github.test/drone"}},
			Tags:         []models.ProjectTag{{ID: "r4", ProjectID: "1", Tag: "Robotik"}, {ID: "r5", ProjectID: "1", Tag: "Dans"}},
			Media:        []models.ProjectMedia{{ID: "r6", ProjectID: "1", Type: "image", URL: "still.jpg", Title: "Still"}},
			Budgets: []models.ProjectBudget{
				{ID: "b1", ProjectID: "1", Amount: ptr(1000.0), Currency: ptr("SEK")},
				{ID: "b2", ProjectID: "1", Amount: ptr(9999.0)},
			},
			Timelines: []models.ProjectTimeline{{ID: "t1", ProjectID: "1", StartDate: ptr("2024-07-01")}},
			Access:    []models.ProjectAccess{{ID: "a1", ProjectID: "1", Capacity: ptr(40)}},
			Voting:    []models.ProjectVoting{{ID: "v1", ProjectID: "2", Enabled: true}},
		},
	})

	require.Len(t, cards, 2)
	c := cards[0]
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "https://cdn.test/storage/project-images/drone.png", c.Image)
	assert.Equal(t, "Dans", c.Purpose)
	assert.Equal(t, []string{"Natur"}, c.Associations)
	assert.Equal(t, created, c.CreatedAt)

	require.Len(t, c.Participants, 1)
	p := c.Participants[0]
	assert.Equal(t, "Anna", p.Name)
	assert.Equal(t, "Artist", p.Role)
	assert.Equal(t, "Konstnär", p.Bio)
	assert.Equal(t, "https://cdn.test/storage/participant-avatars/anna.jpg", p.Avatar)
	require.Len(t, p.Media, 1)
	assert.Equal(t, "https://cdn.test/storage/participant-media/reel.mp4", p.Media[0].URL)
	assert.Equal(t, "2023", p.Media[0].Year)

	require.Len(t, c.Sponsors, 1)
	assert.Equal(t, "https://cdn.test/storage/sponsor-logos/acme.svg", c.Sponsors[0].Logo)
	assert.Equal(t, []CardLink{{Type: models.LinkTypeGithub, URL: "https://github.test/drone"}}, c.Links)
	assert.Equal(t, []string{"Robotik", "Dans"}, c.Tags)
	require.Len(t, c.Media, 1)
	assert.Equal(t, "https://cdn.test/storage/project-media/still.jpg", c.Media[0].URL)

	require.NotNil(t, c.Budget)
	assert.Equal(t, 1000.0, *c.Budget.Amount, "first budget row wins")
	assert.Equal(t, "SEK", c.Budget.Currency)
	require.NotNil(t, c.Timeline)
	assert.Equal(t, "2024-07-01", c.Timeline.StartDate)
	require.NotNil(t, c.Access)
	assert.Equal(t, 40, *c.Access.Capacity)
	assert.Nil(t, c.Voting)

	second := cards[1]
	assert.Equal(t, "https://elsewhere.test/b.png", second.Image)
	require.NotNil(t, second.Voting)
	assert.True(t, second.Voting.Enabled)
	assert.Nil(t, second.Participants)
}

func TestBuildCards_ParticipantWithoutAvatarHasEmptyAvatar(t *testing.T) {
	cards := BuildCards(testResolver, Tables{
		Projects:     []models.Project{{ID: "1", Title: "X"}},
		Participants: []models.Participant{{ID: "p1", Name: "Anna"}},
		Relationships: Relationships{
			Participants: []models.ProjectParticipant{{ID: "r1", ProjectID: "1", ParticipantID: "p1", Role: "Artist"}},
		},
	})
	require.Len(t, cards[0].Participants, 1)
	assert.Empty(t, cards[0].Participants[0].Avatar)
	assert.Nil(t, cards[0].Participants[0].Media)
}

func TestBuildCards_ExtraCardsAppendedUnchanged(t *testing.T) {
	extra := Card{ID: "curated-1", Title: "Curated", Image: "/images/curated.png", Tags: []string{"Gäst"}}
	cards := BuildCards(testResolver, Tables{
		Projects:   []models.Project{{ID: "b", Title: "B"}, {ID: "a", Title: "A"}},
		ExtraCards: []Card{extra},
	})

	require.Len(t, cards, 3)
	assert.Equal(t, "b", cards[0].ID)
	assert.Equal(t, "a", cards[1].ID)
	assert.Equal(t, extra, cards[2])
}

func TestBuildCards_EndToEnd(t *testing.T) {
	cards := BuildCards(testResolver, Tables{
		Projects:     []models.Project{{ID: "1", Title: "X"}},
		Participants: []models.Participant{{ID: "p1", Name: "Anna"}},
		Relationships: Relationships{
			Tags:         []models.ProjectTag{{ID: "t1", ProjectID: "1", Tag: "Robotik"}},
			Participants: []models.ProjectParticipant{{ID: "r1", ProjectID: "1", ParticipantID: "p1", Role: "Artist"}},
		},
	})

	require.Len(t, cards, 1)
	assert.Equal(t, []string{"Robotik"}, cards[0].Tags)
	require.Len(t, cards[0].Participants, 1)
	assert.Equal(t, "Anna", cards[0].Participants[0].Name)
	assert.Equal(t, "Artist", cards[0].Participants[0].Role)

	agg := AggregateParticipants(cards)
	require.Len(t, agg, 1)
	assert.Equal(t, "Anna", agg[0].Name)
	assert.Equal(t, []string{"Artist"}, agg[0].Roles)
	require.Len(t, agg[0].Projects, 1)
	assert.Equal(t, "1", agg[0].Projects[0].ID)
	assert.Equal(t, "X", agg[0].Projects[0].Title)
	assert.Equal(t, "Artist", agg[0].Projects[0].Role)
}

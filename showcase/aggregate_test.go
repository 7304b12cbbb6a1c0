package showcase

import (
	"testing"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardWith(id, title string, participants ...CardParticipant) Card {
	return Card{ID: id, Title: title, Participants: participants}
}

func TestAggregateParticipants_LongestBioWins(t *testing.T) {
	short := CardParticipant{Name: "Anna", Role: "Artist", Bio: "Short."}
	long := CardParticipant{Name: "Anna", Role: "Artist", Bio: "A much longer biography text."}

	for name, cards := range map[string][]Card{
		"short first": {cardWith("1", "X", short), cardWith("2", "Y", long)},
		"long first":  {cardWith("1", "X", long), cardWith("2", "Y", short)},
	} {
		t.Run(name, func(t *testing.T) {
			agg := AggregateParticipants(cards)
			require.Len(t, agg, 1)
			assert.Equal(t, "A much longer biography text.", agg[0].Bio)
		})
	}
}

func TestAggregateParticipants_EmptyBioNeverReplaces(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "X", CardParticipant{Name: "Anna", Bio: "Has a bio"}),
		cardWith("2", "Y", CardParticipant{Name: "Anna"}),
	})
	require.Len(t, agg, 1)
	assert.Equal(t, "Has a bio", agg[0].Bio)
}

func TestAggregateParticipants_EqualLengthBioKeepsFirst(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "X", CardParticipant{Name: "Anna", Bio: "aaaa"}),
		cardWith("2", "Y", CardParticipant{Name: "Anna", Bio: "bbbb"}),
	})
	assert.Equal(t, "aaaa", agg[0].Bio)
}

func TestAggregateParticipants_FirstAvatarWins(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "X", CardParticipant{Name: "Anna"}),
		cardWith("2", "Y", CardParticipant{Name: "Anna", Avatar: "url-A"}),
		cardWith("3", "Z", CardParticipant{Name: "Anna", Avatar: "url-B"}),
	})
	require.Len(t, agg, 1)
	assert.Equal(t, "url-A", agg[0].Avatar)
}

func TestAggregateParticipants_RolesAndProjects(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "Ljus Rum", CardParticipant{Name: "Anna", Role: "Artist"}, CardParticipant{Name: "Anna", Role: "Producer"}),
		cardWith("2", "Ljud", CardParticipant{Name: "Anna", Role: "Artist"}),
		cardWith("3", "Tyst", CardParticipant{Name: "Anna"}),
	})
	require.Len(t, agg, 1)
	assert.Equal(t, []string{"Artist", "Producer"}, agg[0].Roles)
	assert.Equal(t, []ParticipantProject{
		{ID: "1", Slug: "ljus-rum", Title: "Ljus Rum", Role: "Artist"},
		{ID: "2", Slug: "ljud", Title: "Ljud", Role: "Artist"},
		{ID: "3", Slug: "tyst", Title: "Tyst", Role: ""},
	}, agg[0].Projects)
}

func TestAggregateParticipants_MediaAndLinksDedupByURL(t *testing.T) {
	first := cardWith("1", "X", CardParticipant{Name: "Anna", Website: "https://anna.test"})
	first.Media = []MediaItem{{Type: "image", URL: "https://m.test/a.jpg", Title: "First title"}}
	first.Links = []CardLink{{Type: models.LinkTypeGithub, URL: "https://github.test/x"}}

	second := cardWith("2", "Y", CardParticipant{
		Name:        "Anna",
		Website:     "https://anna.test",
		SocialLinks: []models.SocialLink{{Platform: "github", URL: "https://github.test/x"}, {Platform: "instagram", URL: "https://ig.test/anna"}},
		Media:       []MediaItem{{Type: "video", URL: "https://m.test/reel.mp4", Title: "Reel"}},
	})
	second.Media = []MediaItem{{Type: "image", URL: "https://m.test/a.jpg", Title: "Second title"}}

	agg := AggregateParticipants([]Card{first, second})
	require.Len(t, agg, 1)

	require.Len(t, agg[0].Media, 2)
	assert.Equal(t, "First title", agg[0].Media[0].Title)
	assert.Equal(t, "https://m.test/reel.mp4", agg[0].Media[1].URL)

	assert.Equal(t, []PersonalLink{
		{Type: "github", URL: "https://github.test/x"},
		{Type: "website", URL: "https://anna.test"},
		{Type: "instagram", URL: "https://ig.test/anna"},
	}, agg[0].PersonalLinks)
}

func TestAggregateParticipants_SlugsFollowTraversalOrder(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "X", CardParticipant{Name: "Anna Li"}),
		cardWith("2", "Y", CardParticipant{Name: "Anna Li"}, CardParticipant{Name: "anna li"}),
	})
	require.Len(t, agg, 2)

	bySlug := map[string]string{}
	for _, p := range agg {
		bySlug[p.Name] = p.Slug
	}
	assert.Equal(t, "anna-li", bySlug["Anna Li"])
	// Third occurrence of the base slug across the stream.
	assert.Equal(t, "anna-li-3", bySlug["anna li"])
}

func TestAggregateParticipants_SortedByLocaleName(t *testing.T) {
	agg := AggregateParticipants([]Card{
		cardWith("1", "X",
			CardParticipant{Name: "Örjan"},
			CardParticipant{Name: "Ärla"},
			CardParticipant{Name: "Åke"},
			CardParticipant{Name: "Zelda"},
			CardParticipant{Name: "anna"},
			CardParticipant{Name: "Bo"},
		),
	})
	var names []string
	for _, p := range agg {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"anna", "Bo", "Zelda", "Åke", "Ärla", "Örjan"}, names)
}

func TestAggregateParticipants_EmptyInput(t *testing.T) {
	assert.Empty(t, AggregateParticipants(nil))
}

func TestFindParticipant(t *testing.T) {
	list := []AggregatedParticipant{{Name: "Anna", Slug: "anna"}}
	p, ok := FindParticipant(list, "anna")
	assert.True(t, ok)
	assert.Equal(t, "Anna", p.Name)

	_, ok = FindParticipant(list, "bo")
	assert.False(t, ok)
}

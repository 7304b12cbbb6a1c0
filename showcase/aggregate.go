package showcase

import (
	"slices"
	"sort"
	"unicode/utf8"
)

// AggregateParticipants merges every card participant into one record per exact,
// case-sensitive name. The result is sorted by name with locale-aware collation.
//
// Merge policy per occurrence: roles are appended once in insertion order; the
// longest non-empty bio wins; the first non-empty avatar wins; projects are
// unique by id; media and links are unique by URL with the first seen kept.
func AggregateParticipants(cards []Card) []AggregatedParticipant {
	seq := NewSlugSequence()
	byName := make(map[string]*AggregatedParticipant)
	var order []*AggregatedParticipant

	for _, card := range cards {
		for _, cp := range card.Participants {
			slug := seq.Next(cp.Name)
			agg, seen := byName[cp.Name]
			if !seen {
				agg = &AggregatedParticipant{
					Name:          cp.Name,
					Slug:          slug,
					Roles:         []string{},
					Projects:      []ParticipantProject{},
					Media:         []MediaItem{},
					PersonalLinks: []PersonalLink{},
				}
				byName[cp.Name] = agg
				order = append(order, agg)
			}
			agg.merge(card, cp)
		}
	}

	out := make([]AggregatedParticipant, 0, len(order))
	for _, agg := range order {
		out = append(out, *agg)
	}

	collator := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

func (a *AggregatedParticipant) merge(card Card, cp CardParticipant) {
	if cp.Role != "" && !slices.Contains(a.Roles, cp.Role) {
		a.Roles = append(a.Roles, cp.Role)
	}
	if cp.Bio != "" && utf8.RuneCountInString(cp.Bio) > utf8.RuneCountInString(a.Bio) {
		a.Bio = cp.Bio
	}
	if a.Avatar == "" && cp.Avatar != "" {
		a.Avatar = cp.Avatar
	}
	if a.Website == "" && cp.Website != "" {
		a.Website = cp.Website
	}

	hasProject := slices.ContainsFunc(a.Projects, func(p ParticipantProject) bool { return p.ID == card.ID })
	if !hasProject {
		a.Projects = append(a.Projects, ParticipantProject{
			ID:    card.ID,
			Slug:  Slugify(card.Title),
			Title: card.Title,
			Role:  cp.Role,
		})
	}

	for _, m := range card.Media {
		a.addMedia(m)
	}
	for _, m := range cp.Media {
		a.addMedia(m)
	}

	for _, l := range card.Links {
		a.addLink(PersonalLink{Type: string(l.Type), URL: l.URL})
	}
	if cp.Website != "" {
		a.addLink(PersonalLink{Type: "website", URL: cp.Website})
	}
	for _, l := range cp.SocialLinks {
		a.addLink(PersonalLink{Type: l.Platform, URL: l.URL})
	}
}

func (a *AggregatedParticipant) addMedia(m MediaItem) {
	if m.URL == "" {
		return
	}
	if slices.ContainsFunc(a.Media, func(existing MediaItem) bool { return existing.URL == m.URL }) {
		return
	}
	a.Media = append(a.Media, m)
}

func (a *AggregatedParticipant) addLink(l PersonalLink) {
	if l.URL == "" {
		return
	}
	if slices.ContainsFunc(a.PersonalLinks, func(existing PersonalLink) bool { return existing.URL == l.URL }) {
		return
	}
	a.PersonalLinks = append(a.PersonalLinks, l)
}

// FindParticipant looks up an aggregated participant by slug.
func FindParticipant(participants []AggregatedParticipant, slug string) (AggregatedParticipant, bool) {
	for _, p := range participants {
		if p.Slug == slug {
			return p, true
		}
	}
	return AggregatedParticipant{}, false
}

package showcase

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale drives name and title ordering.
var Locale = language.Swedish

// Collators keep internal buffers and are not safe for concurrent use, so one is built per call.
func newCollator() *collate.Collator {
	return collate.New(Locale)
}

const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortAZ       = "az"
	SortZA       = "za"
	SortProjects = "projects"

	// FilterAll disables the tag or role filter.
	FilterAll = "all"
)

// CardQuery selects and orders cards. Zero values disable each stage.
type CardQuery struct {
	Search string
	Tag    string
	Sort   string
}

// FilterCards applies text search, then the tag filter, then a stable sort.
// The input slice is never modified.
func FilterCards(cards []Card, q CardQuery) []Card {
	out := make([]Card, 0, len(cards))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, c := range cards {
		if needle != "" && !cardMatches(c, needle) {
			continue
		}
		if !hasTag(c, q.Tag) {
			continue
		}
		out = append(out, c)
	}

	switch q.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return compareCreated(out[i], out[j], true) < 0 })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return compareCreated(out[i], out[j], false) < 0 })
	case SortAZ, SortZA:
		collator := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			cmp := collator.CompareString(out[i].Title, out[j].Title)
			if q.Sort == SortZA {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return out
}

func cardMatches(c Card, needle string) bool {
	fields := []string{c.Title, c.Description, c.Purpose}
	for _, p := range c.Participants {
		fields = append(fields, p.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func hasTag(c Card, tag string) bool {
	if tag == "" || tag == FilterAll {
		return true
	}
	return slices.Contains(c.Tags, tag) || slices.Contains(c.Associations, tag)
}

// compareCreated orders dated cards by creation time and puts undated cards
// after all dated ones in either direction. Undated cards order by id.
func compareCreated(a, b Card, newestFirst bool) int {
	aZero, bZero := a.CreatedAt.IsZero(), b.CreatedAt.IsZero()
	var c int
	switch {
	case aZero && bZero:
		c = strings.Compare(a.ID, b.ID)
	case aZero:
		return 1
	case bZero:
		return -1
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if newestFirst {
		return -c
	}
	return c
}

// CollectTags returns the distinct tags and associations of cards in first-seen order.
func CollectTags(cards []Card) []string {
	seen := make(map[string]bool)
	tags := []string{}
	add := func(t string) {
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}
	for _, c := range cards {
		for _, t := range c.Tags {
			add(t)
		}
		for _, t := range c.Associations {
			add(t)
		}
	}
	return tags
}

// ParticipantQuery selects and orders aggregated participants.
type ParticipantQuery struct {
	Search string
	Role   string
	Sort   string
}

// FilterParticipants applies text search, then the role filter, then a stable sort.
func FilterParticipants(participants []AggregatedParticipant, q ParticipantQuery) []AggregatedParticipant {
	out := make([]AggregatedParticipant, 0, len(participants))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range participants {
		if needle != "" && !participantMatches(p, needle) {
			continue
		}
		if q.Role != "" && q.Role != FilterAll && !slices.Contains(p.Roles, q.Role) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortAZ, SortZA:
		collator := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			cmp := collator.CompareString(out[i].Name, out[j].Name)
			if q.Sort == SortZA {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortProjects:
		sort.SliceStable(out, func(i, j int) bool { return len(out[i].Projects) > len(out[j].Projects) })
	}
	return out
}

func participantMatches(p AggregatedParticipant, needle string) bool {
	fields := append([]string{p.Name, p.Bio}, p.Roles...)
	for _, proj := range p.Projects {
		fields = append(fields, proj.Title)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// CollectRoles returns the distinct roles across participants in first-seen order.
func CollectRoles(participants []AggregatedParticipant) []string {
	seen := make(map[string]bool)
	roles := []string{}
	for _, p := range participants {
		for _, r := range p.Roles {
			if !seen[r] {
				seen[r] = true
				roles = append(roles, r)
			}
		}
	}
	return roles
}

package showcase

import (
	"strings"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// projectRows is every relationship row belonging to one project.
type projectRows struct {
	participants []models.ProjectParticipant
	sponsors     []models.ProjectSponsor
	links        []models.ProjectLink
	tags         []models.ProjectTag
	media        []models.ProjectMedia
	budget       *models.ProjectBudget
	timeline     *models.ProjectTimeline
	access       *models.ProjectAccess
	voting       *models.ProjectVoting
}

type joiner struct {
	resolver         assets.Resolver
	participants     map[string]models.Participant
	sponsors         map[string]models.Sponsor
	participantMedia map[string][]models.ParticipantMedia
	rows             map[string]*projectRows
}

// BuildCards joins every project with its relationship rows. Output order follows
// t.Projects, followed by t.ExtraCards unchanged. Rows whose project, participant
// or sponsor cannot be resolved are dropped.
func BuildCards(resolver assets.Resolver, t Tables) []Card {
	j := joiner{
		resolver:         resolver,
		participants:     indexBy(t.Participants, func(p models.Participant) string { return p.ID }),
		sponsors:         indexBy(t.Sponsors, func(s models.Sponsor) string { return s.ID }),
		participantMedia: groupBy(t.ParticipantMedia, func(m models.ParticipantMedia) string { return m.ParticipantID }),
		rows:             groupRows(t.Relationships),
	}

	cards := make([]Card, 0, len(t.Projects)+len(t.ExtraCards))
	for _, p := range t.Projects {
		cards = append(cards, j.card(p))
	}
	return append(cards, t.ExtraCards...)
}

func groupRows(r Relationships) map[string]*projectRows {
	rows := make(map[string]*projectRows)
	get := func(projectID string) *projectRows {
		pr, ok := rows[projectID]
		if !ok {
			pr = &projectRows{}
			rows[projectID] = pr
		}
		return pr
	}

	for _, row := range r.Participants {
		pr := get(row.ProjectID)
		pr.participants = append(pr.participants, row)
	}
	for _, row := range r.Sponsors {
		pr := get(row.ProjectID)
		pr.sponsors = append(pr.sponsors, row)
	}
	for _, row := range r.Links {
		pr := get(row.ProjectID)
		pr.links = append(pr.links, row)
	}
	for _, row := range r.Tags {
		pr := get(row.ProjectID)
		pr.tags = append(pr.tags, row)
	}
	for _, row := range r.Media {
		pr := get(row.ProjectID)
		pr.media = append(pr.media, row)
	}

	// Singular sections: first match wins.
	for i := range r.Budgets {
		if pr := get(r.Budgets[i].ProjectID); pr.budget == nil {
			pr.budget = &r.Budgets[i]
		}
	}
	for i := range r.Timelines {
		if pr := get(r.Timelines[i].ProjectID); pr.timeline == nil {
			pr.timeline = &r.Timelines[i]
		}
	}
	for i := range r.Access {
		if pr := get(r.Access[i].ProjectID); pr.access == nil {
			pr.access = &r.Access[i]
		}
	}
	for i := range r.Voting {
		if pr := get(r.Voting[i].ProjectID); pr.voting == nil {
			pr.voting = &r.Voting[i]
		}
	}
	return rows
}

func (j joiner) card(p models.Project) Card {
	card := Card{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: deref(p.FullDescription),
		Image:           j.resolver.Resolve(assets.BucketProjectImages, p.ImagePath),
		Purpose:         deref(p.Purpose),
		ExpectedImpact:  deref(p.ExpectedImpact),
		Associations:    append([]string{}, p.Associations...),
		CreatedAt:       p.CreatedAt,
	}

	pr, ok := j.rows[p.ID]
	if !ok {
		return card
	}

	card.Participants = nonEmpty(j.cardParticipants(pr.participants))
	card.Sponsors = nonEmpty(j.cardSponsors(pr.sponsors))
	card.Links = nonEmpty(mapRows(pr.links, func(l models.ProjectLink) (CardLink, bool) {
		if strings.TrimSpace(l.URL) == "" {
			return CardLink{}, false
		}
		return CardLink{Type: l.Type, URL: l.URL}, true
	}))
	card.Tags = nonEmpty(mapRows(pr.tags, func(t models.ProjectTag) (string, bool) {
		return t.Tag, strings.TrimSpace(t.Tag) != ""
	}))
	card.Media = nonEmpty(mapRows(pr.media, func(m models.ProjectMedia) (MediaItem, bool) {
		if strings.TrimSpace(m.URL) == "" {
			return MediaItem{}, false
		}
		return MediaItem{
			Type:        m.Type,
			URL:         j.resolver.Resolve(assets.BucketProjectMedia, m.URL),
			Title:       m.Title,
			Description: deref(m.Description),
		}, true
	}))

	if b := pr.budget; b != nil {
		card.Budget = &Budget{Amount: b.Amount, Currency: deref(b.Currency), Breakdown: nonEmpty(b.Breakdown)}
	}
	if t := pr.timeline; t != nil {
		card.Timeline = &Timeline{StartDate: deref(t.StartDate), EndDate: deref(t.EndDate), Milestones: nonEmpty(t.Milestones)}
	}
	if a := pr.access; a != nil {
		card.Access = &Access{
			Requirements:         nonEmpty(a.Requirements),
			TargetAudience:       deref(a.TargetAudience),
			Capacity:             a.Capacity,
			RegistrationRequired: a.RegistrationRequired,
		}
	}
	if v := pr.voting; v != nil {
		card.Voting = &Voting{Enabled: v.Enabled, Categories: nonEmpty(v.Categories), Results: nonEmpty(v.Results)}
	}
	return card
}

func (j joiner) cardParticipants(rows []models.ProjectParticipant) []CardParticipant {
	return mapRows(rows, func(row models.ProjectParticipant) (CardParticipant, bool) {
		p, ok := j.participants[row.ParticipantID]
		if !ok {
			return CardParticipant{}, false
		}
		cp := CardParticipant{
			ID:          p.ID,
			Name:        p.Name,
			Role:        row.Role,
			Bio:         deref(p.Bio),
			Website:     deref(p.Website),
			SocialLinks: nonEmpty(p.SocialLinks),
		}
		if path := deref(p.AvatarPath); strings.TrimSpace(path) != "" {
			cp.Avatar = j.resolver.Resolve(assets.BucketParticipantAvatars, path)
		}
		cp.Media = nonEmpty(mapRows(j.participantMedia[p.ID], func(m models.ParticipantMedia) (MediaItem, bool) {
			if strings.TrimSpace(m.URL) == "" {
				return MediaItem{}, false
			}
			return MediaItem{
				Type:        string(m.Type),
				URL:         j.resolver.Resolve(assets.BucketParticipantMedia, m.URL),
				Title:       m.Title,
				Description: deref(m.Description),
				Category:    string(m.Category),
				Year:        deref(m.Year),
			}, true
		}))
		return cp, true
	})
}

func (j joiner) cardSponsors(rows []models.ProjectSponsor) []CardSponsor {
	return mapRows(rows, func(row models.ProjectSponsor) (CardSponsor, bool) {
		s, ok := j.sponsors[row.SponsorID]
		if !ok {
			return CardSponsor{}, false
		}
		return j.sponsorView(s), true
	})
}

func (j joiner) sponsorView(s models.Sponsor) CardSponsor {
	view := CardSponsor{ID: s.ID, Name: s.Name, Type: s.Type, Website: deref(s.Website)}
	if path := deref(s.LogoPath); strings.TrimSpace(path) != "" {
		view.Logo = j.resolver.Resolve(assets.BucketSponsorLogos, path)
	}
	return view
}

func mapRows[T, U any](rows []T, fn func(T) (U, bool)) []U {
	var out []U
	for _, row := range rows {
		if mapped, ok := fn(row); ok {
			out = append(out, mapped)
		}
	}
	return out
}

// nonEmpty normalises an empty collection to nil so it is reported as absent.
func nonEmpty[S ~[]E, E any](s S) []E {
	if len(s) == 0 {
		return nil
	}
	return []E(s)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

package robotevents

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SkillsStandings queries the unauthenticated seasonal skills feed,
// optionally restricted to one grade level partition. no credential is
// required.
func (c *Client) SkillsStandings(ctx context.Context, postSeason bool, gradeLevel string) ([]SkillsStanding, error) {
	query := url.Values{}
	if postSeason {
		query.Set("post_season", "1")
	} else {
		query.Set("post_season", "0")
	}
	if gradeLevel != "" {
		query.Set("grade_level", gradeLevel)
	}

	var standings []SkillsStanding
	err := c.get(
		ctx,
		fmt.Sprintf("%s/%d/skills", c.skillsUrl, c.seasonId),
		query,
		&standings,
	)
	if err != nil {
		return nil, err
	}
	return standings, nil
}

// EventBySku resolves an event's external code to its API record.
// returns nil when no event matches.
func (c *Client) EventBySku(ctx context.Context, sku string) (*Event, error) {
	query := url.Values{}
	query.Set("sku[]", sku)
	events, err := getAll[Event](ctx, c, "/events", query)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// EventSkills lists an event's itemized skills runs, one entry per team
// per run type.
func (c *Client) EventSkills(ctx context.Context, eventId int) ([]Skill, error) {
	return getAll[Skill](ctx, c, fmt.Sprintf("/events/%d/skills", eventId), nil)
}

// EventAwards lists every award given at one event, each carrying its
// team winners.
func (c *Client) EventAwards(ctx context.Context, eventId int) ([]Award, error) {
	return getAll[Award](ctx, c, fmt.Sprintf("/events/%d/awards", eventId), nil)
}

// TeamMatches lists a team's matches for the configured season.
func (c *Client) TeamMatches(ctx context.Context, teamId int) ([]Match, error) {
	query := url.Values{}
	query.Set("season[]", strconv.Itoa(c.seasonId))
	return getAll[Match](ctx, c, fmt.Sprintf("/teams/%d/matches", teamId), query)
}

// TeamAwards lists a team's awards across the configured season.
func (c *Client) TeamAwards(ctx context.Context, teamId int) ([]Award, error) {
	query := url.Values{}
	query.Set("season[]", strconv.Itoa(c.seasonId))
	return getAll[Award](ctx, c, fmt.Sprintf("/teams/%d/awards", teamId), query)
}

// TeamsByNumber resolves display numbers to opaque team ids, scoped to
// the configured program and season so numbers shared across programs
// cannot collide.
func (c *Client) TeamsByNumber(ctx context.Context, numbers []string) ([]Team, error) {
	query := url.Values{}
	for _, number := range numbers {
		query.Add("number[]", number)
	}
	query.Set("program[]", strconv.Itoa(c.programId))
	query.Set("season[]", strconv.Itoa(c.seasonId))
	return getAll[Team](ctx, c, "/teams", query)
}

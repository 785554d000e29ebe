package robotevents

// payload shapes for the two upstream surfaces: the unauthenticated
// seasonal skills standings feed, and the authenticated v2 API.

type SkillsTeam struct {
	Id           int    `json:"id"`
	Team         string `json:"team"`
	TeamName     string `json:"teamName"`
	Organization string `json:"organization"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	GradeLevel   string `json:"gradeLevel"`
	RegionId     int    `json:"regionId"`
	CountryId    int    `json:"countryId"`
}

type SkillsScores struct {
	Score       int `json:"score"`
	Programming int `json:"programming"`
	Driver      int `json:"driver"`
}

type SkillsStanding struct {
	Rank   int          `json:"rank"`
	Team   SkillsTeam   `json:"team"`
	Scores SkillsScores `json:"scores"`
}

// IdInfo is the v2 API's embedded reference shape; Code is only set on
// event references.
type IdInfo struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Event struct {
	Id              int    `json:"id"`
	Sku             string `json:"sku"`
	Name            string `json:"name"`
	Start           string `json:"start"`
	End             string `json:"end"`
	AwardsFinalized bool   `json:"awards_finalized"`
}

// Skill is one itemized run-type entry in an event's skills ranking.
type Skill struct {
	Id       int    `json:"id"`
	Event    IdInfo `json:"event"`
	Team     IdInfo `json:"team"`
	Type     string `json:"type"`
	Rank     int    `json:"rank"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
}

const (
	SkillTypeDriver      = "driver"
	SkillTypeProgramming = "programming"
)

type AllianceTeam struct {
	Team    IdInfo `json:"team"`
	Sitting bool   `json:"sitting"`
}

// Alliance is one of exactly two opposing groups in a match. Score is
// a pointer because unplayed matches carry no recorded score.
type Alliance struct {
	Color string         `json:"color"`
	Score *int           `json:"score"`
	Teams []AllianceTeam `json:"teams"`
}

type Match struct {
	Id        int        `json:"id"`
	Event     IdInfo     `json:"event"`
	Division  IdInfo     `json:"division"`
	Round     int        `json:"round"`
	Instance  int        `json:"instance"`
	Matchnum  int        `json:"matchnum"`
	Name      string     `json:"name"`
	Scheduled string     `json:"scheduled"`
	Started   string     `json:"started"`
	Alliances []Alliance `json:"alliances"`
}

type TeamWinner struct {
	Division IdInfo `json:"division"`
	Team     IdInfo `json:"team"`
}

type Award struct {
	Id          int          `json:"id"`
	Event       IdInfo       `json:"event"`
	Order       int          `json:"order"`
	Title       string       `json:"title"`
	TeamWinners []TeamWinner `json:"teamWinners"`
}

type TeamLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Team struct {
	Id           int          `json:"id"`
	Number       string       `json:"number"`
	TeamName     string       `json:"team_name"`
	Organization string       `json:"organization"`
	Location     TeamLocation `json:"location"`
	Grade        string       `json:"grade"`
	Program      IdInfo       `json:"program"`
}

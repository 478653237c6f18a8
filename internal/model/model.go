package model

// GoalID is a goal's stable identity. Legacy clients sent numeric ids, newer
// ones send strings; both decode to the same string form so id comparisons
// never depend on the wire type.
type GoalID string

type Goal struct {
	ID        GoalID `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
}

type GoalLists struct {
	Daily   []Goal `json:"daily"`
	Weekly  []Goal `json:"weekly"`
	Monthly []Goal `json:"monthly"`
}

type CheckIn struct {
	Emotions []string `json:"emotions"`
	Feeling  string   `json:"feeling"`
}

type SOAP struct {
	Scripture   string `json:"scripture"`
	Observation string `json:"observation"`
	Application string `json:"application"`
	Prayer      string `json:"prayer"`
	Thoughts    string `json:"thoughts"`
}

// Empty reports whether no SOAP field has content. Thoughts are notes on top
// of a study, not a study by themselves, so they don't count.
func (s SOAP) Empty() bool {
	return s.Scripture == "" && s.Observation == "" && s.Application == "" && s.Prayer == ""
}

type LeadershipRating struct {
	Wisdom    int `json:"wisdom"`
	Courage   int `json:"courage"`
	Patience  int `json:"patience"`
	Integrity int `json:"integrity"`
}

// IsZero reports whether no rating was recorded. Scores run 1-10, so an
// all-zero object only occurs when the section was never touched.
func (r LeadershipRating) IsZero() bool {
	return r.Wisdom == 0 && r.Courage == 0 && r.Patience == 0 && r.Integrity == 0
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SaveEntryRequest carries one autosave. Every field is optional except the
// date; missing sections default to empty structures.
type SaveEntryRequest struct {
	Date             string           `json:"date" binding:"required"`
	CheckIn          CheckIn          `json:"checkIn"`
	Gratitude        StringSlice      `json:"gratitude"`
	SOAP             SOAP             `json:"soap"`
	Goals            GoalLists        `json:"goals"`
	DeletedGoalIDs   IDSlice          `json:"deletedGoalIds"`
	DailyIntention   string           `json:"dailyIntention"`
	GrowthQuestion   string           `json:"growthQuestion"`
	LeadershipRating LeadershipRating `json:"leadershipRating"`
	Completed        bool             `json:"completed"`
}

type ReconcileRequest struct {
	Date  string    `json:"date" binding:"required"`
	Goals GoalLists `json:"goals"`
}

// --- Analytics snapshot ---

type ScopeCompletion struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type GoalCompletion struct {
	Daily   ScopeCompletion `json:"daily"`
	Weekly  ScopeCompletion `json:"weekly"`
	Monthly ScopeCompletion `json:"monthly"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Color    string `json:"color"`
}

type MonthProgress struct {
	Month   string `json:"month"`
	Entries int    `json:"entries"`
	Goals   int    `json:"goals"`
}

type LeadershipScores struct {
	Wisdom    float64 `json:"wisdom"`
	Courage   float64 `json:"courage"`
	Patience  float64 `json:"patience"`
	Integrity float64 `json:"integrity"`
}

type DisciplineRates struct {
	SOAP      int `json:"soap"`
	Prayer    int `json:"prayer"`
	Gratitude int `json:"gratitude"`
	Goals     int `json:"goals"`
}

type HeatmapDay struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	HasEntry   bool   `json:"hasEntry"`
	Activities int    `json:"activities"`
	Intensity  string `json:"intensity"`
}

type AnalyticsSnapshot struct {
	CurrentStreak     int              `json:"currentStreak"`
	LongestStreak     int              `json:"longestStreak"`
	TotalEntries      int              `json:"totalEntries"`
	CompletionRate    int              `json:"completionRate"`
	ThisWeek          int              `json:"thisWeek"`
	GoalCompletion    GoalCompletion   `json:"goalCompletion"`
	CategoryBreakdown []CategoryCount  `json:"categoryBreakdown"`
	MonthlyProgress   []MonthProgress  `json:"monthlyProgress"`
	LeadershipScores  LeadershipScores `json:"leadershipScores"`
	Disciplines       DisciplineRates  `json:"disciplines"`
	Heatmap           []HeatmapDay     `json:"heatmap"`
}

package model

import "time"

type User struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is one user's journal record for one calendar date. Dates are stored
// as YYYY-MM-DD strings; structured sections live in JSON columns.
type Entry struct {
	ID               int              `gorm:"primaryKey" json:"id"`
	UserID           int              `gorm:"uniqueIndex:uk_user_date" json:"user_id"`
	EntryDate        string           `gorm:"type:date;uniqueIndex:uk_user_date" json:"date"`
	CheckIn          CheckIn          `gorm:"type:json" json:"checkIn"`
	Gratitude        StringSlice      `gorm:"type:json" json:"gratitude"`
	SOAP             SOAP             `gorm:"type:json;column:soap" json:"soap"`
	Goals            GoalLists        `gorm:"type:json" json:"goals"`
	DeletedGoalIDs   IDSlice          `gorm:"type:json" json:"deletedGoalIds"`
	DailyIntention   string           `json:"dailyIntention"`
	GrowthQuestion   string           `json:"growthQuestion"`
	LeadershipRating LeadershipRating `gorm:"type:json" json:"leadershipRating"`
	Completed        bool             `json:"completed"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type SermonNote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `json:"user_id"`
	NoteDate  string    `gorm:"type:date" json:"date"`
	Title     string    `json:"title"`
	Church    string    `json:"church"`
	Speaker   string    `json:"speaker"`
	Scripture string    `json:"scripture"`
	Notes     string    `json:"notes"`
	Takeaways string    `json:"takeaways"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string       { return "users" }
func (Entry) TableName() string      { return "daily_entries" }
func (SermonNote) TableName() string { return "sermon_notes" }

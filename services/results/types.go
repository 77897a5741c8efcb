package results

import "time"

type School struct {
	ID   int64
	Key  string
	Name string
}

type Athlete struct {
	ID        int64
	SchoolID  int64
	FullName  string
	FirstName string
	LastName  string
	Gender    string
	GradYear  int64
	Slug      string
}

// Course difficulty is calibrated so 1.0 is a reference flat course.
// Rated is false until someone supplies a rating, results on unrated
// courses keep a raw time but no normalized time.
type Course struct {
	ID               int64
	Name             string
	DistanceMeters   float64
	DifficultyRating float64
	Rated            bool
}

type Race struct {
	ID       int64
	Key      string
	MeetID   int64
	CourseID int64
	Gender   string
	Division string
	MeetDate time.Time
	Season   int64
	Course   Course
}

type Result struct {
	ID        int64
	AthleteID int64
	RaceID    int64
	TimeCs    int64
	// 0 when the source didn't report a finishing place
	Place        int64
	Source       string
	NormalizedCs int64
	Normalized   bool
}

type ConflictKind string

const (
	ConflictNameVariant    ConflictKind = "athlete_name_variant"
	ConflictSlugCollision  ConflictKind = "slug_collision"
	ConflictDifferentTimes ConflictKind = "different_times_same_athlete_race"
)

type ConflictStatus string

const (
	ConflictPending  ConflictStatus = "pending"
	ConflictResolved ConflictStatus = "resolved"
	ConflictRejected ConflictStatus = "rejected"
)

// Conflict is a flagged ambiguity waiting for human adjudication.
// LeftRef/RightRef are entity ids whose meaning depends on Kind:
// athlete ids for identity conflicts, result ids for time conflicts.
type Conflict struct {
	ID               int64
	Kind             ConflictKind
	Status           ConflictStatus
	LeftRef          int64
	RightRef         int64
	Detail           string
	RawRow           string
	TimeDifferenceCs int64
	CreatedAt        time.Time
}

// NewConflict is a Conflict before it has an id or status.
type NewConflict struct {
	Kind             ConflictKind
	LeftRef          int64
	RightRef         int64
	Detail           string
	RawRow           string
	TimeDifferenceCs int64
}

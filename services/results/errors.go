package results

import (
	"errors"
	"fmt"
)

// the reconciler never guesses at organizational identities, so both
// of these are row-fatal: reported to the batch, never retried.
var (
	ErrUnknownSchool = errors.New("unknown school")
	ErrUnknownRace   = errors.New("unknown race")
)

// SlugCollisionError is returned by CreateAthlete when the derived
// (name, school, grad year) slug already belongs to another athlete.
type SlugCollisionError struct {
	Slug string
}

func (e SlugCollisionError) Error() string {
	return fmt.Sprintf("athlete slug already taken: %q", e.Slug)
}

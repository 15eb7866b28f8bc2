package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const defaultPlayersPerSide = 5

// AvailabilityWindow is a weekly recurring window during which a ground
// accepts reservations. Minutes are counted from midnight, local to the
// ground.
type AvailabilityWindow struct {
	Weekday  time.Weekday `json:"weekday"`
	OpenMin  int          `json:"open_min"`
	CloseMin int          `json:"close_min"`
}

type Ground struct {
	ID        string               `json:"id"`
	OwnerID   string               `json:"owner_id"`
	Name      string               `json:"name"`
	Location  string               `json:"location"`
	Size      string               `json:"size"` // e.g. "5-a-side"
	Windows   []AvailabilityWindow `json:"windows"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt *time.Time           `json:"deleted_at,omitempty"`
}

type GroundDocument struct {
	ID        string    `json:"id"`
	GroundID  string    `json:"ground_id"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateGroundInput struct {
	OwnerID  string
	Name     string
	Location string
	Size     string
	Windows  []AvailabilityWindow
}

// TeamCapacity derives the per-booking roster capacity from the ground size
// ("7-a-side" -> 7). Unparseable sizes fall back to five-a-side.
func (g *Ground) TeamCapacity() int {
	digits := g.Size
	if i := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = digits[:i]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return defaultPlayersPerSide
	}
	return n
}

// Covers reports whether a slot of the given start and duration lies fully
// inside one of the ground's availability windows.
func (g *Ground) Covers(date time.Time, startMin, durationMin int) bool {
	end := startMin + durationMin
	for _, w := range g.Windows {
		if w.Weekday == date.Weekday() && startMin >= w.OpenMin && end <= w.CloseMin {
			return true
		}
	}
	return false
}

// ValidateWindows checks the ground invariant: windows on the same weekday
// must not overlap and every window must be well-formed.
func ValidateWindows(windows []AvailabilityWindow) error {
	for i, w := range windows {
		if w.OpenMin < 0 || w.CloseMin > 24*60 || w.OpenMin >= w.CloseMin {
			return fmt.Errorf("%w: window %d has invalid bounds", ErrValidation, i)
		}
		for _, other := range windows[:i] {
			if other.Weekday != w.Weekday {
				continue
			}
			if w.OpenMin < other.CloseMin && other.OpenMin < w.CloseMin {
				return fmt.Errorf("%w: windows overlap on %s", ErrValidation, w.Weekday)
			}
		}
	}
	return nil
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

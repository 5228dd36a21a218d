package mute

import (
	"errors"
	"sync"
	"time"

	"office_attendance_bot/internal"
)

var ErrInvalidDuration = errors.New("mute duration must be a positive number of days")

type Status struct {
	Muted     bool
	ExpiresOn time.Time
	DaysLeft  int
}

// Registry holds temporary opt-outs from poll delivery. ExpiresOn is the last
// muted day, so muting for n days on day D covers D through D+n-1.
type Registry struct {
	mu       sync.Mutex
	entries  map[string]time.Time
	location *time.Location
	now      func() time.Time
}

func NewRegistry(location *time.Location) *Registry {
	return &Registry{
		entries:  make(map[string]time.Time),
		location: location,
		now:      time.Now,
	}
}

func (r *Registry) Today() time.Time {
	return internal.Today(r.now(), r.location)
}

// Mute replaces any existing entry for the user.
func (r *Registry) Mute(userID string, days int) (time.Time, error) {
	if days <= 0 {
		return time.Time{}, ErrInvalidDuration
	}

	expiresOn := r.Today().AddDate(0, 0, days-1)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[userID] = expiresOn
	return expiresOn, nil
}

func (r *Registry) Unmute(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[userID]; !ok {
		return false
	}
	delete(r.entries, userID)
	return true
}

// Status drops an entry that has already expired as a side effect.
func (r *Registry) Status(userID string, today time.Time) Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresOn, ok := r.entries[userID]
	if !ok {
		return Status{}
	}

	if expiresOn.Before(today) {
		delete(r.entries, userID)
		return Status{}
	}

	return Status{
		Muted:     true,
		ExpiresOn: expiresOn,
		DaysLeft:  internal.DaysBetween(today, expiresOn) + 1,
	}
}

func (r *Registry) IsMuted(userID string, today time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresOn, ok := r.entries[userID]
	return ok && !expiresOn.Before(today)
}

func (r *Registry) CleanupExpired(today time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, expiresOn := range r.entries {
		if expiresOn.Before(today) {
			delete(r.entries, userID)
			removed++
		}
	}
	return removed
}

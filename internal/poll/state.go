package poll

import (
	"sort"
	"sync"
	"time"

	"office_attendance_bot/configs"
	"office_attendance_bot/internal/messenger"
)

type Snapshot struct {
	Coming         []string
	NotComing      []string
	Maybe          []string
	TotalResponses int
}

// State tracks the one live poll: its target date, the latest choice of every
// user and the message each user was sent.
type State struct {
	mu         sync.RWMutex
	activeDate *time.Time
	responses  map[string]string
	handles    map[string]messenger.Handle
	order      []string
}

func NewState() *State {
	return &State{
		responses: make(map[string]string),
		handles:   make(map[string]messenger.Handle),
	}
}

func (s *State) StartNewPoll(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeDate = &date
	s.responses = make(map[string]string)
	s.handles = make(map[string]messenger.Handle)
	s.order = nil
}

func (s *State) RecordHandle(userID string, handle messenger.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[userID]; !ok {
		s.order = append(s.order, userID)
	}
	s.handles[userID] = handle
}

// RecordResponse overwrites the user's previous choice. Users without a handle
// are accepted too.
func (s *State) RecordResponse(userID, choice string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[userID] = choice
}

func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeDate = nil
	s.responses = make(map[string]string)
	s.handles = make(map[string]messenger.Handle)
	s.order = nil
}

func (s *State) ActiveDate() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeDate == nil {
		return time.Time{}, false
	}
	return *s.activeDate, true
}

// Handles lists the tracked messages in the order they were recorded.
func (s *State) Handles() []messenger.Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handles := make([]messenger.Handle, 0, len(s.order))
	for _, userID := range s.order {
		handles = append(handles, s.handles[userID])
	}
	return handles
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		Coming:    []string{},
		NotComing: []string{},
		Maybe:     []string{},
	}

	for userID, choice := range s.responses {
		switch choice {
		case configs.ChoiceYes:
			snapshot.Coming = append(snapshot.Coming, userID)
		case configs.ChoiceNo:
			snapshot.NotComing = append(snapshot.NotComing, userID)
		case configs.ChoiceMaybe:
			snapshot.Maybe = append(snapshot.Maybe, userID)
		default:
			continue
		}
		snapshot.TotalResponses++
	}

	sort.Strings(snapshot.Coming)
	sort.Strings(snapshot.NotComing)
	sort.Strings(snapshot.Maybe)

	return snapshot
}

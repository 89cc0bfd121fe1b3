// Package visitor keeps the per-browser state that a single-page app would hold client side:
// pending notifications, the navigation payload handed from the case list to the courtroom,
// and the visitor's open courtroom session. Each Visitor is owned by one browser cookie.
package visitor

import (
	"sync"
	"time"

	"aarohan/models"
	"aarohan/services/courtroom"

	"github.com/google/uuid"
)

// FlashLevel is the style of a notification
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash is a one-shot notification shown on the next rendered page
type Flash struct {
	Level   FlashLevel
	Message string
}

// Visitor is the state container of one browser
type Visitor struct {
	ID string

	mu        sync.Mutex
	flashes   []Flash
	navCase   *models.CaseRecord
	courtroom *courtroom.Session
	lastSeen  time.Time
}

func newVisitor(id string, now time.Time) *Visitor {
	return &Visitor{ID: id, lastSeen: now}
}

// AddFlash queues a notification
func (v *Visitor) AddFlash(level FlashLevel, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.flashes = append(v.flashes, Flash{Level: level, Message: message})
}

// Success queues a success notification
func (v *Visitor) Success(message string) { v.AddFlash(FlashSuccess, message) }

// Error queues an error notification
func (v *Visitor) Error(message string) { v.AddFlash(FlashError, message) }

// TakeFlashes returns and clears the queued notifications
func (v *Visitor) TakeFlashes() []Flash {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.flashes
	v.flashes = nil
	return out
}

// SetNavigationCase hands a case record to the next courtroom page load
func (v *Visitor) SetNavigationCase(c models.CaseRecord) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.navCase = &c
}

// TakeNavigationCase consumes the navigation payload if it is for the given case id.
// A payload for another case is discarded.
func (v *Visitor) TakeNavigationCase(caseID string) (models.CaseRecord, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	c := v.navCase
	v.navCase = nil
	if c == nil || c.ID != caseID {
		return models.CaseRecord{}, false
	}
	return *c, true
}

// OpenCourtroom makes s the visitor's courtroom session, closing any previous one
func (v *Visitor) OpenCourtroom(s *courtroom.Session) {
	v.mu.Lock()
	prev := v.courtroom
	v.courtroom = s
	v.mu.Unlock()

	if prev != nil && prev != s {
		prev.Close()
	}
}

// Courtroom returns the open session for the case, or nil
func (v *Visitor) Courtroom(caseID string) *courtroom.Session {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.courtroom == nil || v.courtroom.Case().ID != caseID {
		return nil
	}
	return v.courtroom
}

// CloseCourtroom closes and forgets the open session, if any
func (v *Visitor) CloseCourtroom() {
	v.mu.Lock()
	s := v.courtroom
	v.courtroom = nil
	v.mu.Unlock()

	if s != nil {
		s.Close()
	}
}

func (v *Visitor) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visitor) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

// Store is the registry of live visitors
type Store struct {
	mu       sync.RWMutex
	visitors map[string]*Visitor
	now      func() time.Time
}

// NewStore creates an empty registry
func NewStore() *Store {
	return &Store{
		visitors: make(map[string]*Visitor),
		now:      time.Now,
	}
}

// Get returns a known visitor and marks it as seen
func (s *Store) Get(id string) (*Visitor, bool) {
	s.mu.RLock()
	v, ok := s.visitors[id]
	s.mu.RUnlock()
	if ok {
		v.touch(s.now())
	}
	return v, ok
}

// Create registers a new visitor with a fresh id
func (s *Store) Create() *Visitor {
	v := newVisitor(uuid.New().String(), s.now())

	s.mu.Lock()
	s.visitors[v.ID] = v
	s.mu.Unlock()
	return v
}

// GetOrCreate returns the visitor for id, creating a new one when id is unknown.
// The boolean reports whether a new visitor was created.
func (s *Store) GetOrCreate(id string) (*Visitor, bool) {
	if id != "" {
		if v, ok := s.Get(id); ok {
			return v, false
		}
	}
	return s.Create(), true
}

// Len returns the number of live visitors
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}

// Prune drops visitors idle for longer than maxIdle and closes their courtroom sessions
func (s *Store) Prune(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	var stale []*Visitor
	s.mu.Lock()
	for id, v := range s.visitors {
		if v.idleSince().Before(cutoff) {
			stale = append(stale, v)
			delete(s.visitors, id)
		}
	}
	s.mu.Unlock()

	for _, v := range stale {
		v.CloseCourtroom()
	}
	return len(stale)
}

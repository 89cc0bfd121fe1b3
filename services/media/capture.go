// Package media models the camera/microphone capture capability of a courtroom session.
// The browser owns the real device; the server keeps a handle that mirrors its tracks.
package media

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Kind is the type of a media track
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// ErrCaptureUnavailable is reported when the browser could not open the camera or microphone
var ErrCaptureUnavailable = errors.New("could not access camera or microphone")

// Constraints is what a capture request asks for
type Constraints struct {
	Video bool
	Audio bool
}

// DefaultConstraints requests both camera and microphone
var DefaultConstraints = Constraints{Video: true, Audio: true}

// Track is a single capture track
type Track struct {
	ID      string
	Kind    Kind
	enabled bool
	stopped bool
}

// NewTrack returns an enabled track of the given kind
func NewTrack(kind Kind) *Track {
	return &Track{ID: uuid.New().String(), Kind: kind, enabled: true}
}

// Enabled reports whether the track is currently producing media
func (t *Track) Enabled() bool { return t.enabled && !t.stopped }

// Stopped reports whether the track was released
func (t *Track) Stopped() bool { return t.stopped }

// Handle is a granted capture: a set of tracks owned by exactly one courtroom session
type Handle struct {
	mu       sync.Mutex
	tracks   []*Track
	released bool
}

// NewHandle wraps the given tracks
func NewHandle(tracks ...*Track) *Handle {
	return &Handle{tracks: tracks}
}

// NewHandleFor creates one track per requested kind
func NewHandleFor(c Constraints) *Handle {
	var tracks []*Track
	if c.Video {
		tracks = append(tracks, NewTrack(KindVideo))
	}
	if c.Audio {
		tracks = append(tracks, NewTrack(KindAudio))
	}
	return NewHandle(tracks...)
}

// Tracks returns the tracks of the given kind
func (h *Handle) Tracks(kind Kind) []*Track {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []*Track
	for _, t := range h.tracks {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Toggle flips the enabled flag of every live track of the given kind and returns how many changed
func (h *Handle) Toggle(kind Kind) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return 0
	}
	n := 0
	for _, t := range h.tracks {
		if t.Kind == kind && !t.stopped {
			t.enabled = !t.enabled
			n++
		}
	}
	return n
}

// Release stops every track. It is safe to call more than once.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return
	}
	for _, t := range h.tracks {
		t.stopped = true
		t.enabled = false
	}
	h.released = true
}

// Released reports whether Release has been called
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// Result is the outcome of a capture request: a handle or the reason it failed
type Result struct {
	Handle *Handle
	Err    error
}

// Granted wraps a successful capture
func Granted(h *Handle) Result {
	return Result{Handle: h}
}

// Failed wraps a capture failure
func Failed(err error) Result {
	if err == nil {
		err = ErrCaptureUnavailable
	}
	return Result{Err: err}
}

// OK reports whether the capture was granted
func (r Result) OK() bool {
	return r.Err == nil && r.Handle != nil
}

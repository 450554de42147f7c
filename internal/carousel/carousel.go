// Package carousel implements the hero carousel rotation state machine:
// wrap-around slide arithmetic, the transition lock that debounces rapid
// manual navigation, and the auto-advance window. Keeping this logic out of
// the handlers makes the rotation invariants directly testable.
package carousel

import "time"

const (
	// AdvanceInterval is the fixed period between automatic slide advances.
	AdvanceInterval = 5 * time.Second

	// TransitionLock is the window after any manual move during which
	// further manual input is ignored, so rapid clicks cannot overlap the
	// slide animation.
	TransitionLock = 800 * time.Millisecond
)

// Rotation tracks the current slide of an n-slide carousel. Manual moves
// take effect only outside the transition lock, and every manual move
// resets the auto-advance window so a tick cannot double-advance right
// after a click.
type Rotation struct {
	n        int
	index    int
	lockedAt time.Time // zero until the first manual move
	lastAuto time.Time
}

// NewRotation creates a rotation over n slides starting at index 0.
// n must be at least 1.
func NewRotation(n int) *Rotation {
	if n < 1 {
		n = 1
	}
	return &Rotation{n: n}
}

// State is the serializable snapshot of a rotation, kept in a visitor
// cookie between carousel requests.
type State struct {
	Index    int       `json:"i"`
	LockedAt time.Time `json:"locked_at,omitzero"`
	LastAuto time.Time `json:"last_auto,omitzero"`
}

// Restore rebuilds a rotation over n slides from a saved state. An index
// that no longer fits (slides were removed) resets to 0.
func Restore(n int, s State) *Rotation {
	r := NewRotation(n)
	if s.Index >= 0 && s.Index < r.n {
		r.index = s.Index
	}
	r.lockedAt = s.LockedAt
	r.lastAuto = s.LastAuto
	return r
}

// Snapshot returns the rotation's serializable state.
func (r *Rotation) Snapshot() State {
	return State{Index: r.index, LockedAt: r.lockedAt, LastAuto: r.lastAuto}
}

// Index returns the currently displayed slide index.
func (r *Rotation) Index() int { return r.index }

// Len returns the number of slides.
func (r *Rotation) Len() int { return r.n }

// Locked reports whether a manual move at the given time would fall inside
// the transition lock of the previous one.
func (r *Rotation) Locked(now time.Time) bool {
	return !r.lockedAt.IsZero() && now.Sub(r.lockedAt) < TransitionLock
}

// Next advances to the following slide, wrapping to 0 after the last.
// Returns false if the move was swallowed by the transition lock.
func (r *Rotation) Next(now time.Time) bool {
	return r.moveTo(now, (r.index+1)%r.n)
}

// Prev moves to the preceding slide; from index 0 it wraps to n-1.
// Returns false if the move was swallowed by the transition lock.
func (r *Rotation) Prev(now time.Time) bool {
	return r.moveTo(now, (r.index-1+r.n)%r.n)
}

// Goto jumps directly to the given slide (dot navigation). Out-of-range
// targets and moves inside the transition lock are ignored.
func (r *Rotation) Goto(now time.Time, target int) bool {
	if target < 0 || target >= r.n {
		return false
	}
	return r.moveTo(now, target)
}

func (r *Rotation) moveTo(now time.Time, target int) bool {
	if r.Locked(now) {
		return false
	}
	r.index = target
	r.lockedAt = now
	// A manual move restarts the auto-advance window.
	r.lastAuto = now
	return true
}

// AdvanceDue reports whether an automatic advance is due at the given time,
// and performs it when due. Automatic advances ignore the transition lock
// but are pushed back by manual moves, so continuous rotation stays smooth
// without double-advancing right after user input.
func (r *Rotation) AdvanceDue(now time.Time) bool {
	if r.lastAuto.IsZero() {
		r.lastAuto = now
		return false
	}
	if now.Sub(r.lastAuto) < AdvanceInterval {
		return false
	}
	r.index = (r.index + 1) % r.n
	r.lastAuto = now
	return true
}

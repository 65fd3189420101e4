package bridge

import (
	"errors"
	"fmt"
	"sync"
)

// Record is one error report captured from the native callback.
type Record struct {
	Message  string
	Function string
}

// Slot is the process-wide location the native error callback writes into.
type Slot interface {
	// Take returns the pending record, if any, and clears the slot.
	Take() (Record, bool)
}

// ErrRaised is returned by a guarded native call whose execution was cut short
// by the error callback. The bridge replaces it with the captured Failure.
var ErrRaised = errors.New("bridge: native error callback raised")

// Failure is the error produced when the native error callback fired during a
// guarded call.
type Failure struct {
	Record
	// Suppressed holds records captured after the first one within the same
	// outermost call. They never replace the first record.
	Suppressed []Record
}

func (f *Failure) Error() string {
	if f.Function == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Function, f.Message)
}

// Bridge serializes guarded native calls and drains the capture slot after
// each of them.
type Bridge struct {
	mu      sync.Mutex
	slot    Slot
	pending *Failure
	// drained is set once the most recent Call has emptied the slot.
	drained bool
}

// New returns a Bridge draining slot.
func New(slot Slot) *Bridge {
	if slot == nil {
		panic("bridge: nil slot")
	}
	return &Bridge{slot: slot}
}

// Do runs fn as a single guarded unit of work.
func (b *Bridge) Do(fn func() error) error {
	return b.Session(func(s *Session) error {
		return s.Call(fn)
	})
}

// Session holds the bridge for a short bounded sequence of native calls made
// through the Session passed to fn. fn must not call b.Do or b.Session.
func (b *Bridge) Session(fn func(*Session) error) (err error) {
	b.mu.Lock()
	b.drained = false
	defer func() {
		// Anything still pending belongs to this outermost call.
		if !b.drained {
			b.collect()
		}
		if b.pending != nil {
			err = b.pending
		}
		b.pending = nil
		b.mu.Unlock()
	}()
	return fn(&Session{b: b})
}

// Session is a handle on a locked Bridge.
type Session struct {
	b *Bridge
}

// Call runs one guarded native call. Calls may be nested; the innermost
// failure is the one every enclosing level reports. Once a failure has been
// captured in this session, later calls return it without running fn.
func (s *Session) Call(fn func() error) (err error) {
	b := s.b
	if b.pending != nil {
		return b.pending
	}
	b.drained = false
	defer func() {
		f := b.collect()
		b.drained = true
		if f != nil {
			err = f
			return
		}
		if errors.Is(err, ErrRaised) {
			err = &Failure{Record: Record{Message: "native error callback raised without a captured record"}}
		}
	}()
	return fn()
}

// collect drains the slot into the pending failure and returns it.
func (b *Bridge) collect() *Failure {
	if rec, ok := b.slot.Take(); ok {
		if b.pending == nil {
			b.pending = &Failure{Record: rec}
		} else {
			b.pending.Suppressed = append(b.pending.Suppressed, rec)
		}
	}
	return b.pending
}

// Value runs fn through b.Do and returns its result. The zero value of T is
// returned whenever the call fails.
func Value[T any](b *Bridge, fn func() (T, error)) (T, error) {
	var out T
	err := b.Do(func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

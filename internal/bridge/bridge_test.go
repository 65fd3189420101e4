package bridge_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/quest-go/internal/bridge"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSlot mimics the C capture slot: first write wins until drained.
type fakeSlot struct {
	mu    sync.Mutex
	rec   bridge.Record
	armed bool
	takes int
}

func (s *fakeSlot) raise(msg, fn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.armed {
		s.rec = bridge.Record{Message: msg, Function: fn}
		s.armed = true
	}
	return bridge.ErrRaised
}

func (s *fakeSlot) Take() (bridge.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.takes++
	if !s.armed {
		return bridge.Record{}, false
	}
	rec := s.rec
	s.rec, s.armed = bridge.Record{}, false
	return rec, true
}

func (s *fakeSlot) isArmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

func TestDoSuccessPassesResultThrough(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	require.NoError(t, b.Do(func() error { return nil }))

	sentinel := errors.New("local failure")
	err := b.Do(func() error { return sentinel })
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, slot.takes, "slot must be drained after every call")
}

func TestSessionDrainsOncePerCall(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	err := b.Session(func(s *bridge.Session) error {
		if err := s.Call(func() error { return nil }); err != nil {
			return err
		}
		return s.Call(func() error { return nil })
	})
	require.NoError(t, err)
	assert.Equal(t, 2, slot.takes)

	// With no Call the session still drains on exit.
	require.NoError(t, b.Session(func(*bridge.Session) error { return nil }))
	assert.Equal(t, 3, slot.takes)
}

func TestDoCapturesRecord(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	err := b.Do(func() error {
		return slot.raise("Invalid qubit index.", "pauliX")
	})

	var f *bridge.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "Invalid qubit index.", f.Message)
	assert.Equal(t, "pauliX", f.Function)
	assert.Empty(t, f.Suppressed)
	assert.False(t, slot.isArmed(), "slot must be empty after the call")
	assert.Equal(t, "pauliX: Invalid qubit index.", f.Error())
}

func TestSlotDoesNotLeakIntoNextCall(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	require.Error(t, b.Do(func() error { return slot.raise("bad", "collapseToOutcome") }))
	require.NoError(t, b.Do(func() error { return nil }))
}

func TestNestedCallsKeepInnermostRecord(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	var inner, outer error
	err := b.Session(func(s *bridge.Session) error {
		outer = s.Call(func() error {
			inner = s.Call(func() error {
				return slot.raise("inner message", "innerFunc")
			})
			// The outer level raises too; it must not replace the inner record.
			return slot.raise("outer message", "outerFunc")
		})
		return outer
	})

	var f *bridge.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "innerFunc", f.Function)
	assert.Same(t, inner, outer)
	assert.Same(t, outer, err)
	require.Len(t, f.Suppressed, 1)
	assert.Equal(t, "outerFunc", f.Suppressed[0].Function)
	assert.False(t, slot.isArmed())
}

func TestSessionStopsAfterFailure(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	ran := false
	err := b.Session(func(s *bridge.Session) error {
		_ = s.Call(func() error { return slot.raise("first", "f1") })
		return s.Call(func() error {
			ran = true
			return nil
		})
	})

	var f *bridge.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "f1", f.Function)
	assert.False(t, ran, "calls after a captured failure must not run")
}

func TestSessionIgnoringFailureStillReportsIt(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	err := b.Session(func(s *bridge.Session) error {
		_ = s.Call(func() error { return slot.raise("swallowed", "destroyQureg") })
		return nil
	})
	var f *bridge.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "swallowed", f.Message)
}

func TestRaisedWithoutRecord(t *testing.T) {
	b := bridge.New(&fakeSlot{})
	err := b.Do(func() error { return bridge.ErrRaised })

	var f *bridge.Failure
	require.ErrorAs(t, err, &f)
	assert.NotEmpty(t, f.Message)
}

func TestPanicReleasesBridge(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	require.Panics(t, func() {
		_ = b.Do(func() error {
			_ = slot.raise("before panic", "f")
			panic("boom")
		})
	})
	assert.False(t, slot.isArmed())
	require.NoError(t, b.Do(func() error { return nil }), "bridge must be usable after a panic")
}

func TestValue(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	v, err := bridge.Value(b, func() (float64, error) { return 0.5, nil })
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)

	v, err = bridge.Value(b, func() (float64, error) {
		return 0.25, slot.raise("bad outcome", "calcProbOfOutcome")
	})
	require.Error(t, err)
	assert.Zero(t, v)
}

func TestConcurrentCallsAreSerialized(t *testing.T) {
	slot := &fakeSlot{}
	b := bridge.New(slot)

	var inFlight, maxInFlight atomic.Int32
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			err := b.Do(func() error {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					m := maxInFlight.Load()
					if n <= m || maxInFlight.CompareAndSwap(m, n) {
						break
					}
				}
				if i%2 == 0 {
					return slot.raise("odd one out", "f")
				}
				return nil
			})
			var f *bridge.Failure
			if i%2 == 0 && !errors.As(err, &f) {
				return errors.New("expected a captured failure")
			}
			if i%2 == 1 && err != nil {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.False(t, slot.isArmed())
}

func TestNewRejectsNilSlot(t *testing.T) {
	assert.Panics(t, func() { bridge.New(nil) })
}

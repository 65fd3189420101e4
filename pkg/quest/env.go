package quest

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"unicode/utf8"

	"github.com/hsiuhsiu/quest-go/pkg/quest/internal/backend"
	"github.com/hsiuhsiu/quest-go/pkg/quest/logging"
)

// Env is a QuEST simulation environment. Registers and diagonal operators are
// created from an Env and hold a reference to it; the Env can only be closed
// once all of them are closed.
type Env struct {
	env      backend.Env
	cfg      Config
	log      logging.Logger
	children atomic.Int64
	closed   bool
}

// NewEnv creates a QuEST environment and, if cfg.Seeds is set, reseeds it.
func NewEnv(cfg Config) (*Env, error) {
	native, err := callValue("NewEnv", backend.CreateEnv)
	if err != nil {
		return nil, err
	}

	e := &Env{env: native, cfg: cfg, log: cfg.logger()}
	runtime.SetFinalizer(e, (*Env).finalize)

	if len(cfg.Seeds) > 0 {
		if err := e.Seed(cfg.Seeds); err != nil {
			_ = e.Close()
			return nil, err
		}
	}
	e.log.Debug(context.Background(), "quest environment created",
		"rank", e.Rank(), "ranks", e.NumRanks())
	return e, nil
}

// Close destroys the environment. It returns ErrEnvInUse while registers or
// diagonal operators created from e are still open, and ErrEnvClosed when
// called twice. A native failure while destroying is unrecoverable and
// panics.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	if e.closed {
		return ErrEnvClosed
	}
	if n := e.children.Load(); n > 0 {
		e.log.Debug(context.Background(), "refusing to close environment in use", "open_handles", n)
		return ErrEnvInUse
	}

	if err := call("Env.Close", func() error { return backend.DestroyEnv(e.env) }); err != nil {
		panic(err)
	}
	e.closed = true
	e.env = backend.Env{}
	runtime.SetFinalizer(e, nil)
	e.log.Debug(context.Background(), "quest environment destroyed")
	return nil
}

func (e *Env) finalize() {
	if !e.closed && e.children.Load() == 0 {
		_ = e.Close()
	}
}

func (e *Env) usable() error {
	if e == nil || e.closed {
		return ErrClosed
	}
	return nil
}

func (e *Env) acquire() { e.children.Add(1) }
func (e *Env) release() { e.children.Add(-1) }

// Sync blocks until every process in a distributed run reaches this call.
func (e *Env) Sync() error {
	if err := e.usable(); err != nil {
		return err
	}
	return call("Env.Sync", func() error { return backend.SyncEnv(e.env) })
}

// SyncSuccess combines a per-rank success flag across all ranks; the result is
// non-zero only if every rank passed a non-zero code.
func (e *Env) SyncSuccess(code int) (int, error) {
	if err := e.usable(); err != nil {
		return 0, err
	}
	return callValue("Env.SyncSuccess", func() (int, error) { return backend.SyncSuccess(code) })
}

// Report prints the environment description to standard output.
func (e *Env) Report() error {
	if err := e.usable(); err != nil {
		return err
	}
	return call("Env.Report", func() error { return backend.ReportEnv(e.env) })
}

// EnvironmentString describes the build and execution mode, for example
// "CUDA=0 OpenMP=1 MPI=0 threads=8 ranks=1".
func (e *Env) EnvironmentString() (string, error) {
	const op = "Env.EnvironmentString"
	if err := e.usable(); err != nil {
		return "", err
	}
	raw, err := callValue(op, func() ([]byte, error) { return backend.EnvironmentString(e.env) })
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &ConversionError{Op: op, Err: errors.New("environment string is not valid UTF-8")}
	}
	return string(raw), nil
}

// Rank is this process's rank in a distributed run, 0 otherwise.
func (e *Env) Rank() int { return backend.EnvRank(e.env) }

// NumRanks is the number of processes in a distributed run, 1 otherwise.
func (e *Env) NumRanks() int { return backend.EnvNumRanks(e.env) }

// SeedDefault reseeds the random number generator from the time and process id.
func (e *Env) SeedDefault() error {
	if err := e.usable(); err != nil {
		return err
	}
	return call("Env.SeedDefault", func() error { return backend.SeedDefault(&e.env) })
}

// Seed reseeds the random number generator used by Measure and
// MeasureWithStats. The same seeds reproduce the same measurement outcomes.
func (e *Env) Seed(seeds []uint64) error {
	const op = "Env.Seed"
	if err := e.usable(); err != nil {
		return err
	}
	if len(seeds) == 0 {
		return lengthError(op, "seeds", 0, "at least 1")
	}
	return call(op, func() error { return backend.Seed(&e.env, seeds) })
}

// Seeds returns a copy of the seeds currently in use.
func (e *Env) Seeds() ([]uint64, error) {
	if err := e.usable(); err != nil {
		return nil, err
	}
	return callValue("Env.Seeds", func() ([]uint64, error) { return backend.Seeds(e.env) })
}

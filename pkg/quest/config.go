package quest

import "github.com/hsiuhsiu/quest-go/pkg/quest/logging"

// Config expresses the knobs used when creating an Env.
type Config struct {
	// Logger receives debug records for handle lifecycle and native input
	// errors. Nil binds to slog.Default().
	Logger logging.Logger

	// Seeds, when non-empty, reseed QuEST's random number generator right after
	// the environment is created. Empty keeps QuEST's default seeding from the
	// time and process id.
	Seeds []uint64

	// PoisonOnNativeError marks a register unusable after it produced a
	// NativeError. Later operations on it return ErrPoisoned; only Close is
	// still allowed.
	PoisonOnNativeError bool
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}

// Package logging provides a minimal logging facade for the QuEST wrapper.
//
// The Logger interface wraps a subset of log/slog so applications can route
// the wrapper's records into their own handlers or silence them in tests.
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	env, err := quest.NewEnv(quest.Config{Logger: logging.New(slog.New(handler))})
//
// The wrapper only logs at Debug level: handle creation and destruction, and
// every input error reported by the native library, with the QuEST function
// name and message attached.
package logging

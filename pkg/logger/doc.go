// Package logger provides a thin factory around Go's slog package with
// functional options and attribute helpers for edit session logging.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   - Select an output format (text or json) and the minimum level
//   - Supply default slog.Attr values applied to every record
//   - Apply a preset for the deployment environment
//   - Make empty mask slots visible in logged buffers
//
// Helper constructors such as SessionID, Intent, Buffer and Caret live in attr.go and
// keep attribute naming consistent across the session, binding and adapter
// packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/inputmask/pkg/logger"
//
//	func main() {
//	    log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), "maskctl"))
//	    logger.SetAsDefault(log)
//
//	    log.Debug("edit applied",
//	        logger.Intent("insert"),
//	        logger.Caret(4),
//	    )
//	}
//
// Libraries that accept a logger default to Discard, so nothing is written
// unless the caller opts in.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil:
//
//	log.Info("field bound", logger.Error(err))
package logger

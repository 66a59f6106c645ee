// Package logging is a thin wrapper of zap logging library.
//
// Each package obtains a named logger whose level is read from the
// DERKIT_LOG_<pkg> environment variable, falling back to DERKIT_LOG. Only the
// first letter of the value matters: V/D debug, I info, W warn, E error,
// F/N fatal-only. Levels can be changed at runtime with SetLevel.
package logging

import (
	"os"
	"sync"
	"unicode"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "DERKIT_LOG"

var (
	root = func() *zap.Logger {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			zap.DebugLevel,
		)
		return zap.New(core)
	}()

	levelsMu sync.Mutex
	levels   = map[string]zap.AtomicLevel{}
	forced   *zapcore.Level
)

// New creates a logger.
// By convention, this should appear in the same .go file as the package docstring:
//
//	var logger = logging.New("Foo")
func New(pkg string) *zap.Logger {
	return root.Named(pkg).WithOptions(zap.IncreaseLevel(levelOf(pkg)))
}

func levelOf(pkg string) zap.AtomicLevel {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	al, ok := levels[pkg]
	if !ok {
		lvl := ParseLevel(GetLevel(pkg))
		if forced != nil {
			lvl = *forced
		}
		al = zap.NewAtomicLevelAt(lvl)
		levels[pkg] = al
	}
	return al
}

// GetLevel returns configured log level of a package as a letter.
func GetLevel(pkg string) rune {
	lvl, ok := os.LookupEnv(envPrefix + "_" + pkg)
	if !ok {
		lvl, ok = os.LookupEnv(envPrefix)
	}
	if !ok || len(lvl) == 0 {
		return 0
	}
	return rune(lvl[0])
}

// ParseLevel converts a level letter to a zap level. Unknown letters map to info.
func ParseLevel(lvl rune) zapcore.Level {
	switch unicode.ToUpper(lvl) {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.InfoLevel
}

// SetLevel changes the level of every logger created so far, and of loggers
// created later for packages that have not been seen yet.
func SetLevel(lvl zapcore.Level) {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	for _, al := range levels {
		al.SetLevel(lvl)
	}
	forced = &lvl
}

// Sync flushes buffered log entries.
func Sync() error {
	return root.Sync()
}

package forecast

import (
	"go.uber.org/zap"

	"forecaster/options"
)

// Config holds the collaborators shared by Casters.
type Config struct {
	// Registry resolves custom type names. Nil resolves built-in names only.
	Registry *Registry
	// Coercion tunes the built-in primitive coercions.
	Coercion options.CoercionEnum
	// Logger overrides the package logger when set.
	Logger *zap.Logger
}

// DefaultConfig returns the default configuration: no custom transformers
// and loose primitive coercion.
func DefaultConfig() Config {
	return Config{
		Coercion: options.CoercionDefault,
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return Logger()
}

// Package logging holds the zerolog helpers shared by the task runners.
package logging

import "github.com/rs/zerolog"

// OrNop returns the logger l points to, or a disabled logger when l is nil.
func OrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}

// Component returns a child of l tagged with the name of the component emitting events.
func Component(l *zerolog.Logger, name string) zerolog.Logger {
	base := OrNop(l)
	return base.With().Str("component", name).Logger()
}

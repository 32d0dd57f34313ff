package logger

import (
	"time"

	"github.com/rs/zerolog"
)

// Keys written by the typed helpers below.
const (
	FieldComponent = "component"
	FieldEndpoint  = "endpoint"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldKind      = "kind"
	FieldToken     = "token"
	FieldOrigin    = "origin"
	FieldActive    = "active"
	FieldSlot      = "slot"
	FieldFile      = "file"
	FieldMIME      = "mime"
	FieldSize      = "size"
)

func (l *Logger) with(fn func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: fn(l.base.With()).Logger()}
}

// Component tags entries with the subsystem that wrote them.
func (l *Logger) Component(name string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldComponent, name)
	})
}

// Endpoint tags entries with the remote endpoint being called.
func (l *Logger) Endpoint(name string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldEndpoint, name)
	})
}

// Response records the HTTP status and how long the call took.
func (l *Logger) Response(status int, elapsed time.Duration) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Int(FieldStatus, status).Int64(FieldDuration, elapsed.Milliseconds())
	})
}

// Request tags entries with a submitted call: its kind, token and the section
// it was started from. Empty values are left out.
func (l *Logger) Request(kind, token, origin string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		if kind != "" {
			c = c.Str(FieldKind, kind)
		}
		if token != "" {
			c = c.Str(FieldToken, token)
		}
		if origin != "" {
			c = c.Str(FieldOrigin, origin)
		}
		return c
	})
}

// Section tags entries with the section on screen.
func (l *Logger) Section(active string) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		return c.Str(FieldActive, active)
	})
}

// Upload describes an encoded image. slot is omitted when empty.
func (l *Logger) Upload(slot, name, mime string, size int64) *Logger {
	return l.with(func(c zerolog.Context) zerolog.Context {
		if slot != "" {
			c = c.Str(FieldSlot, slot)
		}
		return c.Str(FieldFile, name).Str(FieldMIME, mime).Int64(FieldSize, size)
	})
}

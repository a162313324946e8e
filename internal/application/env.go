package application

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Env carries the ambient dependencies shared by every service.
// Zero fields are filled with production defaults.
type Env struct {
	Logger *slog.Logger
	Now    func() time.Time
	NewID  func() string
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.NewID == nil {
		e.NewID = uuid.NewString
	}
	return e
}

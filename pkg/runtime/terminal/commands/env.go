package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/services/profiles"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

// ReportHandler prints a rendered report.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// Env is shared by every command.
type Env struct {
	Service      *report.Service
	Reporters    map[string]ReportHandler
	Logger       zerolog.Logger
	Now          func() time.Time
	Gender       fengshui.Gender
	ProfilesPath string
	// OpenProfiles defaults to profiles.NewRegistry.
	OpenProfiles func(path string) (profiles.Registry, error)
}

func (e *Env) context(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return e.Logger.WithContext(parent)
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) profiles() (profiles.Registry, error) {
	path := e.ProfilesPath
	if path == "" {
		path = profiles.DefaultPath()
	}
	open := e.OpenProfiles
	if open == nil {
		open = profiles.NewRegistry
	}
	r, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return r, nil
}

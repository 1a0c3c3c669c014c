package orchestrator

import (
	"time"

	pkgLog "fulano-assistant/pkg/log"
)

type Orchestrator struct {
	gateway      Gateway
	registry     Registry
	l            pkgLog.Logger
	system       string
	timezone     string
	maxToolCalls int
	now          func() time.Time
}

// Config holds the round-trip settings.
type Config struct {
	SystemInstruction string
	Timezone          string
	MaxToolCalls      int
}

func New(gateway Gateway, registry Registry, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.MaxToolCalls < 1 {
		cfg.MaxToolCalls = DefaultMaxToolCalls
	}
	return &Orchestrator{
		gateway:      gateway,
		registry:     registry,
		l:            l,
		system:       cfg.SystemInstruction,
		timezone:     cfg.Timezone,
		maxToolCalls: cfg.MaxToolCalls,
		now:          time.Now,
	}
}

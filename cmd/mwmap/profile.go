package main

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/profile"
)

var profileModes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func profileModeEnum() string {
	return strings.Join(slices.Sorted(maps.Keys(profileModes)), ",")
}

// startProfile starts the profiler selected by --profile and returns the
// function that stops it.
func (g *globals) startProfile() (stop func()) {
	mode, ok := profileModes[g.Profile]
	if !ok {
		return func() {}
	}

	logger := g.logger()
	logger.Debug("profile start",
		slog.String("mode", g.Profile),
		slog.String("dir", g.ProfileDir))

	p := profile.Start(mode, profile.ProfilePath(g.ProfileDir), profile.Quiet, profile.NoShutdownHook)
	return func() {
		p.Stop()
		logger.Debug("profile stop", slog.String("mode", g.Profile))
	}
}

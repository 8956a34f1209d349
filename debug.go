package areas

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TickStats holds per-tick metrics. Only populated when debug mode is on.
type TickStats struct {
	Tick     uint64
	Zones    int
	Engaged  int
	Raycasts int
	Interact bool
	// PickerErr and ProximityErr report a detector phase skipped for a
	// missing collaborator (ErrNoCamera, ErrNoAgent).
	PickerErr    error
	ProximityErr error
	Duration     time.Duration
}

// Stats returns the metrics of the last tick run in debug mode.
func (e *Engine) Stats() TickStats { return e.stats }

// debugLog writes the tick stats at debug level.
func (e *Engine) debugLog(stats TickStats) {
	if !e.debug {
		return
	}
	fields := logrus.Fields{
		"tick":     stats.Tick,
		"zones":    stats.Zones,
		"engaged":  stats.Engaged,
		"raycasts": stats.Raycasts,
		"interact": stats.Interact,
		"elapsed":  stats.Duration,
	}
	if h := e.picker.Hovered(); h != nil {
		fields["hovered"] = h.Name()
	}
	if stats.PickerErr != nil {
		fields["picker"] = stats.PickerErr.Error()
	}
	if stats.ProximityErr != nil {
		fields["proximity"] = stats.ProximityErr.Error()
	}
	e.logger.WithFields(fields).Debug("areas tick")
}

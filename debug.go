package intrographics

import (
	"time"
)

// debugStats holds per-pass loop metrics. Only populated when the loop's
// debug flag is set.
type debugStats struct {
	events  int
	tasks   int
	elapsed time.Duration
}

// log writes the stats for one loop pass at debug level.
func (s debugStats) log(now time.Duration) {
	Logger().Debug("loop pass",
		"now", now,
		"events", s.events,
		"tasks", s.tasks,
		"elapsed", s.elapsed)
}

// debugMaxShapeCount is the shape count above which a window logs a warning
// each time another hundred shapes are added.
const debugMaxShapeCount = 1000

func debugCheckShapeCount(w *Window) {
	n := len(w.shapes)
	if n > debugMaxShapeCount && n%100 == 1 {
		Logger().Warn("window has many shapes",
			"title", w.title, "shapes", n, "threshold", debugMaxShapeCount)
	}
}

package machine

import (
	"math"
	"time"
)

// VBlankDuration returns the vertical blanking duration of a raster
// refreshed at refresh Hz, with total lines per frame of which visible are
// displayed: the non-visible fraction of a frame period.
func VBlankDuration(refresh float64, total, visible int) time.Duration {
	if refresh <= 0 || total <= 0 || visible >= total {
		return 0
	}
	secs := float64(total-visible) / (refresh * float64(total))
	return time.Duration(math.Round(secs * float64(time.Second)))
}

// VBlankDuration returns the explicit blanking duration if set, otherwise
// the duration derived from the current refresh rate and scan geometry.
func (t *Timing) VBlankDuration() time.Duration {
	if t.VBlank != 0 {
		return t.VBlank
	}
	return VBlankDuration(t.Refresh, t.ScanTotal, t.ScanVisible)
}

// FramePeriod returns the duration of a frame.
func (t *Timing) FramePeriod() time.Duration {
	if t.Refresh <= 0 {
		return 0
	}
	return time.Duration(math.Round(float64(time.Second) / t.Refresh))
}

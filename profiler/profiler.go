// Package profiler tracks frame timing and memory statistics for the
// application run loop, logging a summary line at a configurable interval.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates per-frame timing and reads runtime memory stats when
// the update interval elapses. Tick is called once per frame by the run loop.
type Profiler struct {
	frameCount     int
	lastTick       time.Time
	lastReport     time.Time
	updateInterval time.Duration

	// Min/max frame duration within the current reporting window.
	minFrame time.Duration
	maxFrame time.Duration

	memStats    runtime.MemStats
	lastGCCount uint32
}

// NewProfiler creates a Profiler with a 1 second reporting interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastTick:   now,
		lastReport: now,
	}
}

// SetInterval sets the reporting interval. Values <= 0 keep the default.
//
// Parameters:
//   - interval: how often a stats line is logged
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick records one frame and logs a stats line when the reporting interval
// has elapsed. Statistics include FPS, min/max frame time, heap usage, and
// GC activity.
//
// Returns:
//   - bool: true if a stats line was logged this tick
func (p *Profiler) Tick() bool {
	now := time.Now()
	frame := now.Sub(p.lastTick)
	p.lastTick = now
	p.frameCount++

	if p.minFrame == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}

	interval := p.updateInterval
	if interval == 0 {
		interval = time.Second
	}

	elapsed := now.Sub(p.lastReport)
	if elapsed < interval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	gcDelta := p.memStats.NumGC - p.lastGCCount

	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f–%.2f ms | Heap: %.2f MB | GC: +%d | Sys: %.2f MB",
		fps,
		float64(p.minFrame.Microseconds())/1000,
		float64(p.maxFrame.Microseconds())/1000,
		heapMB, gcDelta, sysMB)

	p.frameCount = 0
	p.minFrame = 0
	p.maxFrame = 0
	p.lastReport = now
	p.lastGCCount = p.memStats.NumGC
	return true
}

// Package stats tracks frame timing and samples process resource usage.
package stats

import (
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Recorder accumulates per-frame render durations.
type Recorder struct {
	mu sync.Mutex

	now     func() time.Time
	started time.Time

	frames  uint64
	dropped uint64
	total   time.Duration
	min     time.Duration
	max     time.Duration
}

func NewRecorder() *Recorder {
	r := &Recorder{now: time.Now}
	r.started = r.now()
	return r
}

// Observe records one presented frame that took d to render.
func (r *Recorder) Observe(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frames == 0 || d < r.min {
		r.min = d
	}
	if d > r.max {
		r.max = d
	}
	r.frames++
	r.total += d
}

// Drop records a frame that was not presented.
func (r *Recorder) Drop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

// Snapshot is a point-in-time summary.
type Snapshot struct {
	Frames  uint64
	Dropped uint64
	Mean    time.Duration
	Min     time.Duration
	Max     time.Duration
	Elapsed time.Duration
}

// FPS returns presented frames per second of wall time.
func (s Snapshot) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// KeyVals flattens the snapshot for key/value loggers.
func (s Snapshot) KeyVals() []interface{} {
	return []interface{}{
		"frames", s.Frames,
		"dropped", s.Dropped,
		"mean", s.Mean,
		"min", s.Min,
		"max", s.Max,
		"fps", s.FPS(),
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		Frames:  r.frames,
		Dropped: r.dropped,
		Min:     r.min,
		Max:     r.max,
		Elapsed: r.now().Sub(r.started),
	}
	if r.frames > 0 {
		s.Mean = r.total / time.Duration(r.frames)
	}
	return s
}

// Resources is the process footprint at sampling time.
type Resources struct {
	CPUPercent float64
	RSS        uint64
}

// Sampler reads process resource usage.
type Sampler interface {
	Sample() (Resources, error)
}

type processSampler struct {
	p *process.Process
}

// NewProcessSampler samples the current process.
func NewProcessSampler() (Sampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &processSampler{p: p}, nil
}

func (s *processSampler) Sample() (Resources, error) {
	cpu, err := s.p.CPUPercent()
	if err != nil {
		return Resources{}, err
	}
	mem, err := s.p.MemoryInfo()
	if err != nil {
		return Resources{}, err
	}
	return Resources{CPUPercent: cpu, RSS: mem.RSS}, nil
}

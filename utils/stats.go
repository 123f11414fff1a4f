package utils

import "time"

// populationSmoothing is the weight a new frame carries in AveragePopulation
const populationSmoothing = 0.1

// Stats for performance monitoring over a whole run, restarts included
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	// TotalGenerations counts every advance since the run began; engine restarts do not reset it
	TotalGenerations uint64
	StartTime        time.Time

	frames int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered frame: its population and how long the frame took
func (s *Stats) Update(population int, frameDuration time.Duration) {
	if frameDuration > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(frameDuration)
	}

	s.frames++
	if s.frames == 1 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
}

// RecordGeneration counts one engine advance
func (s *Stats) RecordGeneration() {
	s.TotalGenerations++
}

// ReachedLimit reports whether limit generations have run; a limit of 0 means no cap
func (s *Stats) ReachedLimit(limit int) bool {
	return limit > 0 && s.TotalGenerations >= uint64(limit)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

package main

import (
	"math"
	"slices"
	"time"
)

// summary aggregates per-frame durations of one run
type summary struct {
	Frames  int
	Mean    time.Duration
	P95     time.Duration
	Max     time.Duration
	Visible float64
	Lines   float64
}

// summarize computes mean, nearest-rank p95, and max of samples
func summarize(samples []time.Duration) summary {
	if len(samples) == 0 {
		return summary{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	rank := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	return summary{
		Frames: len(sorted),
		Mean:   total / time.Duration(len(sorted)),
		P95:    sorted[max(rank, 0)],
		Max:    sorted[len(sorted)-1],
	}
}

// downsample averages samples into at most width buckets of microseconds for plotting
func downsample(samples []time.Duration, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}
	if len(samples) <= width {
		out := make([]float64, len(samples))
		for i, d := range samples {
			out[i] = micros(d)
		}
		return out
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(samples) / width
		hi := (i + 1) * len(samples) / width
		var sum float64
		for _, d := range samples[lo:hi] {
			sum += micros(d)
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

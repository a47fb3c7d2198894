package booking

import (
	"sort"
	"time"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether a and b share any instant. Intervals that
// only touch at an endpoint do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// MergeOverlapping sorts busy intervals by start and coalesces any
// that overlap, returning a minimal ordered cover. The input is not
// modified.
func MergeOverlapping(busy []Interval) []Interval {
	if len(busy) == 0 {
		return nil
	}
	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Subtract returns the ordered sub-intervals of window not covered by
// any busy interval. Busy intervals may be unsorted and may overlap
// each other.
func Subtract(window Interval, busy []Interval) []Interval {
	if !window.End.After(window.Start) {
		return nil
	}

	var free []Interval
	cursor := window.Start
	for _, b := range MergeOverlapping(busy) {
		if !b.Start.Before(window.End) {
			break
		}
		if !b.End.After(cursor) {
			continue
		}
		if b.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}

// Quantize enumerates candidate start instants at step granularity
// within each free interval such that start+duration still fits.
func Quantize(free []Interval, step, duration time.Duration) []time.Time {
	if step <= 0 || duration <= 0 {
		return nil
	}
	var starts []time.Time
	for _, iv := range free {
		for t := iv.Start; !t.Add(duration).After(iv.End); t = t.Add(step) {
			starts = append(starts, t)
		}
	}
	return starts
}

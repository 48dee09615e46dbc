package geotrack

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

var ErrEmptyTrack = errors.New("empty track")

// EmptyTrackError is returned when there is no sample to match captures against.
type EmptyTrackError struct {
	Captures int
}

func (e EmptyTrackError) Error() string {
	return fmt.Sprintf("cannot locate %d capture(s): %s", e.Captures, ErrEmptyTrack)
}

func (e EmptyTrackError) Is(target error) bool {
	return target == ErrEmptyTrack
}

// Matcher finds the track sample closest in time to a given instant. Among equally close samples the
// one appearing first in the track wins.
type Matcher struct {
	track Track
	// byTime holds indices into track, stably sorted by timestamp, so that equal timestamps keep their
	// original order.
	byTime []int
}

func NewMatcher(track Track) (*Matcher, error) {
	if len(track) == 0 {
		return nil, EmptyTrackError{}
	}

	byTime := make([]int, len(track))
	for i := range byTime {
		byTime[i] = i
	}

	sort.SliceStable(byTime, func(i, j int) bool {
		return track[byTime[i]].TimestampMs < track[byTime[j]].TimestampMs
	})

	return &Matcher{track: track, byTime: byTime}, nil
}

// Locate returns the index of the sample closest to timestampMs and the absolute time distance. Any
// int64 timestamps are accepted; distances are compared without overflow.
func (m *Matcher) Locate(timestampMs int64) (int, time.Duration) {
	n := len(m.byTime)
	ts := func(k int) int64 { return m.track[m.byTime[k]].TimestampMs }

	// First position whose timestamp is not before the target.
	above := sort.Search(n, func(k int) bool { return ts(k) >= timestampMs })

	if above == 0 {
		return m.byTime[0], millisDuration(distMillis(ts(0), timestampMs))
	}

	// Start of the run of samples sharing the predecessor's timestamp; its first entry has the
	// smallest original index of that run.
	belowTs := ts(above - 1)
	below := sort.Search(n, func(k int) bool { return ts(k) >= belowTs })
	dBelow := distMillis(timestampMs, belowTs)

	if above == n {
		return m.byTime[below], millisDuration(dBelow)
	}

	dAbove := distMillis(ts(above), timestampMs)
	switch {
	case dBelow < dAbove:
		return m.byTime[below], millisDuration(dBelow)
	case dAbove < dBelow:
		return m.byTime[above], millisDuration(dAbove)
	}

	best := m.byTime[below]
	if m.byTime[above] < best {
		best = m.byTime[above]
	}

	return best, millisDuration(dBelow)
}

// Nearest returns the sample closest in time to the capture.
func (m *Matcher) Nearest(c Capture) (Sample, time.Duration) {
	i, d := m.Locate(c.TimestampMs)
	return m.track[i], d
}

// Match assigns every capture the location of its time-nearest track sample. The result has one entry
// per capture, in capture order.
func Match(track Track, captures []Capture) ([]InferredLocation, error) {
	m, err := NewMatcher(track)
	if err != nil {
		return nil, EmptyTrackError{Captures: len(captures)}
	}

	return m.Match(captures), nil
}

func (m *Matcher) Match(captures []Capture) []InferredLocation {
	locations := make([]InferredLocation, 0, len(captures))
	for _, c := range captures {
		s, _ := m.Nearest(c)
		locations = append(locations, InferredLocation{Name: c.Name, Lon: s.Lon, Lat: s.Lat})
	}

	return locations
}

// distMillis is |a-b|. The difference of two int64 values always fits into uint64.
func distMillis(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// millisDuration converts milliseconds, saturating at the largest Duration.
func millisDuration(ms uint64) time.Duration {
	if ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

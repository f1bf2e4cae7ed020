// Package timeline holds the speaker diarization timeline and its RTTM
// serialization. A timeline is an ordered list of speaker turns; ordering is
// by start time, overlapping turns are allowed.
package timeline

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Segment is one speaker turn. End is always expected to be greater than
// Start for well-formed input; enforcement of minimum durations happens at
// the audio splitter, not here.
type Segment struct {
	Start   float64
	End     float64
	Speaker string
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Timeline is an ordered sequence of speaker turns.
type Timeline []Segment

// Sort orders the timeline by start time, keeping the relative order of
// turns that start at the same instant.
func (t Timeline) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Start < t[j].Start
	})
}

// ParseRTTM reads an RTTM annotation stream and returns the timeline it
// describes. Lines that are empty or comments are skipped; only SPEAKER
// records are consumed. The result is sorted by start time.
func ParseRTTM(r io.Reader) (Timeline, error) {
	var tl Timeline

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] != "SPEAKER" {
			continue
		}
		if len(fields) < 8 {
			return nil, fmt.Errorf("rttm line %d: expected at least 8 fields, got %d", lineNo, len(fields))
		}

		start, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad onset %q: %w", lineNo, fields[3], err)
		}
		dur, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, fmt.Errorf("rttm line %d: bad duration %q: %w", lineNo, fields[4], err)
		}

		tl = append(tl, Segment{
			Start:   start,
			End:     start + dur,
			Speaker: fields[7],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rttm: %w", err)
	}

	tl.Sort()
	return tl, nil
}

// WriteRTTM serializes the timeline as SPEAKER records for the given
// recording identifier.
func (t Timeline) WriteRTTM(w io.Writer, recordingID string) error {
	for _, seg := range t {
		_, err := fmt.Fprintf(w, "SPEAKER %s 1 %.3f %.3f <NA> <NA> %s <NA> <NA>\n",
			recordingID, seg.Start, seg.Duration(), seg.Speaker)
		if err != nil {
			return fmt.Errorf("write rttm: %w", err)
		}
	}
	return nil
}

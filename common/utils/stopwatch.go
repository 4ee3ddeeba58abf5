package utils

import (
	"bytes"
	"strconv"
	"time"
)

type stopwatchLap struct {
	label    string
	begin    time.Time
	duration time.Duration
}

type Stopwatch struct {
	name string
	laps []*stopwatchLap
}

func MakeStopwatch(name string) Stopwatch {
	return Stopwatch{
		name: name,
		laps: make([]*stopwatchLap, 0),
	}
}

func (watch *Stopwatch) Start(label string) {
	watch.laps = append(watch.laps, &stopwatchLap{
		label: label,
		begin: time.Now(),
	})
}

func (watch *Stopwatch) Stop(label string) {
	// laps may be nested; match the most recent unstopped lap with this label
	for i := len(watch.laps) - 1; i >= 0; i-- {
		lap := watch.laps[i]
		if lap.label == label && lap.duration == 0 {
			lap.duration = time.Since(lap.begin)
			return
		}
	}
}

func (watch Stopwatch) String() string {
	var buffer bytes.Buffer
	buffer.WriteString("<Stopwatch(" + watch.name + ")")

	for _, lap := range watch.laps {
		buffer.WriteString(" " + lap.label + "=")
		buffer.WriteString(strconv.FormatFloat(DurationMs(lap.duration), 'f', 3, 64))
		buffer.WriteString("ms")
	}

	buffer.WriteString(">")
	return buffer.String()
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}

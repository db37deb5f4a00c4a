package game

import "fmt"

// MessageLog is the bounded status sink for combat and pickup lines. The
// renderer draws its tail under the map.
type MessageLog struct {
	max   int
	lines []string
}

// NewMessageLog creates a log keeping the last max lines.
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{max: max}
}

// Push appends a formatted line, evicting the oldest once over capacity.
func (l *MessageLog) Push(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

// Lines returns the retained lines, oldest first.
func (l *MessageLog) Lines() []string {
	return l.lines
}

package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wippyai/sides/resource"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	eventStyles = map[resource.EventType]lipgloss.Style{
		resource.EventCreated:   cellStyle.Foreground(lipgloss.Color("#98FB98")),
		resource.EventLent:      cellStyle.Foreground(lipgloss.Color("#87CEEB")),
		resource.EventReclaimed: cellStyle.Foreground(lipgloss.Color("#87CEEB")),
		resource.EventDropped:   cellStyle.Foreground(lipgloss.Color("#FF6B6B")),
	}
)

type traceEvent struct {
	typeName string
	at       time.Duration
	handle   resource.Handle
	typ      resource.EventType
}

// tracer records holder lifecycle events.
type tracer struct {
	start  time.Time
	events []traceEvent
	mu     sync.Mutex
}

func newTracer() *tracer {
	return &tracer{start: time.Now()}
}

func (t *tracer) OnResourceEvent(e resource.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, traceEvent{
		typeName: e.TypeName,
		at:       time.Since(t.start),
		handle:   e.Handle,
		typ:      e.Type,
	})
}

func (t *tracer) Events() []traceEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]traceEvent(nil), t.events...)
}

func renderTrace(events []traceEvent, styled bool) string {
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{
			fmt.Sprint(i + 1),
			e.at.Round(time.Microsecond).String(),
			e.typ.String(),
			fmt.Sprintf("%#x", uintptr(e.handle)),
			e.typeName,
		}
	}
	headers := []string{"#", "at", "event", "handle", "type"}

	if !styled {
		var b strings.Builder
		b.WriteString(strings.Join(headers, "\t"))
		b.WriteByte('\n')
		for _, r := range rows {
			b.WriteString(strings.Join(r, "\t"))
			b.WriteByte('\n')
		}
		return b.String()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return eventStyles[events[row].typ]
			}
			return cellStyle
		})
	return t.Render() + "\n"
}

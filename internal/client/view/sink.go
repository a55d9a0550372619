package view

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// TextSink draws panels as numbered lines on a writer. Error rows are
// coloured when the writer is a terminal.
type TextSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func NewTextSink(w io.Writer) *TextSink {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &TextSink{w: w, color: color}
}

func (s *TextSink) Show(panel Panel, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "== %s ==\n", panelTitle(panel))
	n := 0
	for _, r := range rows {
		switch r.Kind {
		case RowError:
			if s.color {
				fmt.Fprintf(s.w, "  %s%s%s\n", ansiRed, r.Text, ansiReset)
			} else {
				fmt.Fprintf(s.w, "  %s\n", r.Text)
			}
		case RowPlaceholder:
			fmt.Fprintf(s.w, "  %s\n", r.Text)
		default:
			n++
			fmt.Fprintf(s.w, "  %2d. %s  [%s]\n", n, r.Text, joinActions(r.Actions))
		}
	}
}

func panelTitle(p Panel) string {
	if p == PanelTrash {
		return "Recycle bin"
	}
	return "Files"
}

func joinActions(actions []Action) string {
	s := make([]string, len(actions))
	for i, a := range actions {
		s[i] = string(a)
	}
	return strings.Join(s, " ")
}

// RecordingSink keeps every Show call in memory.
type RecordingSink struct {
	mu    sync.Mutex
	Shown []Shown
}

// Shown is one recorded Show call.
type Shown struct {
	Panel Panel
	Rows  []Row
}

func (s *RecordingSink) Show(panel Panel, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Shown = append(s.Shown, Shown{Panel: panel, Rows: rows})
}

// Count returns how many times panel was drawn.
func (s *RecordingSink) Count(panel Panel) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sh := range s.Shown {
		if sh.Panel == panel {
			n++
		}
	}
	return n
}

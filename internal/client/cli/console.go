package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/client/services"
)

// Console implements the dispatcher's Notifier and Prompter on a terminal.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

var (
	_ services.Notifier = (*Console)(nil)
	_ services.Prompter = (*Console)(nil)
)

func NewConsole(reader *bufio.Reader, out io.Writer) *Console {
	return &Console{reader: reader, out: out}
}

func (c *Console) Notify(ctx context.Context, msg string) {
	fmt.Fprintln(c.out, msg)
}

// Confirm accepts y or yes in any case. Anything else, including a read
// error, declines.
func (c *Console) Confirm(ctx context.Context, question string) bool {
	answer, err := GetSimpleText(c.reader, question+" [y/N]", c.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// Prompt reads one line. The second result is false when input ended before
// an answer was given.
func (c *Console) Prompt(ctx context.Context, question string) (string, bool) {
	answer, err := GetSimpleText(c.reader, question, c.out)
	if err != nil {
		return "", false
	}
	return answer, true
}

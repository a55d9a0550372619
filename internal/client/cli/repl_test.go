package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) rec(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) List(ctx context.Context) error { return f.rec("list") }
func (f *fakeExec) Search(ctx context.Context, q string) error { return f.rec("search:%s", q) }
func (f *fakeExec) Sort(ctx context.Context, k string) error { return f.rec("sort:%s", k) }
func (f *fakeExec) Refresh(ctx context.Context) error { return f.rec("refresh") }
func (f *fakeExec) ShowTrash(ctx context.Context) error { return f.rec("trash") }
func (f *fakeExec) HideTrash(ctx context.Context) error { return f.rec("trash-hide") }
func (f *fakeExec) SetMode(mode string) { _ = f.rec("mode:%s", mode) }
func (f *fakeExec) Select(path string) { _ = f.rec("select:%s", path) }
func (f *fakeExec) Add(ctx context.Context) error { return f.rec("add") }
func (f *fakeExec) Download(ctx context.Context, n string) error { return f.rec("download:%s", n) }
func (f *fakeExec) Rename(ctx context.Context, n string) error { return f.rec("rename:%s", n) }
func (f *fakeExec) Remove(ctx context.Context, n string) error { return f.rec("rm:%s", n) }
func (f *fakeExec) Restore(ctx context.Context, n string) error { return f.rec("restore:%s", n) }
func (f *fakeExec) Purge(ctx context.Context, n string) error { return f.rec("purge:%s", n) }
func (f *fakeExec) Link(ctx context.Context, n string) error { return f.rec("link:%s", n) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"ls",
		"search  quarterly report ",
		"search",
		"sort size",
		"refresh",
		"trash",
		"trash hide",
		"mode create",
		"select /tmp/a b.txt",
		"add",
		"download my file.txt",
		"rename a.txt",
		"rm a.txt",
		"restore a.txt",
		"purge a.txt",
		"link a.txt",
		"",
		"exit",
		"ls",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"list",
		"search:quarterly report",
		"search:",
		"sort:size",
		"refresh",
		"trash",
		"trash-hide",
		"mode:create",
		"select:/tmp/a b.txt",
		"add",
		"download:my file.txt",
		"rename:a.txt",
		"rm:a.txt",
		"restore:a.txt",
		"purge:a.txt",
		"link:a.txt",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("download\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: download <name>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("ls")))
	assert.Equal(t, []string{"list"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("ls\n")))
	assert.Empty(t, exec.calls)
}

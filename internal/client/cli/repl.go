package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  ls | list              reload the file list
  search [text]          filter files by name (empty clears)
  sort name|size|date    change the sort order
  refresh                reload files and recycle bin
  trash [hide]           show or hide the recycle bin
  mode upload|create     switch the add form
  select [path]          choose a local file for upload
  add                    upload the selected file or create a text file
  download <name>        save a file into the download directory
  rename <name>          rename a file
  rm <name>              move a file to the recycle bin
  restore <name>         restore a file from the recycle bin
  purge <name>           permanently delete a file from the recycle bin
  link <name>            print, QR-encode and copy a download link
  exit | quit            leave the program`

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Sort(ctx context.Context, key string) error
	Refresh(ctx context.Context) error
	ShowTrash(ctx context.Context) error
	HideTrash(ctx context.Context) error
	SetMode(mode string)
	Select(path string)
	Add(ctx context.Context) error
	Download(ctx context.Context, name string) error
	Rename(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	Restore(ctx context.Context, name string) error
	Purge(ctx context.Context, name string) error
	Link(ctx context.Context, name string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The remainder of the line after the command word is passed as a single
// argument so file names may contain spaces. The loop exits on EOF, on
// "exit" or "quit", or once ctx is cancelled.
//
// Errors returned by handlers are ignored here; handlers report to the user
// and log on their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("fk (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "ls", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "sort":
			_ = a.Sort(ctx, arg)

		case "refresh":
			_ = a.Refresh(ctx)

		case "trash":
			if arg == "hide" {
				_ = a.HideTrash(ctx)
			} else {
				_ = a.ShowTrash(ctx)
			}

		case "mode":
			a.SetMode(arg)

		case "select":
			a.Select(arg)

		case "add":
			_ = a.Add(ctx)

		case "download", "rename", "rm", "restore", "purge", "link":
			if arg == "" {
				printlnFn(fmt.Sprintf("Usage: %s <name>", cmd))
				continue
			}
			_ = runNamed(ctx, a, cmd, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func runNamed(ctx context.Context, a execIface, cmd, name string) error {
	switch cmd {
	case "download":
		return a.Download(ctx, name)
	case "rename":
		return a.Rename(ctx, name)
	case "rm":
		return a.Remove(ctx, name)
	case "restore":
		return a.Restore(ctx, name)
	case "purge":
		return a.Purge(ctx, name)
	case "link":
		return a.Link(ctx, name)
	}
	return nil
}

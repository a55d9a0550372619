package view

import (
	"fmt"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

// RowKind distinguishes entry rows from the single-row placeholders.
type RowKind int

const (
	RowEntry RowKind = iota
	RowPlaceholder
	RowError
)

// Action is a per-entry trigger bound to the entry's full name.
type Action string

const (
	ActionDownload        Action = "download"
	ActionRename          Action = "rename"
	ActionDelete          Action = "delete"
	ActionRestore         Action = "restore"
	ActionDeletePermanent Action = "purge"
)

const (
	NoFilesText    = "No files found."
	TrashEmptyText = "Trash is empty."
)

// Row is one renderable line of a panel.
type Row struct {
	Kind    RowKind
	Text    string
	Name    string
	Actions []Action
}

const bytesPerMB = 1024 * 1024

// FormatSizeMB renders a byte count in mebibytes with two decimals.
func FormatSizeMB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/bytesPerMB)
}

// RenderActive maps an active-file listing to rows.
func RenderActive(res models.ListResult) []Row {
	return render(res, NoFilesText, func(e models.FileEntry) Row {
		return Row{
			Kind:    RowEntry,
			Text:    fmt.Sprintf("%s (%s, %s MB)", TruncateName(e.Name), e.Type, FormatSizeMB(e.Size)),
			Name:    e.Name,
			Actions: []Action{ActionDownload, ActionRename, ActionDelete},
		}
	})
}

// RenderTrash maps a trash listing to rows.
func RenderTrash(res models.ListResult) []Row {
	return render(res, TrashEmptyText, func(e models.FileEntry) Row {
		return Row{
			Kind:    RowEntry,
			Text:    fmt.Sprintf("%s (%s MB)", TruncateName(e.Name), FormatSizeMB(e.Size)),
			Name:    e.Name,
			Actions: []Action{ActionRestore, ActionDeletePermanent},
		}
	})
}

func render(res models.ListResult, emptyText string, entryRow func(models.FileEntry) Row) []Row {
	if !res.IsList {
		if res.Error == "" {
			return []Row{}
		}
		return []Row{{Kind: RowError, Text: "Error: " + res.Error}}
	}
	if len(res.Entries) == 0 {
		return []Row{{Kind: RowPlaceholder, Text: emptyText}}
	}
	rows := make([]Row, 0, len(res.Entries))
	for _, e := range res.Entries {
		rows = append(rows, entryRow(e))
	}
	return rows
}

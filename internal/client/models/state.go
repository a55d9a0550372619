package models

import "strings"

// SortKey selects the ordering applied by the backend to the active listing.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortBySize         SortKey = "size"
	SortByDateModified SortKey = "date_modified"
)

// ParseSortKey maps user input onto a known sort key. Unknown input yields
// SortByName, which is also what the backend falls back to.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortBySize:
		return SortBySize
	case SortByDateModified, "date", "modified":
		return SortByDateModified
	default:
		return SortByName
	}
}

// ViewState is the per-list state mutated by user input. Query and SortKey
// only affect the active list; Visible only applies to the trash panel.
type ViewState struct {
	Query   string
	SortKey SortKey
	Visible bool
}

// UploadForm holds the file currently selected for upload.
type UploadForm struct {
	Path string
}

// Selected reports whether a file has been chosen.
func (f *UploadForm) Selected() bool {
	return strings.TrimSpace(f.Path) != ""
}

// Clear drops the selection.
func (f *UploadForm) Clear() {
	f.Path = ""
}

// CreateForm holds the fields of the "create text file" panel.
type CreateForm struct {
	FileName string
	Content  string
}

// Clear empties both fields.
func (f *CreateForm) Clear() {
	f.FileName = ""
	f.Content = ""
}

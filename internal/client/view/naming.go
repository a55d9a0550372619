package view

import (
	"path/filepath"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

// DefaultNameWidth is the display budget for file names in both panels.
const DefaultNameWidth = 20

const ellipsis = "..."

// NoFileChosen is the upload selection label when nothing is selected.
const NoFileChosen = "No file chosen"

// Truncate shortens name to at most max runes. Longer names keep their first
// max-3 runes followed by "...". When max is too small to hold the ellipsis
// the name is cut to max runes without one.
func Truncate(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	if max <= 0 {
		return ""
	}
	if max < len(ellipsis) {
		return string(r[:max])
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}

// TruncateName applies Truncate with DefaultNameWidth.
func TruncateName(name string) string {
	return Truncate(name, DefaultNameWidth)
}

// SelectionLabel is the text shown next to the upload picker.
func SelectionLabel(f models.UploadForm) string {
	if !f.Selected() {
		return NoFileChosen
	}
	return TruncateName(filepath.Base(f.Path))
}

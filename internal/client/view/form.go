package view

import "strings"

// FormMode selects which input panel is shown: upload a local file or create
// a text file from scratch.
type FormMode string

const (
	FormUpload FormMode = "upload"
	FormCreate FormMode = "create"
)

// Panels is the visibility of the two input panels.
type Panels struct {
	UploadHidden bool
	CreateHidden bool
}

// SetFormMode hides both panels and then reveals the one matching mode.
// An unknown mode leaves both hidden.
func SetFormMode(mode FormMode) Panels {
	p := Panels{UploadHidden: true, CreateHidden: true}
	switch FormMode(strings.ToLower(string(mode))) {
	case FormUpload:
		p.UploadHidden = false
	case FormCreate:
		p.CreateHidden = false
	}
	return p
}

// Active returns the visible mode, or "" when both panels are hidden.
func (p Panels) Active() FormMode {
	switch {
	case !p.UploadHidden:
		return FormUpload
	case !p.CreateHidden:
		return FormCreate
	default:
		return ""
	}
}

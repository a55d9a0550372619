package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
)

const (
	msgSelectFile      = "Please select a file to upload!"
	msgFileNameNeeded  = "Filename is required!"
	msgCreateFailed    = "Failed to create file"
	msgDownloadFailed  = "Download failed"
	msgDeleteNoFileLog = "no file selected for deletion"
)

var (
	ErrNoFileSelected   = errors.New("no file selected")
	ErrFileNameRequired = errors.New("filename is required")
)

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// Prompter asks the user for a decision. Operations only proceed when the
// user affirms.
type Prompter interface {
	Confirm(ctx context.Context, question string) bool
	Prompt(ctx context.Context, question string) (string, bool)
}

// ActiveLoader reloads the active-file panel.
type ActiveLoader interface {
	Load(ctx context.Context, state models.ViewState) error
}

// TrashLoader reloads the trash panel.
type TrashLoader interface {
	Load(ctx context.Context) error
}

// Deps wires a Dispatcher. State is read at every reload so the active panel
// always reflects the current query and sort key.
type Deps struct {
	Client    client.Client
	Active    ActiveLoader
	Trash     TrashLoader
	State     func() models.ViewState
	Notifier  Notifier
	Prompter  Prompter
	Downloads Downloads
	Logger    logging.Logger
}

// Dispatcher runs one operation per user action and reloads the panels it
// may have changed.
type Dispatcher struct {
	client    client.Client
	active    ActiveLoader
	trash     TrashLoader
	state     func() models.ViewState
	notifier  Notifier
	prompter  Prompter
	downloads Downloads
	log       logging.Logger
}

func NewDispatcher(d Deps) *Dispatcher {
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
	if d.State == nil {
		d.State = func() models.ViewState { return models.ViewState{SortKey: models.SortByName} }
	}
	return &Dispatcher{
		client:    d.Client,
		active:    d.Active,
		trash:     d.Trash,
		state:     d.State,
		notifier:  d.Notifier,
		prompter:  d.Prompter,
		downloads: d.Downloads,
		log:       d.Logger,
	}
}

// RefreshAll reloads the active panel and then the trash panel. A failure
// of one does not prevent the other.
func (d *Dispatcher) RefreshAll(ctx context.Context) error {
	errActive := d.active.Load(ctx, d.state())
	errTrash := d.trash.Load(ctx)
	return errors.Join(errActive, errTrash)
}

// RefreshTrash reloads only the trash panel.
func (d *Dispatcher) RefreshTrash(ctx context.Context) error {
	return d.trash.Load(ctx)
}

func (d *Dispatcher) refreshAfter(ctx context.Context, op Operation, reply models.ServerReply) {
	switch scopeFor(op, reply) {
	case RefreshAll:
		_ = d.RefreshAll(ctx)
	case RefreshTrash:
		_ = d.RefreshTrash(ctx)
	}
}

// Upload sends the selected file and clears the selection once the server
// has answered.
func (d *Dispatcher) Upload(ctx context.Context, form *models.UploadForm) error {
	if !form.Selected() {
		d.notifier.Notify(ctx, msgSelectFile)
		return ErrNoFileSelected
	}

	f, err := os.Open(form.Path)
	if err != nil {
		d.log.Error(ctx, "cannot open upload", "path", form.Path, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}
	defer f.Close()

	reply, err := d.client.Upload(ctx, filepath.Base(form.Path), f)
	if err != nil {
		d.log.Error(ctx, "upload failed", "path", form.Path, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}

	d.notifier.Notify(ctx, reply.Text())
	d.refreshAfter(ctx, OpUpload, reply)
	form.Clear()
	return nil
}

// Create makes a text file from the create form and clears the form on
// success.
func (d *Dispatcher) Create(ctx context.Context, form *models.CreateForm) error {
	name := strings.TrimSpace(form.FileName)
	if name == "" {
		d.notifier.Notify(ctx, msgFileNameNeeded)
		return ErrFileNameRequired
	}

	reply, err := d.client.CreateFile(ctx, name, form.Content)
	if err != nil {
		d.log.Error(ctx, "error creating file", "name", name, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}

	if !reply.OK() {
		msg := reply.Error
		if msg == "" {
			msg = msgCreateFailed
		}
		d.log.Error(ctx, "error creating file", "name", name, "status", reply.StatusCode, "error", msg)
		d.notifier.Notify(ctx, msg)
		return nil
	}

	d.notifier.Notify(ctx, reply.Message)
	d.refreshAfter(ctx, OpCreate, reply)
	form.Clear()
	return nil
}

// Download fetches name and publishes it under its original name. The
// staged copy is released right after it is committed.
func (d *Dispatcher) Download(ctx context.Context, name string) error {
	if name == "" {
		d.notifier.Notify(ctx, msgFileNameNeeded)
		return ErrFileNameRequired
	}

	body, err := d.client.Download(ctx, name)
	if err != nil {
		d.log.Error(ctx, "download failed", "name", name, "error", err)
		if errors.Is(err, client.ErrDownloadFailed) {
			d.notifier.Notify(ctx, msgDownloadFailed)
		} else {
			d.notifier.Notify(ctx, err.Error())
		}
		return err
	}
	defer body.Close()

	staged, err := d.downloads.Stage(name, body)
	if err != nil {
		d.log.Error(ctx, "cannot stage download", "name", name, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}

	commitErr := staged.Commit()
	if err := staged.Release(); err != nil {
		d.log.Warn(ctx, "cannot release staged download", "name", name, "error", err)
	}
	if commitErr != nil {
		d.log.Error(ctx, "cannot save download", "name", name, "error", commitErr)
		d.notifier.Notify(ctx, commitErr.Error())
		return commitErr
	}

	d.notifier.Notify(ctx, fmt.Sprintf("Saved %s to %s", name, staged.Path()))
	d.refreshAfter(ctx, OpDownload, models.ServerReply{})
	return nil
}

// Rename asks for a new name and renames oldName. Panels reload only when
// the server accepts the rename.
func (d *Dispatcher) Rename(ctx context.Context, oldName string) error {
	newName, ok := d.prompter.Prompt(ctx, fmt.Sprintf("Rename %q to:", oldName))
	newName = strings.TrimSpace(newName)
	if !ok || newName == "" {
		return nil
	}

	reply, err := d.client.Rename(ctx, oldName, newName)
	if err != nil {
		d.log.Error(ctx, "rename failed", "old", oldName, "new", newName, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}

	d.notifier.Notify(ctx, reply.Text())
	d.refreshAfter(ctx, OpRename, reply)
	return nil
}

// Delete moves name to the trash after confirmation.
func (d *Dispatcher) Delete(ctx context.Context, name string) error {
	if name == "" {
		d.log.Warn(ctx, msgDeleteNoFileLog)
		return nil
	}
	if !d.prompter.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete %q?", name)) {
		return nil
	}

	reply, err := d.client.Delete(ctx, name)
	if err != nil {
		d.log.Error(ctx, "delete failed", "name", name, "error", err)
		d.notifier.Notify(ctx, err.Error())
		return err
	}

	d.notifier.Notify(ctx, reply.Text())
	d.refreshAfter(ctx, OpDelete, reply)
	return nil
}

// Restore brings name back from the trash.
func (d *Dispatcher) Restore(ctx context.Context, name string) error {
	reply, err := d.client.Restore(ctx, name)
	if err != nil {
		d.log.Error(ctx, "restore failed", "name", name, "error", err)
		return err
	}

	d.notifier.Notify(ctx, reply.Text())
	d.refreshAfter(ctx, OpRestore, reply)
	return nil
}

// DeletePermanent purges name from the trash after confirmation.
func (d *Dispatcher) DeletePermanent(ctx context.Context, name string) error {
	if !d.prompter.Confirm(ctx, fmt.Sprintf("Are you sure you want to permanently delete %q?", name)) {
		return nil
	}

	reply, err := d.client.DeletePermanent(ctx, name)
	if err != nil {
		d.log.Error(ctx, "permanent delete failed", "name", name, "error", err)
		return err
	}

	d.notifier.Notify(ctx, reply.Text())
	d.refreshAfter(ctx, OpDeletePermanent, reply)
	return nil
}

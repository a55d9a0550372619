package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/client/view"
)

var _ execIface = (*App)(nil)

func (a *App) List(ctx context.Context) error {
	return a.active.Load(ctx, a.viewState())
}

// Search sets the query and reloads the active list.
func (a *App) Search(ctx context.Context, query string) error {
	a.mu.Lock()
	a.state.Query = query
	a.mu.Unlock()
	return a.List(ctx)
}

// Sort sets the sort key and reloads the active list. Unknown keys sort by
// name.
func (a *App) Sort(ctx context.Context, key string) error {
	a.mu.Lock()
	a.state.SortKey = models.ParseSortKey(key)
	a.mu.Unlock()
	return a.List(ctx)
}

func (a *App) Refresh(ctx context.Context) error {
	return a.dispatcher.RefreshAll(ctx)
}

// ShowTrash loads the recycle bin and makes it visible.
func (a *App) ShowTrash(ctx context.Context) error {
	a.trash.SetVisible(true)
	return a.trash.Load(ctx)
}

func (a *App) HideTrash(ctx context.Context) error {
	a.trash.SetVisible(false)
	return nil
}

// SetMode switches the add form. Unknown modes hide both forms.
func (a *App) SetMode(mode string) {
	a.mu.Lock()
	a.panels = view.SetFormMode(view.FormMode(mode))
	active := a.panels.Active()
	a.mu.Unlock()

	if active == "" {
		printlnFn("No form shown; use 'mode upload' or 'mode create'")
		return
	}
	printlnFn("Form:", string(active))
}

// Select chooses the file the next upload sends. An empty path clears it.
func (a *App) Select(path string) {
	a.mu.Lock()
	a.upload.Path = path
	label := view.SelectionLabel(a.upload)
	a.mu.Unlock()

	printlnFn("Selected:", label)
}

// Add runs the flow of whichever form is visible.
func (a *App) Add(ctx context.Context) error {
	a.mu.Lock()
	mode := a.panels.Active()
	a.mu.Unlock()

	switch mode {
	case view.FormUpload:
		return a.dispatcher.Upload(ctx, &a.upload)
	case view.FormCreate:
		return a.addText(ctx)
	default:
		printlnFn("No form shown; use 'mode upload' or 'mode create'")
		return nil
	}
}

func (a *App) addText(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "File name (e.g. notes.txt)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "File content", a.out)
	if err != nil {
		return err
	}

	a.create.FileName = name
	a.create.Content = content
	return a.dispatcher.Create(ctx, &a.create)
}

func (a *App) Download(ctx context.Context, name string) error {
	return a.dispatcher.Download(ctx, name)
}

func (a *App) Rename(ctx context.Context, name string) error {
	return a.dispatcher.Rename(ctx, name)
}

func (a *App) Remove(ctx context.Context, name string) error {
	return a.dispatcher.Delete(ctx, name)
}

func (a *App) Restore(ctx context.Context, name string) error {
	return a.dispatcher.Restore(ctx, name)
}

func (a *App) Purge(ctx context.Context, name string) error {
	return a.dispatcher.DeletePermanent(ctx, name)
}

// Link prints the download URL of name, renders it as a QR code and copies
// it to the clipboard. A clipboard failure is only logged.
func (a *App) Link(ctx context.Context, name string) error {
	url := a.client.DownloadURL(name)
	printlnFn(url)

	qr, err := renderQR(url)
	if err != nil {
		a.log.Error(ctx, "cannot render QR code", "url", url, "error", err)
		return err
	}
	printlnFn(strings.TrimRight(qr, "\n"))

	if err := clipboardWrite(url); err != nil {
		a.log.Warn(ctx, "cannot copy link to clipboard", "error", err)
		return nil
	}
	printlnFn(fmt.Sprintf("Copied link for %s to clipboard", name))
	return nil
}

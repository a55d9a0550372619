package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/metrics"
)

// Panel identifies one of the two file lists.
type Panel string

const (
	PanelFiles Panel = "files"
	PanelTrash Panel = "trash"
)

// Sink receives the full content of a panel each time it is redrawn.
type Sink interface {
	Show(panel Panel, rows []Row)
}

// FileLister fetches the active-file listing.
type FileLister interface {
	ListFiles(ctx context.Context, query string, sortKey models.SortKey) (models.ListResult, error)
}

// TrashLister fetches the trash listing.
type TrashLister interface {
	ListTrash(ctx context.Context) (models.ListResult, error)
}

func loadResult(res models.ListResult) string {
	switch {
	case !res.IsList:
		return "server_error"
	case len(res.Entries) == 0:
		return "empty"
	default:
		return "list"
	}
}

// ActiveView renders the active-file panel.
type ActiveView struct {
	lister  FileLister
	sink    Sink
	log     logging.Logger
	metrics *metrics.Metrics

	mu   sync.Mutex
	rows []Row
}

func NewActiveView(lister FileLister, sink Sink, log logging.Logger, m *metrics.Metrics) *ActiveView {
	return &ActiveView{lister: lister, sink: sink, log: log.With("view", PanelFiles), metrics: m}
}

// Load fetches the listing for state and replaces the rendered rows.
// On a transport failure the previous rows stay in place and the error is
// returned after being logged.
func (v *ActiveView) Load(ctx context.Context, state models.ViewState) error {
	res, err := v.lister.ListFiles(ctx, state.Query, state.SortKey)
	if err != nil {
		v.log.Error(ctx, "error fetching files", "error", err)
		v.metrics.RecordViewLoad(string(PanelFiles), "error")
		return fmt.Errorf("load files: %w", err)
	}
	if !res.IsList {
		v.log.Error(ctx, "server returned error", "error", res.Error)
	}
	v.metrics.RecordViewLoad(string(PanelFiles), loadResult(res))

	rows := RenderActive(res)

	v.mu.Lock()
	v.rows = rows
	v.mu.Unlock()

	v.sink.Show(PanelFiles, rows)
	return nil
}

// Rows returns a copy of the last rendered rows.
func (v *ActiveView) Rows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Row(nil), v.rows...)
}

// TrashView renders the trash panel. Its visibility is independent of
// whether data has been loaded; a hidden panel keeps its rows but is not
// drawn.
type TrashView struct {
	lister  TrashLister
	sink    Sink
	log     logging.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	rows    []Row
	visible bool
}

func NewTrashView(lister TrashLister, sink Sink, log logging.Logger, m *metrics.Metrics) *TrashView {
	return &TrashView{lister: lister, sink: sink, log: log.With("view", PanelTrash), metrics: m}
}

// Load fetches the trash listing and replaces the rendered rows.
func (v *TrashView) Load(ctx context.Context) error {
	res, err := v.lister.ListTrash(ctx)
	if err != nil {
		v.log.Error(ctx, "error fetching trash", "error", err)
		v.metrics.RecordViewLoad(string(PanelTrash), "error")
		return fmt.Errorf("load trash: %w", err)
	}
	if !res.IsList {
		v.log.Error(ctx, "server returned error", "error", res.Error)
	}
	v.metrics.RecordViewLoad(string(PanelTrash), loadResult(res))

	rows := RenderTrash(res)

	v.mu.Lock()
	v.rows = rows
	visible := v.visible
	v.mu.Unlock()

	if visible {
		v.sink.Show(PanelTrash, rows)
	}
	return nil
}

// SetVisible shows or hides the panel. Showing redraws the current rows.
func (v *TrashView) SetVisible(visible bool) {
	v.mu.Lock()
	changed := v.visible != visible
	v.visible = visible
	rows := append([]Row(nil), v.rows...)
	v.mu.Unlock()

	if visible && changed {
		v.sink.Show(PanelTrash, rows)
	}
}

func (v *TrashView) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Rows returns a copy of the last rendered rows.
func (v *TrashView) Rows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Row(nil), v.rows...)
}

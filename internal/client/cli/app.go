package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/config"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/client/services"
	"github.com/dmitrijs2005/filekeeper/internal/client/view"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/metrics"
)

// App is the interactive client: the panels, the forms and the dispatcher
// acting on them.
type App struct {
	config     *config.Config
	client     client.Client
	dispatcher *services.Dispatcher
	active     *view.ActiveView
	trash      *view.TrashView
	log        logging.Logger

	mu     sync.Mutex
	state  models.ViewState
	panels view.Panels
	upload models.UploadForm
	create models.CreateForm

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an App talking to cfg.ServerURL. Panels are drawn on out and
// prompts are read from in.
func NewApp(cfg *config.Config, log logging.Logger, m *metrics.Metrics, in io.Reader, out io.Writer) *App {
	c := client.NewRESTClient(client.Options{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
		Metrics: m,
	})
	return newApp(cfg, c, services.DirDownloads{Dir: cfg.DownloadDir}, log, m, in, out)
}

func newApp(cfg *config.Config, c client.Client, dl services.Downloads, log logging.Logger, m *metrics.Metrics, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}

	a := &App{
		config: cfg,
		client: c,
		log:    log,
		state:  models.ViewState{SortKey: models.SortByName},
		panels: view.SetFormMode(""),
		reader: bufio.NewReader(in),
		out:    out,
	}

	sink := view.NewTextSink(out)
	a.active = view.NewActiveView(c, sink, log, m)
	a.trash = view.NewTrashView(c, sink, log, m)

	console := NewConsole(a.reader, out)
	a.dispatcher = services.NewDispatcher(services.Deps{
		Client:    c,
		Active:    a.active,
		Trash:     a.trash,
		State:     a.viewState,
		Notifier:  console,
		Prompter:  console,
		Downloads: dl,
		Logger:    log,
	})
	return a
}

func (a *App) viewState() models.ViewState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Load is the page-load step: both panels are fetched and the upload form
// is shown.
func (a *App) Load(ctx context.Context) error {
	a.SetMode(string(view.FormUpload))
	return a.dispatcher.RefreshAll(ctx)
}

// Run loads the panels and serves the REPL until the user quits, input ends
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "filekeeper connected to %s (type 'help' for commands)\n", a.config.ServerURL)
	if err := a.Load(ctx); err != nil {
		a.log.Warn(ctx, "initial load failed", "error", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// status is shown in the prompt: visible form, search query and sort key.
func (a *App) status() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	parts := []string{}
	if m := a.panels.Active(); m != "" {
		parts = append(parts, string(m))
	}
	if a.state.Query != "" {
		parts = append(parts, "search="+a.state.Query)
	}
	parts = append(parts, "sort="+string(a.state.SortKey))
	return strings.Join(parts, " ")
}

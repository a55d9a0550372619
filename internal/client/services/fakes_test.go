package services

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

type fakeClient struct {
	client.Client

	reply models.ServerReply
	err   error
	body  string

	calls []string
	args  [][]string
}

func (f *fakeClient) record(op string, args ...string) (models.ServerReply, error) {
	f.calls = append(f.calls, op)
	f.args = append(f.args, args)
	return f.reply, f.err
}

func (f *fakeClient) Upload(ctx context.Context, fileName string, r io.Reader) (models.ServerReply, error) {
	b, _ := io.ReadAll(r)
	return f.record("upload", fileName, string(b))
}

func (f *fakeClient) CreateFile(ctx context.Context, fileName, content string) (models.ServerReply, error) {
	return f.record("create", fileName, content)
}

func (f *fakeClient) Download(ctx context.Context, fileName string) (io.ReadCloser, error) {
	f.calls = append(f.calls, "download")
	f.args = append(f.args, []string{fileName})
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

func (f *fakeClient) Rename(ctx context.Context, oldName, newName string) (models.ServerReply, error) {
	return f.record("rename", oldName, newName)
}

func (f *fakeClient) Delete(ctx context.Context, fileName string) (models.ServerReply, error) {
	return f.record("delete", fileName)
}

func (f *fakeClient) Restore(ctx context.Context, fileName string) (models.ServerReply, error) {
	return f.record("restore", fileName)
}

func (f *fakeClient) DeletePermanent(ctx context.Context, fileName string) (models.ServerReply, error) {
	return f.record("delete_permanent", fileName)
}

type loads struct {
	active int
	trash  int
	states []models.ViewState
}

type fakeActive struct{ l *loads }

func (f fakeActive) Load(ctx context.Context, state models.ViewState) error {
	f.l.active++
	f.l.states = append(f.l.states, state)
	return nil
}

type fakeTrash struct{ l *loads }

func (f fakeTrash) Load(ctx context.Context) error {
	f.l.trash++
	return nil
}

type fakeUI struct {
	notes     []string
	questions []string
	confirm   bool
	answer    string
	answered  bool
}

func (u *fakeUI) Notify(ctx context.Context, msg string) { u.notes = append(u.notes, msg) }

func (u *fakeUI) Confirm(ctx context.Context, q string) bool {
	u.questions = append(u.questions, q)
	return u.confirm
}

func (u *fakeUI) Prompt(ctx context.Context, q string) (string, bool) {
	u.questions = append(u.questions, q)
	return u.answer, u.answered
}

type stagedRecorder struct {
	events *[]string
	path   string
	data   string
}

func (s *stagedRecorder) Path() string { return s.path }
func (s *stagedRecorder) Commit() error {
	*s.events = append(*s.events, "commit")
	return nil
}
func (s *stagedRecorder) Release() error {
	*s.events = append(*s.events, "release")
	return nil
}

type recordingDownloads struct {
	events []string
	staged *stagedRecorder
}

func (r *recordingDownloads) Stage(name string, rd io.Reader) (StagedDownload, error) {
	b, _ := io.ReadAll(rd)
	r.events = append(r.events, "stage:"+name)
	r.staged = &stagedRecorder{events: &r.events, path: "/downloads/" + name, data: string(b)}
	return r.staged, nil
}

func newTestDispatcher(c *fakeClient, ui *fakeUI) (*Dispatcher, *loads) {
	l := &loads{}
	d := NewDispatcher(Deps{
		Client:   c,
		Active:   fakeActive{l},
		Trash:    fakeTrash{l},
		State:    func() models.ViewState { return models.ViewState{Query: "q", SortKey: models.SortBySize} },
		Notifier: ui,
		Prompter: ui,
	})
	return d, l
}

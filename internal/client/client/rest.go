package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request uuid.
const RequestIDHeader = "X-Request-ID"

// Options configures a RESTClient.
type Options struct {
	BaseURL string
	Timeout time.Duration // 0 keeps the transport defaults
	Logger  logging.Logger
	Metrics *metrics.Metrics
}

// RESTClient talks to the file-manager backend over HTTP.
type RESTClient struct {
	baseURL string
	http    *resty.Client
	log     logging.Logger
	metrics *metrics.Metrics
}

var _ Client = (*RESTClient)(nil)

func NewRESTClient(opts Options) *RESTClient {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	h := resty.New().SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	if opts.Timeout > 0 {
		h.SetTimeout(opts.Timeout)
	}
	h.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader(RequestIDHeader, uuid.NewString())
		return nil
	})

	return &RESTClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    h,
		log:     log,
		metrics: opts.Metrics,
	}
}

// DownloadURL is the absolute URL the backend serves fileName's bytes from.
func (c *RESTClient) DownloadURL(fileName string) string {
	return c.baseURL + "/download/" + url.PathEscape(fileName)
}

func (c *RESTClient) ListFiles(ctx context.Context, query string, sortKey models.SortKey) (models.ListResult, error) {
	if sortKey == "" {
		sortKey = models.SortByName
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"search": query, "sort_by": string(sortKey)}).
		Get("/files")
	if err != nil {
		return models.ListResult{}, c.mapError(ctx, "list_files", err)
	}
	return c.decodeList(ctx, "list_files", resp)
}

func (c *RESTClient) ListTrash(ctx context.Context) (models.ListResult, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/trash")
	if err != nil {
		return models.ListResult{}, c.mapError(ctx, "list_trash", err)
	}
	return c.decodeList(ctx, "list_trash", resp)
}

func (c *RESTClient) Upload(ctx context.Context, fileName string, r io.Reader) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", fileName, r).
		Post("/upload")
	return c.reply(ctx, "upload", resp, err)
}

func (c *RESTClient) CreateFile(ctx context.Context, fileName, content string) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"filename": fileName, "content": content}).
		Post("/create-file")
	return c.reply(ctx, "create", resp, err)
}

func (c *RESTClient) Rename(ctx context.Context, oldName, newName string) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"old_name": oldName, "new_name": newName}).
		Put("/rename")
	return c.reply(ctx, "rename", resp, err)
}

func (c *RESTClient) Delete(ctx context.Context, fileName string) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", fileName).
		Delete("/delete/{name}")
	return c.reply(ctx, "delete", resp, err)
}

func (c *RESTClient) Restore(ctx context.Context, fileName string) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", fileName).
		Put("/restore/{name}")
	return c.reply(ctx, "restore", resp, err)
}

func (c *RESTClient) DeletePermanent(ctx context.Context, fileName string) (models.ServerReply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", fileName).
		Delete("/delete-permanent/{name}")
	return c.reply(ctx, "delete_permanent", resp, err)
}

// Download streams the file body. The caller must close the returned reader.
func (c *RESTClient) Download(ctx context.Context, fileName string) (io.ReadCloser, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("name", fileName).
		Get("/download/{name}")
	if err != nil {
		return nil, c.mapError(ctx, "download", err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		if body != nil {
			_ = body.Close()
		}
		c.metrics.RecordRequest("download", "rejected")
		c.log.Warn(ctx, "download rejected", "name", fileName, "status", resp.StatusCode(),
			"request_id", requestID(resp))
		return nil, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode())
	}

	c.metrics.RecordRequest("download", "ok")
	return body, nil
}

func (c *RESTClient) reply(ctx context.Context, op string, resp *resty.Response, err error) (models.ServerReply, error) {
	if err != nil {
		return models.ServerReply{}, c.mapError(ctx, op, err)
	}

	var r models.ServerReply
	if err := json.Unmarshal(resp.Body(), &r); err != nil {
		c.metrics.RecordRequest(op, "error")
		c.log.Error(ctx, "cannot decode reply", "op", op, "status", resp.StatusCode(),
			"request_id", requestID(resp), "error", err)
		return models.ServerReply{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	r.StatusCode = resp.StatusCode()

	outcome := "ok"
	if !r.OK() {
		outcome = "rejected"
	}
	c.metrics.RecordRequest(op, outcome)
	c.log.Debug(ctx, "reply received", "op", op, "status", r.StatusCode, "request_id", requestID(resp))
	return r, nil
}

// decodeList accepts either a JSON array of entries or an object with an
// error field, whatever the HTTP status.
func (c *RESTClient) decodeList(ctx context.Context, op string, resp *resty.Response) (models.ListResult, error) {
	body := bytes.TrimSpace(resp.Body())

	if bytes.HasPrefix(body, []byte("[")) {
		var entries []models.FileEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			c.metrics.RecordRequest(op, "error")
			return models.ListResult{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
		}
		c.metrics.RecordRequest(op, "ok")
		c.log.Debug(ctx, "listing received", "op", op, "count", len(entries), "request_id", requestID(resp))
		return models.ListResult{Entries: entries, IsList: true}, nil
	}

	if !bytes.HasPrefix(body, []byte("{")) {
		c.metrics.RecordRequest(op, "error")
		return models.ListResult{}, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode())
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.metrics.RecordRequest(op, "error")
		return models.ListResult{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	c.metrics.RecordRequest(op, "rejected")
	return models.ListResult{Error: payload.Error}, nil
}

func (c *RESTClient) mapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	c.metrics.RecordRequest(op, "error")
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	c.log.Error(ctx, "request failed", "op", op, "error", err)
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func requestID(resp *resty.Response) string {
	if resp == nil || resp.Request == nil {
		return ""
	}
	return resp.Request.Header.Get(RequestIDHeader)
}

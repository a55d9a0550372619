package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
	"github.com/dmitrijs2005/filekeeper/internal/metrics"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, h http.HandlerFunc) (*RESTClient, *metrics.Metrics) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	m := metrics.New()
	return NewRESTClient(Options{BaseURL: ts.URL + "/", Metrics: m}), m
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListFiles_SendsQueryAndDecodesArray(t *testing.T) {
	var gotSearch, gotSort, gotReqID string
	c, m := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		gotSearch = r.URL.Query().Get("search")
		gotSort = r.URL.Query().Get("sort_by")
		gotReqID = r.Header.Get(RequestIDHeader)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"name": "a.txt", "size": 1048576, "type": "txt", "date_modified": "2024-01-02 03:04:05"},
		})
	})

	res, err := c.ListFiles(context.Background(), "a b&c", models.SortBySize)
	require.NoError(t, err)

	want := models.ListResult{IsList: true, Entries: []models.FileEntry{
		{Name: "a.txt", Size: 1048576, Type: "txt", DateModified: "2024-01-02 03:04:05"},
	}}
	assert.Empty(t, cmp.Diff(want, res))
	assert.Equal(t, "a b&c", gotSearch)
	assert.Equal(t, "size", gotSort)
	assert.Len(t, gotReqID, 36)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests("list_files", "ok")))
}

func TestListFiles_DefaultSortKey(t *testing.T) {
	var gotSort string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort_by")
		writeJSON(w, http.StatusOK, []any{})
	})

	res, err := c.ListFiles(context.Background(), "", "")
	require.NoError(t, err)
	assert.True(t, res.IsList)
	assert.Empty(t, res.Entries)
	assert.Equal(t, "name", gotSort)
}

func TestListTrash_ErrorPayload(t *testing.T) {
	c, m := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trash", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
	})

	res, err := c.ListTrash(context.Background())
	require.NoError(t, err)
	assert.False(t, res.IsList)
	assert.Equal(t, "db down", res.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests("list_trash", "rejected")))
}

func TestListTrash_GarbageBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := c.ListTrash(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestListFiles_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewRESTClient(Options{BaseURL: url})
	_, err := c.ListFiles(context.Background(), "", models.SortByName)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUpload_Multipart(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "notes.txt", hdr.Filename)
		assert.Equal(t, "hello", string(b))
		writeJSON(w, http.StatusCreated, map[string]string{"message": "notes.txt uploaded successfully"})
	})

	reply, err := c.Upload(context.Background(), "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.Equal(t, "notes.txt uploaded successfully", reply.Text())
}

func TestCreateFile_JSONBodyAndConflict(t *testing.T) {
	c, m := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"filename": "a.txt", "content": "x"}, body)
		writeJSON(w, http.StatusConflict, map[string]string{"error": "File already exists"})
	})

	reply, err := c.CreateFile(context.Background(), "a.txt", "x")
	require.NoError(t, err)
	assert.False(t, reply.OK())
	assert.Equal(t, http.StatusConflict, reply.StatusCode)
	assert.Equal(t, "File already exists", reply.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests("create", "rejected")))
}

func TestRename_PutsOldAndNewName(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rename", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a.txt", body["old_name"])
		assert.Equal(t, "b.txt", body["new_name"])
		writeJSON(w, http.StatusOK, map[string]string{"message": "File renamed from a.txt to b.txt"})
	})

	reply, err := c.Rename(context.Background(), "a.txt", "b.txt")
	require.NoError(t, err)
	assert.True(t, reply.OK())
}

func TestNameAddressedOperations_EscapePath(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		call   func(c *RESTClient) (models.ServerReply, error)
	}{
		{"delete", http.MethodDelete, "/delete/my file.txt", func(c *RESTClient) (models.ServerReply, error) {
			return c.Delete(context.Background(), "my file.txt")
		}},
		{"restore", http.MethodPut, "/restore/my file.txt", func(c *RESTClient) (models.ServerReply, error) {
			return c.Restore(context.Background(), "my file.txt")
		}},
		{"purge", http.MethodDelete, "/delete-permanent/my file.txt", func(c *RESTClient) (models.ServerReply, error) {
			return c.DeletePermanent(context.Background(), "my file.txt")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath, gotRaw string
			c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath, gotRaw = r.Method, r.URL.Path, r.URL.EscapedPath()
				writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
			})

			reply, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, "ok", reply.Message)
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
			assert.Contains(t, gotRaw, "my%20file.txt")
		})
	}
}

func TestReply_UndecodableBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "not json")
	})

	_, err := c.Delete(context.Background(), "a.txt")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestDownload(t *testing.T) {
	c, m := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/download/a.bin" {
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte{1, 2, 3})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
	})

	body, err := c.Download(context.Background(), "a.bin")
	require.NoError(t, err)
	b, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = c.Download(context.Background(), "missing.bin")
	assert.ErrorIs(t, err, ErrDownloadFailed)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests("download", "rejected")))
}

func TestDownloadURL(t *testing.T) {
	c := NewRESTClient(Options{BaseURL: "http://files.local:5000/"})
	assert.Equal(t, "http://files.local:5000/download/my%20report.pdf", c.DownloadURL("my report.pdf"))
}

func TestCanceledContext(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListTrash(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

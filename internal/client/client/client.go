package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

type Client interface {
	ListFiles(ctx context.Context, query string, sortKey models.SortKey) (models.ListResult, error)
	ListTrash(ctx context.Context) (models.ListResult, error)
	Upload(ctx context.Context, fileName string, r io.Reader) (models.ServerReply, error)
	CreateFile(ctx context.Context, fileName, content string) (models.ServerReply, error)
	Download(ctx context.Context, fileName string) (io.ReadCloser, error)
	Rename(ctx context.Context, oldName, newName string) (models.ServerReply, error)
	Delete(ctx context.Context, fileName string) (models.ServerReply, error)
	Restore(ctx context.Context, fileName string) (models.ServerReply, error)
	DeletePermanent(ctx context.Context, fileName string) (models.ServerReply, error)
	DownloadURL(fileName string) string
}

package services

import (
	"io"

	"github.com/dmitrijs2005/filekeeper/internal/filex"
)

// StagedDownload stands between fetched bytes and the file the user sees.
// Commit publishes it; Release frees the staging resource.
type StagedDownload interface {
	Path() string
	Commit() error
	Release() error
}

// Downloads stages fetched bytes under their original name.
type Downloads interface {
	Stage(name string, r io.Reader) (StagedDownload, error)
}

// DirDownloads stages into a temporary file and commits into Dir.
type DirDownloads struct {
	Dir string
}

func (d DirDownloads) Stage(name string, r io.Reader) (StagedDownload, error) {
	dir, err := filex.EnsureDir(d.Dir)
	if err != nil {
		return nil, err
	}
	s, err := filex.Stage(dir, name, r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrDownloadFailed     = errors.New("download failed")
)

package cli

import (
	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
)

// clipboardWrite is a test seam for the system clipboard.
var clipboardWrite = clipboard.WriteAll

// renderQR draws url as a compact block-character QR code.
func renderQR(url string) (string, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", err
	}
	return qr.ToSmallString(false), nil
}

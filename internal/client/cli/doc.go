// Package cli provides the interactive filekeeper command-line client.
//
// It wires configuration, the HTTP client, the file and trash panels and the
// action dispatcher behind a small REPL. Startup loads both panels and shows
// the upload form; every command then runs one dispatcher operation.
//
// Key features:
//   - List, search and sort active files; show or hide the recycle bin
//   - Upload a local file or create a text file (mode upload|create, add)
//   - Download, rename, delete, restore and permanently delete
//   - Share a download link as text, QR code and clipboard entry
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

// Package client contains the transport side of the filekeeper client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the file-manager endpoints: listing active files and trash, upload,
//     create, download, rename, soft delete, restore and permanent delete.
//  2. A concrete REST implementation (see RESTClient) built on resty. Every
//     request carries an X-Request-ID header for log correlation.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable and bodies that cannot be
// decoded as ErrUnexpectedResponse; callers match them with errors.Is.
// Server-side rejections are not errors: they come back as a
// models.ServerReply with a non-2xx status, or as a models.ListResult whose
// IsList is false.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept
// context.Context; no timeout is applied unless configured.
package client

// Package view turns listing results into a structured render model and keeps
// the two file panels (active files and trash) in sync with the backend.
//
// Rendering is pure: RenderActive and RenderTrash map a models.ListResult to an
// ordered []Row without touching any output. ActiveView and TrashView perform
// the listing call, keep the last rendered rows and push them to a Sink. A
// failed call leaves the previous rows untouched.
package view

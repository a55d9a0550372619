// Package services implements the user-initiated file operations and the
// refresh coordination that keeps both panels consistent with the backend.
//
// Every operation on Dispatcher performs exactly one backend call, reports the
// outcome through a Notifier and then reloads the panels named by its entry in
// RefreshPolicies. Input errors are caught before any request is made;
// transport failures never trigger a reload.
package services

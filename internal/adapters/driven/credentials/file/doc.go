// Package file provides the JSON-backed cookie jar implementing the
// CredentialStore driven port, plus a filesystem watcher that signals
// external edits so a running watch session picks up fresh cookies
// without a restart.
package file

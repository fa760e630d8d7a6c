// Package repositories implements SQLite-backed persistence for the training
// platform. Reads go through the pooled read-only connection wrapped in sqlx
// for struct scanning; writes go through the single read-write connection.
package repositories

import "github.com/dealercoach/dealercoach/internal/errors"

// ErrNotFound is returned when the requested row does not exist or belongs to
// another user.
var ErrNotFound = errors.NewSentinel("not found")

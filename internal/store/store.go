// Package store holds the SQL query contract for the users and admins
// tables. Errors from the driver are wrapped, not swallowed; callers
// decide how much of them to expose.
package store

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

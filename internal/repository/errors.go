// Package repository contains data access logic separated from HTTP handlers.
// Every repository is constructed with an explicitly injected database handle;
// there is no package-level connection state.
package repository

import "errors"

// ErrNotFound is returned when an update or delete matches no stored
// document, or when a lookup by key comes back empty.  Handlers translate it
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrExists is returned when a create would collide with an existing unique
// key, currently only admin usernames.
var ErrExists = errors.New("already exists")

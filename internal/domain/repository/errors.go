package repository

import "errors"

// ErrDuplicateReference is returned by document Create methods when the
// generated reference collides with an existing row. Callers allocate a
// fresh number and retry.
var ErrDuplicateReference = errors.New("duplicate document reference")

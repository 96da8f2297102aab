package core

import "errors"

// ErrCancelled reports that acquiring a pattern buffer was aborted by the
// user. Boards are left unchanged.
var ErrCancelled = errors.New("buffer acquisition cancelled")

package source

import "errors"

// ErrPageOutOfRange is returned when a page index is outside the document.
var ErrPageOutOfRange = errors.New("source: page index out of range")

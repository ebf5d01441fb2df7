package service

import "errors"

// ErrAmbiguousRef is returned when a short id prefix matches more than one
// entity.
var ErrAmbiguousRef = errors.New("ambiguous reference")

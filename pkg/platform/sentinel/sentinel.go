package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// so services can tell "not found" apart from a storage failure and translate
// both into coded domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrInvalidState: conditional status write lost (record is no longer pending)
//   - ErrAlreadyUsed: unique key already taken (username, token id)
//   - ErrUnavailable: backend temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

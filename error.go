package jobtracker

import "errors"

var (
	ErrBadConfig    = errors.New("bad config")
	ErrBadFormat    = errors.New("bad format")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrMissingData  = errors.New("missing data")
	ErrNotExist     = errors.New("not exist")
	ErrNotValid     = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnexpected   = errors.New("unexpected")
)

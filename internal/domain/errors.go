package domain

import "errors"

var (
	ErrMissingCredentials = errors.New("missing api keys")
	ErrTaskFailed         = errors.New("video generation failed")
)

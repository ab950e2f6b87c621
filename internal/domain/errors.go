package domain

import "errors"

var (
	ErrSessionNotFound   = errors.New("stored session not found")
	ErrMissingCredential = errors.New("missing access token")
	ErrUnknownCommand    = errors.New("unknown command")
)

package domain

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidListingData = errors.New("invalid listing data")
	ErrDuplicateID        = errors.New("listing id already exists")
)

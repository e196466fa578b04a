package domain

import "errors"

var (
	ErrTitleRequired      = errors.New("title required")
	ErrTitleTooLong       = errors.New("title too long")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrLocationTooLong    = errors.New("location too long")
	ErrTimesRequired      = errors.New("starts_at and ends_at required")
	ErrInvalidTimeRange   = errors.New("ends_at must be after starts_at")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidViewMode    = errors.New("invalid view mode")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrAdminAlreadyExists = errors.New("email already in admin list")
	ErrAdminNotFound      = errors.New("email not in admin list")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

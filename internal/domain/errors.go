package domain

import "errors"

var (
	ErrConferenceNotFound = errors.New("conference not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrConferenceExists = errors.New("conference already exists")
	ErrUserExists       = errors.New("user already exists")
)

var (
	ErrInvalidSchedule        = errors.New("invalid conference schedule")
	ErrConferenceStarted      = errors.New("conference already started")
	ErrConfirmationNotOffered = errors.New("booking is not next in line for confirmation")
	ErrConfirmationExpired    = errors.New("time to confirm booking exceeded")
	ErrInvalidState           = errors.New("invalid state")
)

var (
	ErrValidation = errors.New("validation error")
)

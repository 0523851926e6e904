package engine

import "errors"

var (
	// ErrVerifyMismatch means a remote write was acknowledged but the
	// follow-up read disagreed with what was written.
	ErrVerifyMismatch = errors.New("remote verification mismatch")

	// ErrProductNotFound is returned by updates targeting an unknown
	// product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrPostNotFound is returned by updates targeting an unknown blog
	// post id.
	ErrPostNotFound = errors.New("blog post not found")

	// ErrDuplicateID is returned when an add would collide with an
	// existing record id.
	ErrDuplicateID = errors.New("id already in use")

	// ErrScheduleRequired is returned when a post is marked scheduled
	// without a valid scheduled date.
	ErrScheduleRequired = errors.New("scheduled post needs a valid scheduledDate")
)

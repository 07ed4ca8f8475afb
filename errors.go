package icc

import "errors"

// Parse failures are discriminated by sentinel errors; every validation
// rule wraps exactly one of these, so callers can branch with errors.Is
// without string matching.
var (
	// ErrTruncatedInput - the buffer is shorter than a structure being read
	ErrTruncatedInput = errors.New("truncated input")
	// ErrSizeMismatch - the declared profile size is smaller than a header
	// plus tag count, or larger than the supplied buffer
	ErrSizeMismatch = errors.New("profile size mismatch")
	// ErrBadSignature - the file signature is not 'acsp'
	ErrBadSignature = errors.New("bad profile file signature")
	// ErrReservedNonZero - a reserved field is not all-zero
	ErrReservedNonZero = errors.New("reserved field not zero")
	// ErrInvalidEnum - device class, color space, primary platform or
	// rendering intent outside its enumerated set
	ErrInvalidEnum = errors.New("invalid enumerated value")
	// ErrInvalidConnectionSpace - non-PCS connection space on a
	// non-DeviceLink profile
	ErrInvalidConnectionSpace = errors.New("invalid profile connection space")
	// ErrInvalidDateTime - creation date/time out of range or not a real
	// calendar instant
	ErrInvalidDateTime = errors.New("invalid date/time")
	// ErrInvalidReferenceWhite - PCS illuminant does not round to D50
	ErrInvalidReferenceWhite = errors.New("invalid reference white")
	// ErrBoundsViolation - a tag data range falls outside the profile
	ErrBoundsViolation = errors.New("tag data out of bounds")
	// ErrDuplicateTag - a tag signature repeated in the tag table
	ErrDuplicateTag = errors.New("duplicate tag signature")
	// ErrDigestMismatch - the stored profile ID disagrees with the
	// computed one
	ErrDigestMismatch = errors.New("profile ID mismatch")
)

package utils

import "fmt"

// InvalidMetadataKeyError represents an error indicating that a metadata key
// contains a NUL byte and cannot cross the native boundary.
type InvalidMetadataKeyError struct {
}

// Error returns the error message for InvalidMetadataKeyError.
func (InvalidMetadataKeyError) Error() string {
	return "invalid metadata key"
}

// InvalidMetadataValueError represents an error indicating that a metadata
// value contains a NUL byte and cannot cross the native boundary.
type InvalidMetadataValueError struct {
}

// Error returns the error message for InvalidMetadataValueError.
func (InvalidMetadataValueError) Error() string {
	return "invalid metadata value"
}

// MetadataEncodingError represents an error indicating that metadata text
// returned from the native side is not valid UTF-8. The offending text is
// never substituted or truncated; the read fails instead.
type MetadataEncodingError struct {
	Key string
}

// Error returns the error message for MetadataEncodingError.
func (e MetadataEncodingError) Error() string {
	return fmt.Sprintf("metadata entry %q is not valid UTF-8", e.Key)
}

// NilFrameError represents an error indicating that a provided frame is nil.
type NilFrameError struct {
}

// Error returns the error message for NilFrameError.
func (NilFrameError) Error() string {
	return "nil frame"
}

// NativeError carries a negative status code reported by a native
// collaborator so callers can branch on it programmatically.
type NativeError struct {
	msg  string
	code int
}

// NewNativeError creates a NativeError from a message and a native status code.
func NewNativeError(msg string, code int) error {
	return &NativeError{msg: msg, code: code}
}

// Error returns the error message including the native status code.
func (e *NativeError) Error() string {
	return fmt.Sprintf("%s: code=%d", e.msg, e.code)
}

// Code returns the raw native status code.
func (e *NativeError) Code() int {
	return e.code
}

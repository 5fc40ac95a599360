package swf

import "errors"

// Sentinel errors returned by the decoding functions. Callers match them
// with errors.Is; returned errors usually wrap one of these with context.
var (
	// ErrTruncated indicates that a field extends past the end of its tag
	// or of the movie data.
	ErrTruncated = errors.New("swf: unexpected end of data")

	// ErrInvalidSignature indicates that the file does not start with
	// FWS, CWS or ZWS.
	ErrInvalidSignature = errors.New("swf: invalid signature")

	// ErrUnsupportedCompression indicates an LZMA (ZWS) compressed movie.
	ErrUnsupportedCompression = errors.New("swf: unsupported compression")

	// ErrTooLarge indicates that the declared uncompressed size exceeds the
	// configured limit.
	ErrTooLarge = errors.New("swf: movie exceeds size limit")

	// ErrInvalidData indicates a structurally invalid field value.
	ErrInvalidData = errors.New("swf: invalid data")

	// ErrUnknownEncoding indicates an unrecognised text encoding name.
	ErrUnknownEncoding = errors.New("swf: unknown text encoding")
)

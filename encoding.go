package swf

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// EncodingForVersion returns the text encoding SWF strings use for the
// given SWF version: the Windows ANSI code page before SWF 6, UTF-8 after.
func EncodingForVersion(version uint8) encoding.Encoding {
	if version < 6 {
		return charmap.Windows1252
	}
	return unicode.UTF8
}

// LookupEncoding resolves a WHATWG encoding label such as "shift_jis" or
// "windows-1251".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}
	return enc, nil
}

// DecodeString converts raw SWF string bytes to a Go string. Bytes that
// are invalid in enc become U+FFFD.
func DecodeString(enc encoding.Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if enc == unicode.UTF8 && utf8.Valid(b) {
		return string(b)
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

package swf

// Slice is a view of a byte range of a movie's tag stream. Slices are
// values; copying one never copies movie data.
type Slice struct {
	movie      *Movie
	start, end int
}

// NewSlice returns a slice covering the whole tag stream of m.
func NewSlice(m *Movie) Slice {
	return Slice{movie: m, end: len(m.data)}
}

// EmptySlice returns a zero-length slice of m.
func EmptySlice(m *Movie) Slice {
	return Slice{movie: m}
}

// Subslice returns the range [start, end) relative to s. A range outside s
// yields an empty slice.
func (s Slice) Subslice(start, end int) Slice {
	if start < 0 || start > end || s.start+end > s.end {
		return EmptySlice(s.movie)
	}
	return Slice{movie: s.movie, start: s.start + start, end: s.start + end}
}

// ResizeToReader returns the n bytes of s starting at the position of r.
// The reader must descend from ReadFrom on this slice (directly or through
// Sub); a range that falls outside s yields an empty slice.
func (s Slice) ResizeToReader(r *Reader, n int) Slice {
	return s.Subslice(r.Offset(), r.Offset()+n)
}

// ReadFrom returns a reader over s starting at pos. Offsets reported by
// the reader and the readers carved from it are relative to s.
func (s Slice) ReadFrom(pos int) *Reader {
	data := s.Data()
	pos = max(0, min(pos, len(data)))
	return &Reader{data: data[pos:], base: pos, version: s.Version()}
}

// Data returns the bytes covered by s.
func (s Slice) Data() []byte {
	if s.movie == nil {
		return nil
	}
	return s.movie.data[s.start:s.end]
}

// Len returns the length of s in bytes.
func (s Slice) Len() int { return s.end - s.start }

// Start returns the offset of s in the movie's tag stream.
func (s Slice) Start() int { return s.start }

// Version returns the SWF version of the owning movie.
func (s Slice) Version() uint8 {
	if s.movie == nil {
		return 0
	}
	return s.movie.header.Version
}

// Movie returns the owning movie.
func (s Slice) Movie() *Movie { return s.movie }

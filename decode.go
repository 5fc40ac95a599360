package swf

// ControlFlow tells DecodeTags whether to keep reading after a tag.
type ControlFlow uint8

const (
	// Continue proceeds with the next tag.
	Continue ControlFlow = iota

	// Exit stops decoding with the reader positioned after the current tag.
	Exit
)

// TagHandler processes one tag. The reader is bounded to the tag body and
// positioned at its start. Errors are logged by DecodeTags and never stop
// decoding of the following tags.
type TagHandler func(r *Reader, code TagCode, length int) (ControlFlow, error)

// DecodeTags reads tags from r until the data is exhausted or the handler
// returns Exit. Only tag codes the runtime knows are passed to the
// handler; the rest are skipped.
//
// A tag whose declared length runs past the end of the data truncates the
// stream: r is moved to the end and DecodeTags reports false. Otherwise it
// reports true. The returned error is reserved for failures of the reader
// itself and is currently always nil.
func DecodeTags(r *Reader, handler TagHandler) (bool, error) {
	for !r.Empty() {
		start := r.Pos()
		code, length, err := r.ReadTagHeader()
		if err != nil {
			Logger().Error("truncated tag header", "offset", start, "err", err)
			r.SeekEnd()
			return false, nil
		}
		if length > r.Len() {
			Logger().Error("tag length exceeds remaining data",
				"tag", code, "offset", start, "length", length, "remaining", r.Len())
			r.SeekEnd()
			return false, nil
		}

		body, _ := r.Sub(length)
		if !code.Known() {
			Logger().Debug("unknown tag", "tag", code, "offset", start, "length", length)
			continue
		}

		flow, err := handler(body, code, length)
		if err != nil {
			Logger().Error("error decoding tag", "tag", code, "offset", start, "err", err)
			continue
		}
		if flow == Exit {
			return true, nil
		}
	}
	return true, nil
}

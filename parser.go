package edf

// The top-level driver: an eager surface (Parse, ParseWithOptions) and
// a lazy surface (Iterate) layered over the same scanning machinery.

// Parse scans input with the fast preset (no comments, no positions)
// and returns every entry in source order.
func Parse(input []byte) []Entry {
	return ParseWithOptions(input, Fast())
}

// ParseWithOptions scans input under the given options and returns
// every entry in source order, draining an Iterator internally.
func ParseWithOptions(input []byte, opts ParseOptions) []Entry {
	it := Iterate(input, opts)
	var entries []Entry
	for {
		e, ok := it.Next()
		if !ok {
			return entries
		}
		entries = append(entries, e)
	}
}

// Iterator advances the scanner on demand and holds at most the
// entries produced by the current logical line (at most two: a value
// pair and its trailing inline comment) as auxiliary state.
type Iterator struct {
	s       *scanner
	opts    ParseOptions
	pending []Entry
	idx     int
}

// Iterate returns a lazy entry stream over input under opts. Dropping
// the iterator (simply no longer calling Next) releases all scanner
// resources immediately, since it holds no goroutine or external
// handle.
func Iterate(input []byte, opts ParseOptions) *Iterator {
	return &Iterator{s: newScanner(input, opts.TrackPositions), opts: opts}
}

// Next returns the next entry and true, or a zero Entry and false once
// the input is exhausted.
func (it *Iterator) Next() (Entry, bool) {
	for {
		if it.idx < len(it.pending) {
			e := it.pending[it.idx]
			it.idx++
			return e, true
		}
		if it.s.eof() {
			return Entry{}, false
		}
		it.pending = it.nextLineEntries()
		it.idx = 0
		if len(it.pending) == 0 {
			// Blank line: no entry, keep advancing.
			continue
		}
	}
}

// nextLineEntries validates the UTF-8 well-formedness of the upcoming
// logical line: its first physical line is checked before it is handed
// to parseLine, and any bytes parseLine consumed past that line (a
// continued value) are checked afterwards. A line terminator is
// always a bare '\n' or '\r' byte, which can never occur as a
// continuation or leading byte of a multi-byte UTF-8 sequence, so the
// line boundary itself can be found without first knowing whether the
// line's content is valid UTF-8.
func (it *Iterator) nextLineEntries() []Entry {
	s := it.s
	lineStart := s.pos
	j := 0
	for {
		b, ok := s.peek(j)
		if !ok || isLineTerminator(b) {
			break
		}
		j++
	}
	lineEnd := lineStart + j

	if off, reason, ok := validateUTF8(s.buf[lineStart:lineEnd]); !ok {
		absOffset := lineStart + off
		for s.pos < lineEnd {
			s.advance()
		}
		if !s.eof() {
			s.skipToNextLine()
		}
		traceRecovery(ErrInvalidUTF8, absOffset, reason)
		return []Entry{errorEntry(ErrInvalidUTF8, absOffset, reason)}
	}

	entries := parseLine(s, it.opts)
	if s.pos > lineEnd {
		if off, reason, ok := validateUTF8(s.buf[lineEnd:s.pos]); !ok {
			absOffset := lineEnd + off
			traceRecovery(ErrInvalidUTF8, absOffset, reason)
			return []Entry{errorEntry(ErrInvalidUTF8, absOffset, reason)}
		}
	}
	for i := range entries {
		if entries[i].Kind == EntryError {
			traceRecovery(entries[i].Err.Kind, entries[i].Err.Offset, entries[i].Err.Detail)
		}
	}
	return entries
}

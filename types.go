package edf

// Position is a zero-indexed (line, column, byte offset) triple into the
// source buffer. Columns count bytes within a line, not runes.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Less reports whether p sorts strictly before other. Positions are
// totally ordered by Offset.
func (p Position) Less(other Position) bool {
	return p.Offset < other.Offset
}

// Span is the half-open byte range [Start.Offset, End.Offset) of the source.
type Span struct {
	Start Position
	End   Position
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Slice returns the bytes of the span within buf. The caller must ensure
// buf is the same buffer the span was produced against.
func (s Span) Slice(buf []byte) []byte {
	return buf[s.Start.Offset:s.End.Offset]
}

// QuoteType describes how a value was delimited in the source.
type QuoteType int

const (
	// QuoteNone means the value was unquoted.
	QuoteNone QuoteType = iota
	// QuoteSingle means the value was delimited by single quotes.
	QuoteSingle
	// QuoteDouble means the value was delimited by double quotes.
	QuoteDouble
)

func (q QuoteType) String() string {
	switch q {
	case QuoteSingle:
		return "single"
	case QuoteDouble:
		return "double"
	default:
		return "none"
	}
}

// KeyValuePair is a single recognized KEY=VALUE assignment.
//
// Key and Value are Go strings copied out of the input buffer. Value is
// the source text between its delimiters, except where escape
// processing in a double-quoted value or a line continuation in an
// unquoted value rewrote it (see ValueOwned).
type KeyValuePair struct {
	Key   string
	Value string

	// ValueOwned is true when escape processing or a line continuation
	// rewrote Value, so that it is not the source text at ValueSpan.
	ValueOwned bool

	Quote QuoteType

	// IsExported is true iff the line began with "export" followed by
	// at least one horizontal whitespace byte.
	IsExported bool

	// IsComment is true iff this pair was recovered from within a
	// comment line ("# KEY=VALUE").
	IsComment bool

	// Position fields are present only when ParseOptions.TrackPositions
	// is set; otherwise they are the zero Position ({0,0,0}) and must
	// not be relied upon. HasPositions distinguishes the two cases.
	HasPositions  bool
	KeySpan       Span
	ValueSpan     Span
	EqualsPos     Position
	OpenQuotePos  Position
	CloseQuotePos Position
}

// EntryKind discriminates the tagged union carried by Entry.
type EntryKind int

const (
	EntryComment EntryKind = iota
	EntryPair
	EntryError
)

// Entry is one parse result from a logical line: a comment span, a
// key/value pair, or a recovered error. A line whose value is followed
// by an inline comment yields two entries, the pair and then the
// comment (the comment only when comments are included).
type Entry struct {
	Kind EntryKind

	// Comment is valid when Kind == EntryComment.
	Comment Span

	// Pair is valid when Kind == EntryPair.
	Pair KeyValuePair

	// Err is valid when Kind == EntryError.
	Err *ParseError
}

// ParseOptions selects two orthogonal parsing behaviors.
type ParseOptions struct {
	// IncludeComments, if true, emits Comment entries for plain comment
	// lines and Pair entries (with IsComment set) for commented-out
	// assignments. If false, both are suppressed.
	IncludeComments bool

	// TrackPositions, if true, populates the Span/Position fields of
	// emitted pairs. If false, those fields stay zero (HasPositions is
	// false). The scanner tracks positions internally either way: errors
	// always carry an offset and Comment entries always carry their span.
	TrackPositions bool
}

// Fast is the {false, false} preset: no comments, no positions.
func Fast() ParseOptions { return ParseOptions{IncludeComments: false, TrackPositions: false} }

// Full is the {true, true} preset: comments and positions both tracked.
func Full() ParseOptions { return ParseOptions{IncludeComments: true, TrackPositions: true} }

package edf

// Byte-class predicates and span-bounded slice extraction. This is the
// only part of the core that reads s.buf directly; the line parser and
// entry producer read exclusively through these methods. The scanner
// always operates over a fully materialized buffer: callers are
// expected to read their source into memory before parsing begins.

const bom0, bom1, bom2 = 0xEF, 0xBB, 0xBF

func isKeyStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isKeyCont(b byte) bool {
	return isKeyStart(b) || (b >= '0' && b <= '9')
}

func isHorizontalWS(b byte) bool {
	return b == ' ' || b == '\t'
}

func isLineTerminator(b byte) bool {
	return b == '\n' || b == '\r'
}

type scanner struct {
	buf            []byte
	pos            int
	trk            tracker
	trackPositions bool
}

// newScanner wraps buf for scanning. A leading UTF-8 BOM, if present,
// is consumed silently and does not advance line/column.
func newScanner(buf []byte, trackPositions bool) *scanner {
	s := &scanner{buf: buf, trackPositions: trackPositions}
	if len(buf) >= 3 && buf[0] == bom0 && buf[1] == bom1 && buf[2] == bom2 {
		s.pos = 3
		s.trk.offset = 3
	}
	return s
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.buf)
}

// peek returns the byte n bytes ahead of the cursor without advancing.
func (s *scanner) peek(n int) (byte, bool) {
	i := s.pos + n
	if i < 0 || i >= len(s.buf) {
		return 0, false
	}
	return s.buf[i], true
}

func (s *scanner) cur() (byte, bool) {
	return s.peek(0)
}

func (s *scanner) position() Position {
	return s.trk.position()
}

// bomAhead reports whether the UTF-8 BOM triple starts at the cursor.
// Used to detect a BOM occurring anywhere past the start of the input,
// which is always a defect rather than an encoding marker.
func (s *scanner) bomAhead() bool {
	b0, ok0 := s.peek(0)
	b1, ok1 := s.peek(1)
	b2, ok2 := s.peek(2)
	return ok0 && ok1 && ok2 && b0 == bom0 && b1 == bom1 && b2 == bom2
}

// advance consumes and returns the current byte.
func (s *scanner) advance() byte {
	b := s.buf[s.pos]
	s.pos++
	s.trk.advance(b)
	return b
}

// skipHorizontalWS consumes zero or more space/tab bytes.
func (s *scanner) skipHorizontalWS() {
	for {
		b, ok := s.cur()
		if !ok || !isHorizontalWS(b) {
			return
		}
		s.advance()
	}
}

// takeWhile consumes and returns a borrowed slice of bytes for which
// pred holds, stopping at EOF or the first byte that fails pred.
func (s *scanner) takeWhile(pred func(byte) bool) []byte {
	start := s.pos
	for {
		b, ok := s.cur()
		if !ok || !pred(b) {
			break
		}
		s.advance()
	}
	return s.buf[start:s.pos]
}

// skipToNextLine consumes bytes up to and including the next line
// terminator (CRLF treated as one), or to EOF. Used by the recovery
// path: after an Error entry is emitted, the scanner resynchronizes
// here before the next logical line is parsed.
func (s *scanner) skipToNextLine() {
	for {
		b, ok := s.cur()
		if !ok {
			return
		}
		if b == '\r' {
			s.advance()
			if nb, ok := s.cur(); ok && nb == '\n' {
				s.advance()
			}
			return
		}
		if b == '\n' {
			s.advance()
			return
		}
		s.advance()
	}
}

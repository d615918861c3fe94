package edf

// valueResult carries everything scanValue discovered about a single
// value, whichever of the three delimiting styles was used.
type valueResult struct {
	value        string
	owned        bool
	quote        QuoteType
	valueSpan    Span
	openQuotePos Position
	closeQuotePos Position

	// commentAhead is set only for an unquoted value that stopped
	// because horizontal whitespace followed by '#' was seen; the
	// caller is responsible for consuming that whitespace and comment.
	commentAhead bool

	// ok is meaningful only when scanValue was called with lenient
	// set; it is true unless the bytes did not form a clean value.
	ok bool
}

// scanValue scans a value in whichever of the three styles the current
// byte selects: unquoted, single-quoted, or double-quoted. In strict
// mode (lenient == false) malformed input produces a recoverable
// *Entry describing the defect. In lenient mode, used only when
// re-parsing a comment body as a possible commented-out assignment,
// malformed input never raises an error; it is reported back as
// ok == false so the caller can fall back to a plain Comment entry.
func scanValue(s *scanner, opts ParseOptions, lenient bool) (valueResult, *Entry) {
	b, ok := s.cur()
	switch {
	case ok && b == '\'':
		return scanSingleQuoted(s, lenient)
	case ok && b == '"':
		return scanDoubleQuoted(s, lenient)
	case ok && b == '=':
		if lenient {
			return valueResult{}, nil
		}
		off := s.position().Offset
		s.skipToNextLine()
		ent := errorEntry(ErrDoubleEquals, off, "")
		return valueResult{}, &ent
	case !ok || isLineTerminator(b):
		pos := s.position()
		if ok {
			s.skipToNextLine()
		}
		return valueResult{quote: QuoteNone, valueSpan: Span{Start: pos, End: pos}, ok: true}, nil
	default:
		return scanUnquoted(s, lenient)
	}
}

func scanSingleQuoted(s *scanner, lenient bool) (valueResult, *Entry) {
	openPos := s.position()
	s.advance()
	startPos := s.position()
	start := s.pos
	for {
		b, ok := s.cur()
		if !ok || isLineTerminator(b) {
			if lenient {
				return valueResult{}, nil
			}
			off := s.position().Offset
			s.skipToNextLine()
			ent := errorEntry(ErrUnclosedQuote, off, "single")
			return valueResult{}, &ent
		}
		if b == '\'' {
			break
		}
		s.advance()
	}
	endPos := s.position()
	value := string(s.buf[start:s.pos])
	closePos := s.position()
	s.advance() // closing quote
	return valueResult{
		value:         value,
		quote:         QuoteSingle,
		valueSpan:     Span{Start: startPos, End: endPos},
		openQuotePos:  openPos,
		closeQuotePos: closePos,
		ok:            true,
	}, nil
}

// isDoubleEscape reports whether b is one of the six bytes recognized
// after a backslash inside a double-quoted value.
func isDoubleEscape(b byte) bool {
	switch b {
	case 'n', 'r', 't', '\\', '"', '$':
		return true
	}
	return false
}

func doubleEscapeValue(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return b // '\\', '"', '$' map to themselves
	}
}

func scanDoubleQuoted(s *scanner, lenient bool) (valueResult, *Entry) {
	openPos := s.position()
	s.advance()
	startPos := s.position()
	valueStart := s.pos
	segStart := s.pos
	var owned []byte
	ownedFlag := false

	for {
		b, ok := s.cur()
		if !ok || isLineTerminator(b) {
			if lenient {
				return valueResult{}, nil
			}
			off := s.position().Offset
			s.skipToNextLine()
			ent := errorEntry(ErrUnclosedQuote, off, "double")
			return valueResult{}, &ent
		}
		if b == '"' {
			break
		}
		if b == '\\' {
			nb, nok := s.peek(1)
			if nok && isDoubleEscape(nb) {
				owned = append(owned, s.buf[segStart:s.pos]...)
				owned = append(owned, doubleEscapeValue(nb))
				s.advance()
				s.advance()
				ownedFlag = true
				segStart = s.pos
				continue
			}
			// Any other escape is preserved as the two literal bytes.
			s.advance()
			if nok {
				s.advance()
			}
			continue
		}
		s.advance()
	}
	endPos := s.position()

	var value string
	if ownedFlag {
		owned = append(owned, s.buf[segStart:s.pos]...)
		value = string(owned)
	} else {
		value = string(s.buf[valueStart:s.pos])
	}
	closePos := s.position()
	s.advance() // closing quote
	return valueResult{
		value:         value,
		owned:         ownedFlag,
		quote:         QuoteDouble,
		valueSpan:     Span{Start: startPos, End: endPos},
		openQuotePos:  openPos,
		closeQuotePos: closePos,
		ok:            true,
	}, nil
}

// scanUnquoted implements the Unquoted state: plain accumulation,
// trailing-backslash line continuation, and termination on an inline
// comment or end of line/input.
func scanUnquoted(s *scanner, lenient bool) (valueResult, *Entry) {
	startPos := s.position()
	startIdx := s.pos
	segStart := s.pos
	var owned []byte
	ownedFlag := false
	commentAhead := false

	for {
		b, ok := s.cur()
		if !ok {
			break
		}
		if b == '\\' {
			nb, nok := s.peek(1)
			if !nok {
				// Trailing backslash at true end of input: literal byte.
				s.advance()
				continue
			}
			if isLineTerminator(nb) {
				owned = append(owned, s.buf[segStart:s.pos]...)
				ownedFlag = true
				s.advance() // backslash
				tb, _ := s.cur()
				if tb == '\r' {
					s.advance()
					if tb2, ok2 := s.cur(); ok2 && tb2 == '\n' {
						s.advance()
					}
				} else if tb == '\n' {
					s.advance()
				}
				segStart = s.pos
				continue
			}
			// Not a continuation: both bytes are literal value content.
			s.advance()
			s.advance()
			continue
		}
		if isHorizontalWS(b) {
			j := 1
			for {
				pb, pok := s.peek(j)
				if !pok || !isHorizontalWS(pb) {
					break
				}
				j++
			}
			if hb, hok := s.peek(j); hok && hb == '#' {
				commentAhead = true
				break
			}
			s.advance()
			continue
		}
		if isLineTerminator(b) {
			break
		}
		s.advance()
	}
	endPos := s.position()

	var value string
	if ownedFlag {
		owned = append(owned, s.buf[segStart:s.pos]...)
		value = string(owned)
	} else {
		value = string(s.buf[startIdx:s.pos])
	}

	if !commentAhead {
		if _, ok := s.cur(); ok {
			s.skipToNextLine()
		}
	}

	return valueResult{
		value:        value,
		owned:        ownedFlag,
		quote:        QuoteNone,
		valueSpan:    Span{Start: startPos, End: endPos},
		commentAhead: commentAhead,
		ok:           true,
	}, nil
}

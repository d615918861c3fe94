package edf

// The per-line state machine. Each call to parseLine consumes exactly
// one logical line (including its terminator) and returns the entries
// it produced: zero for a blank line, one for a comment/pair/error, or
// two when an inline comment trails a value. Dispatch on the current
// byte picks which scan function handles the rest of the line.

func parseLine(s *scanner, opts ParseOptions) []Entry {
	s.skipHorizontalWS()

	if s.bomAhead() {
		off := s.position().Offset
		s.skipToNextLine()
		return []Entry{errorEntry(ErrInvalidBom, off, "")}
	}

	b, ok := s.cur()
	if !ok {
		return nil
	}
	if isLineTerminator(b) {
		s.skipToNextLine()
		return nil
	}
	if b == '#' {
		return parseFullLineComment(s, opts)
	}

	isExported := matchExportPrefix(s)

	if s.bomAhead() {
		off := s.position().Offset
		s.skipToNextLine()
		return []Entry{errorEntry(ErrInvalidBom, off, "")}
	}

	kb, kok := s.cur()
	if !kok || !isKeyStart(kb) {
		off := s.position().Offset
		s.skipToNextLine()
		return []Entry{errorEntry(ErrInvalidKey, off, "")}
	}

	keyStartPos := s.position()
	keyBytes := s.takeWhile(isKeyCont)
	keyEndPos := s.position()

	nb, nok := s.cur()
	switch {
	case nok && isHorizontalWS(nb):
		off := s.position().Offset
		s.skipToNextLine()
		return []Entry{errorEntry(ErrForbiddenWhitespace, off, "before_equals")}
	case nok && nb == '=':
		// fallthrough below
	default:
		off := s.position().Offset
		s.skipToNextLine()
		return []Entry{errorEntry(ErrInvalidKey, off, "")}
	}

	equalsPos := s.position()
	s.advance() // consume '='

	return finishAssignment(s, opts, isExported, string(keyBytes), keyStartPos, keyEndPos, equalsPos)
}

// matchExportPrefix recognizes the literal "export" followed by at
// least one horizontal-whitespace byte, consuming both on success.
// Leading whitespace before "export" is permitted; the caller already
// skipped it.
func matchExportPrefix(s *scanner) bool {
	const word = "export"
	for i := 0; i < len(word); i++ {
		b, ok := s.peek(i)
		if !ok || b != word[i] {
			return false
		}
	}
	nb, ok := s.peek(len(word))
	if !ok || !isHorizontalWS(nb) {
		return false
	}
	for range word {
		s.advance()
	}
	s.skipHorizontalWS()
	return true
}

// finishAssignment scans the value and whatever follows it for a real
// (non-comment-recovered) line: it has already consumed "KEY=" and
// now handles the rest of the line.
func finishAssignment(s *scanner, opts ParseOptions, isExported bool, key string, keyStart, keyEnd, equalsPos Position) []Entry {
	v, errEnt := scanValue(s, opts, false)
	if errEnt != nil {
		return []Entry{*errEnt}
	}

	pair := KeyValuePair{
		Key:        key,
		Value:      v.value,
		ValueOwned: v.owned,
		Quote:      v.quote,
		IsExported: isExported,
	}
	if opts.TrackPositions {
		pair.HasPositions = true
		pair.KeySpan = Span{Start: keyStart, End: keyEnd}
		pair.ValueSpan = v.valueSpan
		pair.EqualsPos = equalsPos
		pair.OpenQuotePos = v.openQuotePos
		pair.CloseQuotePos = v.closeQuotePos
	}
	pairEntry := Entry{Kind: EntryPair, Pair: pair}

	if v.commentAhead {
		s.skipHorizontalWS()
		commentEntry, errEnt2 := consumeInlineComment(s, opts)
		if errEnt2 != nil {
			// unreachable for inline comments: consumeInlineComment never errors.
			return []Entry{*errEnt2}
		}
		if commentEntry != nil {
			return []Entry{pairEntry, *commentEntry}
		}
		return []Entry{pairEntry}
	}

	if v.quote != QuoteNone {
		// After a closing quote, only trailing whitespace, a '#' comment,
		// or the end of the line/input may follow.
		for {
			b, ok := s.cur()
			if !ok {
				return []Entry{pairEntry}
			}
			if isLineTerminator(b) {
				s.skipToNextLine()
				return []Entry{pairEntry}
			}
			if isHorizontalWS(b) {
				s.advance()
				continue
			}
			if b == '#' {
				commentEntry, _ := consumeInlineComment(s, opts)
				if commentEntry != nil {
					return []Entry{pairEntry, *commentEntry}
				}
				return []Entry{pairEntry}
			}
			off := s.position().Offset
			s.skipToNextLine()
			return []Entry{errorEntry(ErrExpected, off, "end of line or comment")}
		}
	}

	// Unquoted value already consumed its own terminator/EOF in scanValue.
	return []Entry{pairEntry}
}

// consumeInlineComment consumes a '#' already confirmed present and
// everything up to the line terminator, returning a Comment entry iff
// opts.IncludeComments. Inline comments are never re-parsed as pairs;
// only a full-line leading comment is eligible for that.
func consumeInlineComment(s *scanner, opts ParseOptions) (*Entry, *ParseError) {
	startPos := s.position()
	s.advance() // consume '#'
	for {
		b, ok := s.cur()
		if !ok || isLineTerminator(b) {
			break
		}
		s.advance()
	}
	endPos := s.position()
	if !s.eof() {
		s.skipToNextLine()
	}
	if !opts.IncludeComments {
		return nil, nil
	}
	ent := Entry{Kind: EntryComment, Comment: Span{Start: startPos, End: endPos}}
	return &ent, nil
}

// parseFullLineComment handles a line whose first non-whitespace byte
// is '#'. If the body (after '#' and optional horizontal whitespace)
// itself parses cleanly as a KEY=VALUE assignment, a Pair entry with
// IsComment=true replaces the Comment entry. Suppressed entirely, in
// both forms, when !opts.IncludeComments.
func parseFullLineComment(s *scanner, opts ParseOptions) []Entry {
	hashPos := s.position()
	s.advance() // consume '#'
	bodyStart := s.pos
	bodyStartPos := s.position()

	for {
		b, ok := s.cur()
		if !ok || isLineTerminator(b) {
			break
		}
		// Errors within comments are suppressed: a BOM appearing inside
		// a comment body is not flagged here.
		s.advance()
	}
	bodyEnd := s.pos
	endPos := s.position()

	if !s.eof() {
		s.skipToNextLine()
	}

	if !opts.IncludeComments {
		return nil
	}

	if kv, ok := tryParseCommentedAssignment(s.buf, bodyStart, bodyEnd, bodyStartPos, s.trackPositions); ok {
		return []Entry{{Kind: EntryPair, Pair: kv}}
	}

	return []Entry{{Kind: EntryComment, Comment: Span{Start: hashPos, End: endPos}}}
}

// tryParseCommentedAssignment attempts to parse buf[bodyStart:bodyEnd]
// (the text of a comment, after '#') as a standalone KEY=VALUE
// assignment. It never reports an error: any defect simply yields
// ok==false, leaving the caller to fall back to a plain Comment.
func tryParseCommentedAssignment(buf []byte, bodyStart, bodyEnd int, bodyStartPos Position, trackPositions bool) (KeyValuePair, bool) {
	sub := &scanner{
		buf:            buf[:bodyEnd],
		pos:            bodyStart,
		trackPositions: trackPositions,
		trk: tracker{
			line:   bodyStartPos.Line,
			column: bodyStartPos.Column,
			offset: bodyStartPos.Offset,
		},
	}
	sub.skipHorizontalWS()

	isExported := matchExportPrefix(sub)

	b, ok := sub.cur()
	if !ok || !isKeyStart(b) {
		return KeyValuePair{}, false
	}
	keyStart := sub.position()
	keyBytes := sub.takeWhile(isKeyCont)
	keyEnd := sub.position()

	nb, nok := sub.cur()
	if !nok || nb != '=' {
		return KeyValuePair{}, false
	}
	equalsPos := sub.position()
	sub.advance()

	v, errEnt := scanValue(sub, ParseOptions{}, true)
	if errEnt != nil || !v.ok {
		return KeyValuePair{}, false
	}

	// Only trailing horizontal whitespace may follow the value; the
	// body never contains a line terminator since bodyEnd excludes it.
	for {
		b2, ok2 := sub.cur()
		if !ok2 {
			break
		}
		if !isHorizontalWS(b2) {
			return KeyValuePair{}, false
		}
		sub.advance()
	}

	kv := KeyValuePair{
		Key:        string(keyBytes),
		Value:      v.value,
		ValueOwned: v.owned,
		Quote:      v.quote,
		IsExported: isExported,
		IsComment:  true,
	}
	if trackPositions {
		kv.HasPositions = true
		kv.KeySpan = Span{Start: keyStart, End: keyEnd}
		kv.ValueSpan = v.valueSpan
		kv.EqualsPos = equalsPos
		kv.OpenQuotePos = v.openQuotePos
		kv.CloseQuotePos = v.closeQuotePos
	}
	return kv, true
}

func errorEntry(kind ErrorKind, offset int, detail string) Entry {
	return Entry{Kind: EntryError, Err: newError(kind, offset, detail)}
}

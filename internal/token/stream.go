package token

// Stream is a cursor over an already-scanned token slice. The parser consumes
// tokens through it so that lexing can be completed (and gated on lexical
// errors) before parsing starts.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream wraps a token slice. The slice is expected to end with an EOF
// token; Peek and Next synthesize one if it does not.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() Token {
	if s.pos >= len(s.toks) {
		return s.eof()
	}
	return s.toks[s.pos]
}

// Next consumes and returns the next token. After the end it keeps
// returning EOF.
func (s *Stream) Next() Token {
	if s.pos >= len(s.toks) {
		return s.eof()
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func (s *Stream) eof() Token {
	if n := len(s.toks); n > 0 && s.toks[n-1].Kind == EOF {
		return s.toks[n-1]
	}
	return Token{Kind: EOF}
}

// Synthesized reports whether the stream has run past a slice that never
// carried a terminating EOF token. The lexer always terminates its output,
// so a synthesized EOF means the caller broke that contract.
func (s *Stream) Synthesized() bool {
	if s.pos < len(s.toks) {
		return false
	}
	n := len(s.toks)
	return n == 0 || s.toks[n-1].Kind != EOF
}

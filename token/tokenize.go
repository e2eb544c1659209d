package token

import (
	"unicode"
	"unicode/utf8"
)

type scanner struct {
	src  string
	i    int
	line int
	col  int
}

func (s *scanner) pos() Pos {
	return Pos{I: s.i, Line: s.line, Col: s.col}
}

func (s *scanner) peek() (rune, int) {
	return utf8.DecodeRuneInString(s.src[s.i:])
}

func (s *scanner) advance(r rune, w int) {
	s.i += w
	if r == '\n' {
		s.line++
		s.col = 0
		return
	}
	s.col++
}

func isRunDelim(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// Tokenize scans src into tokens.  It never fails.
func Tokenize(src string, opts ...TokenOpt) []Token {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	s := &scanner{src: src}
	var res []Token
	for s.i < len(s.src) {
		r, w := s.peek()
		switch {
		case unicode.IsSpace(r):
			s.advance(r, w)
		case r == '(':
			res = append(res, Token{Type: TLParen, Pos: s.pos()})
			s.advance(r, w)
		case r == ')':
			res = append(res, Token{Type: TRParen, Pos: s.pos()})
			s.advance(r, w)
		default:
			afterOpen := len(res) > 0 && res[len(res)-1].Type == TLParen
			res = s.run(res, afterOpen && !o.noCompactBinders)
		}
	}
	return res
}

// run consumes a maximal run of non-space, non-paren runes.
func (s *scanner) run(dst []Token, compact bool) []Token {
	start := s.pos()
	var split Pos
	n := 0
	for s.i < len(s.src) {
		r, w := s.peek()
		if isRunDelim(r) {
			break
		}
		s.advance(r, w)
		n++
		if n == 1 {
			split = s.pos()
		}
	}
	text := s.src[start.I:s.i]
	if tt, ok := markers[text]; ok {
		return append(dst, Token{Type: tt, Pos: start})
	}
	if compact && n > 1 && (text[0] == 'V' || text[0] == 'E') {
		dst = append(dst, Token{Type: markers[text[:1]], Pos: start})
		return append(dst, Token{Type: TSymbol, Name: text[1:], Pos: split})
	}
	return append(dst, Token{Type: TSymbol, Name: text, Pos: start})
}

package scanner

import "strings"

// scanner holds the state of one left-to-right pass over the input.
type scanner struct {
	src    []rune
	pos    int
	line   int
	tokens []Token
	errs   ErrorList
}

// Scan converts text into tokens. Scanning continues past errors so that
// every problem in the input is reported at once; when any error occurred
// the returned error is an ErrorList and the tokens are nil. The token slice
// always ends with an EndOfFile token.
func Scan(text string) ([]Token, error) {
	s := &scanner{src: []rune(text), line: 1}
	s.run()
	if len(s.errs) > 0 {
		return nil, s.errs
	}
	return s.tokens, nil
}

func (s *scanner) hasMore() bool {
	return s.pos < len(s.src)
}

func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

// peekAt returns the rune offset runes ahead of the cursor, or 0 past the end.
func (s *scanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

// match consumes the next rune if it equals want.
func (s *scanner) match(want rune) bool {
	if !s.hasMore() || s.src[s.pos] != want {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) addToken(kind TokenKind) {
	s.tokens = append(s.tokens, Token{Kind: kind, Line: s.line})
}

func (s *scanner) addError(msg string) {
	s.errs = append(s.errs, &Error{Line: s.line, Msg: msg})
}

func (s *scanner) run() {
	for s.hasMore() {
		ch := s.advance()
		switch ch {
		case ' ':
		case '\r':
			// Always paired with the following \n.
		case '\n':
			s.addToken(NewLine)
			s.line++
		case '!':
			s.addToken(Not)
		case '(':
			s.addToken(StartParen)
		case ')':
			s.addToken(EndParen)
		case '-':
			if s.match('>') {
				s.addToken(Conditional)
			} else {
				s.addError("Expecting > after -")
			}
		case '=':
			if s.match('>') {
				s.addToken(Conditional)
			} else {
				s.addError("Expecting > after =")
			}
		case '<':
			next := s.peekAt(0)
			if (next == '-' || next == '=') && s.peekAt(1) == '>' {
				s.pos += 2
				s.addToken(Biconditional)
			} else {
				s.addError("Expecting -> or => after <")
			}
		default:
			if isLetter(ch) {
				s.scanWord(ch)
			} else {
				s.addError("Unknown token: " + string(ch))
			}
		}
	}
	s.addToken(EndOfFile)
}

// scanWord consumes a greedy run of letters starting with first.
func (s *scanner) scanWord(first rune) {
	var b strings.Builder
	b.WriteRune(first)
	for s.hasMore() && isLetter(s.src[s.pos]) {
		b.WriteRune(s.advance())
	}
	word := b.String()

	if len(word) == 1 && isLower(first) {
		s.tokens = append(s.tokens, Token{Kind: Variable, Lexeme: word, Line: s.line})
		return
	}

	switch word {
	case "T":
		s.addToken(TrueLiteral)
	case "F":
		s.addToken(FalseLiteral)
	case "AND":
		s.addToken(And)
	case "OR":
		s.addToken(Or)
	default:
		msg := "Unknown identifier '" + word + "'"
		if kw := suggestKeyword(word); kw != "" {
			msg += ". Did you mean '" + kw + "'?"
		}
		s.addError(msg)
	}
}

func isLetter(r rune) bool {
	return isLower(r) || ('A' <= r && r <= 'Z')
}

func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

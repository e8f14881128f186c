package calclang

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type Tokenizer struct {
	source  *Source
	current *Token

	offset  int
	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

var _ TokenStream = new(Tokenizer)

func (t *Tokenizer) readRune() (rune, bool) {
	if t.offset >= len(t.source.Content) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.source.Content[t.offset:])
	t.offset += size

	t.prevPos = t.currPos
	t.currPos.Offset++
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, true
}

func (t *Tokenizer) unreadRune(r rune) {
	t.offset -= utf8.RuneLen(r)
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	if t.current != nil && t.current.Kind == TokenEOF {
		// terminal state, keep emitting EOF
		return
	}
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, ok := t.readRune()
	if !ok {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}

	switch {
	case unicode.IsDigit(r):
		t.unreadRune(r)
		return t.parseNumber()
	case isLetter(r):
		t.unreadRune(r)
		return t.parseIdentifier()
	}

	if kind, ok := operatorKinds[r]; ok {
		return &Token{
			Kind: kind,
			Text: string(r),
			Pos:  startPos,
		}, nil
	}

	return nil, WithPos(&LexError{Rune: r}, startPos)
}

var operatorKinds = map[rune]TokenKind{
	'=': TokenAssign,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
	';': TokenSemicolon,
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.readRune()
		if !ok {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune(r)
			return
		}
	}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	startPos := t.currPos
	start := t.offset
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if !unicode.IsDigit(r) {
			t.unreadRune(r)
			break
		}
	}
	text := t.source.Content[start:t.offset]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, WithPos(err, startPos)
	}
	return &Token{
		Kind:  TokenNumber,
		Text:  text,
		Value: value,
		Pos:   startPos,
	}, nil
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	start := t.offset
	for {
		r, ok := t.readRune()
		if !ok {
			break
		}
		if !isLetter(r) && !unicode.IsDigit(r) && r != '_' {
			t.unreadRune(r)
			break
		}
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: t.source.Content[start:t.offset],
		Pos:  startPos,
	}, nil
}

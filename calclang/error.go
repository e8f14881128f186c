package calclang

import (
	"errors"
	"fmt"
	"strings"
)

type LexError struct {
	Rune rune
}

func (l *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q", l.Rune)
}

type SyntaxError struct {
	Expected TokenKind
	Actual   TokenKind
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, got %s", s.Expected, s.Actual)
}

type UndefinedVariableError struct {
	Name string
}

func (u *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", u.Name)
}

var ErrEmptyProgram = errors.New("empty program")

var ErrNestingTooDeep = errors.New("expression nesting too deep")

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return fmt.Sprintf("%s at offset %d", p.Err.Error(), p.Pos.Offset)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))

	// Line content
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		runes := []rune(line)
		col := p.Pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

package calclang

// DefaultMaxDepth bounds parenthesis nesting so adversarial input cannot
// exhaust the goroutine stack.
const DefaultMaxDepth = 1000

type Parser struct {
	stream TokenStream
	curr   *Token
	next   *Token

	MaxDepth int
}

func NewParser(stream TokenStream) *Parser {
	return &Parser{
		stream:   stream,
		MaxDepth: DefaultMaxDepth,
	}
}

func Parse(source *Source) (*Program, error) {
	return NewParser(NewTokenizer(source)).ParseProgram()
}

// init fills the two-token lookahead buffer.
func (p *Parser) init() error {
	if err := p.advance(); err != nil {
		return err
	}
	return p.advance()
}

func (p *Parser) advance() error {
	p.curr = p.next
	token, err := p.stream.Current()
	if err != nil {
		return err
	}
	p.stream.Consume()
	p.next = token
	return nil
}

func (p *Parser) expect(kind TokenKind) (*Token, error) {
	if p.curr.Kind != kind {
		return nil, WithPos(&SyntaxError{
			Expected: kind,
			Actual:   p.curr.Kind,
		}, p.curr.Pos)
	}
	token := p.curr
	if err := p.advance(); err != nil {
		return nil, err
	}
	return token, nil
}

func (p *Parser) ParseProgram() (*Program, error) {
	if err := p.init(); err != nil {
		return nil, err
	}

	prog := &Program{
		Pos: p.curr.Pos,
	}
	for p.curr.Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		if p.curr.Kind != TokenSemicolon {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) parseStatement() (Node, error) {
	// One token of extra lookahead tells assignment and expression apart:
	// `x = 1` starts with the same token as `x + 1`.
	if p.curr.Kind == TokenIdentifier && p.next.Kind == TokenAssign {
		return p.parseAssign()
	}
	return p.parseExpr(0)
}

func (p *Parser) parseAssign() (Node, error) {
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &Assign{
		Name:  name.Text,
		Value: value,
		Pos:   name.Pos,
	}, nil
}

func (p *Parser) parseExpr(depth int) (Node, error) {
	lhs, err := p.parseTerm(depth)
	if err != nil {
		return nil, err
	}

	for p.curr.Kind == TokenPlus || p.curr.Kind == TokenMinus {
		op := OpAdd
		if p.curr.Kind == TokenMinus {
			op = OpSub
		}
		pos := p.curr.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm(depth)
		if err != nil {
			return nil, err
		}
		lhs = &Binary{
			Op:    op,
			Left:  lhs,
			Right: rhs,
			Pos:   pos,
		}
	}
	return lhs, nil
}

func (p *Parser) parseTerm(depth int) (Node, error) {
	lhs, err := p.parseFactor(depth)
	if err != nil {
		return nil, err
	}

	for p.curr.Kind == TokenStar || p.curr.Kind == TokenSlash {
		op := OpMul
		if p.curr.Kind == TokenSlash {
			op = OpDiv
		}
		pos := p.curr.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseFactor(depth)
		if err != nil {
			return nil, err
		}
		lhs = &Binary{
			Op:    op,
			Left:  lhs,
			Right: rhs,
			Pos:   pos,
		}
	}
	return lhs, nil
}

func (p *Parser) parseFactor(depth int) (Node, error) {
	switch p.curr.Kind {

	case TokenNumber:
		token := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberLit{
			Value: token.Value,
			Pos:   token.Pos,
		}, nil

	case TokenIdentifier:
		token := p.curr
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &VariableRef{
			Name: token.Text,
			Pos:  token.Pos,
		}, nil

	case TokenLParen:
		if depth >= p.MaxDepth {
			return nil, WithPos(ErrNestingTooDeep, p.curr.Pos)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, WithPos(&SyntaxError{
		Expected: TokenNumber,
		Actual:   p.curr.Kind,
	}, p.curr.Pos)
}

package calclang

type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
	Pos   Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenIdentifier
	TokenAssign
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenSemicolon
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenAssign:
		return "'='"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenSemicolon:
		return "';'"
	case TokenEOF:
		return "end of input"
	}
	return "invalid token"
}

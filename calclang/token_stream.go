package calclang

type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

// Tokens drains a stream up to and excluding the EOF token.
func Tokens(stream TokenStream) ([]*Token, error) {
	var tokens []*Token
	for {
		token, err := stream.Current()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, token)
		stream.Consume()
	}
}

package parser

import (
	"io"
	"iter"
)

// All returns an iterator over the tokens that have not been read yet. When
// the loop ends, Err reports whether the input failed.
func (p *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := p.ReadNextToken()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize reads every token from r with the default settings.
func Tokenize(r io.Reader) ([]Token, error) {
	p := NewTokenizer(r)
	var tokens []Token
	for tok := range p.All() {
		tokens = append(tokens, tok)
	}
	return tokens, p.Err()
}

package frontend

import "github.com/you-not-fish/tinyc/internal/syntax"

// TokenInfo is one scanned token.
type TokenInfo struct {
	Pos  syntax.Pos
	Kind syntax.Token
	Lit  string
}

// Scan returns every token of src, ending with EOF. Error tokens are
// included; scanning does not stop at them.
func Scan(filename string, src []byte) []TokenInfo {
	s := syntax.NewScanner(filename, src)
	var toks []TokenInfo
	for {
		s.Next()
		toks = append(toks, TokenInfo{Pos: s.Pos(), Kind: s.Token(), Lit: s.Literal()})
		if s.Token().IsEOF() {
			return toks
		}
	}
}

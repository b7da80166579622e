package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 14}
	assert.Equal(t, "3:14", p.String())
}

func TestZeroTokenIsZero(t *testing.T) {
	var tok Token
	assert.True(t, tok.Zero())
}

func TestTokenWithFieldsIsNotZero(t *testing.T) {
	tok := Token{Kind: Ident, Lexeme: "x", Pos: Position{Line: 1, Column: 1}}
	assert.False(t, tok.Zero())
}

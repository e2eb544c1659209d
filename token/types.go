package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TForall
	TExists
	TAnd
	TOr
	TNot
	TEqual
	TSymbol
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen: "TLParen",
		TRParen: "TRParen",
		TForall: "TForall",
		TExists: "TExists",
		TAnd:    "TAnd",
		TOr:     "TOr",
		TNot:    "TNot",
		TEqual:  "TEqual",
		TSymbol: "TSymbol",
	}[t]
}

// Lexeme returns the source text of a marker token type.
func (t TokenType) Lexeme() string {
	return map[TokenType]string{
		TLParen: "(",
		TRParen: ")",
		TForall: "V",
		TExists: "E",
		TAnd:    "^",
		TOr:     "v",
		TNot:    "~",
		TEqual:  "=",
	}[t]
}

// IsMarker reports whether t is one of the six reserved logical markers.
func (t TokenType) IsMarker() bool {
	switch t {
	case TForall, TExists, TAnd, TOr, TNot, TEqual:
		return true
	}
	return false
}

var markers = map[string]TokenType{
	"V": TForall,
	"E": TExists,
	"^": TAnd,
	"v": TOr,
	"~": TNot,
	"=": TEqual,
}

type Token struct {
	Type TokenType
	Name string
	Pos  Pos
}

// Mark returns a token of marker or paren type t without position.
func Mark(t TokenType) Token {
	return Token{Type: t}
}

// Symbol returns a symbol token without position.
func Symbol(name string) Token {
	return Token{Type: TSymbol, Name: name}
}

// Equal compares tokens structurally, ignoring positions.
func (t Token) Equal(o Token) bool {
	return t.Type == o.Type && t.Name == o.Name
}

// Text returns the source text of the token.
func (t Token) Text() string {
	if t.Type == TSymbol {
		return t.Name
	}
	return t.Type.Lexeme()
}

func (t Token) String() string {
	if t.Type == TSymbol {
		return fmt.Sprintf("Symbol(%q)", t.Name)
	}
	return t.Type.String()
}

package main

import (
	"context"

	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenVariable,
	protocol.SemanticTokenParameter,
	protocol.SemanticTokenFunction,
	protocol.SemanticTokenProperty,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

func semanticType(r role) (uint32, bool) {
	switch r.kind {
	case roleMarker:
		return 0, true
	case roleParen:
		return 1, true
	case roleFree:
		return 2, true
	case roleBound, roleBinder:
		return 3, true
	case roleFunc:
		return 4, true
	case rolePred:
		return 5, true
	}
	return 0, false
}

// collectSemanticTokens encodes the roles of doc's tokens relative to one
// another as the protocol requires.
func collectSemanticTokens(doc *document) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for i, t := range doc.toks {
		r := doc.roles[i]
		tt, ok := semanticType(r)
		if !ok {
			continue
		}
		line, char := uint32(t.Pos.Line), uint32(t.Pos.Col)
		deltaChar := char
		if line == prevLine {
			deltaChar = char - prevChar
		}
		var mods uint32
		if r.kind == roleBinder {
			mods = 1
		}
		data = append(data, line-prevLine, deltaChar, uint32(len([]rune(t.Text()))), tt, mods)
		prevLine, prevChar = line, char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	return s.SemanticTokensFull(ctx, &protocol.SemanticTokensParams{TextDocument: params.TextDocument})
}

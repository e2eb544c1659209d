package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	i, ok := tokenAt(doc, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	text := hoverText(doc.roles[i])
	if text == "" {
		return nil, nil
	}
	t := doc.toks[i]
	r := posRange(t.Pos, len([]rune(t.Text())))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &r,
	}, nil
}

var markerDocs = map[string]string{
	"V": "**forall** `(V x φ)`: φ holds for every element x of the domain",
	"E": "**exists** `(E x φ)`: φ holds for some element x of the domain",
	"^": "**and** `(^ φ ψ)`",
	"v": "**or** `(v φ ψ)`",
	"~": "**not** `(~ φ)`",
	"=": "**equal** `(= s t)`: s and t denote the same element",
}

func hoverText(r role) string {
	switch r.kind {
	case roleMarker:
		return markerDocs[r.name]
	case roleFree:
		return fmt.Sprintf("**variable** `%s` (free)", r.name)
	case roleBound:
		line, col := r.binder.LineCol()
		return fmt.Sprintf("**variable** `%s` (bound at line %d, col %d)", r.name, line+1, col+1)
	case roleBinder:
		return fmt.Sprintf("**variable** `%s` (binder)", r.name)
	case roleFunc:
		return fmt.Sprintf("**function** `%s/%d`", r.name, r.arity)
	case rolePred:
		return fmt.Sprintf("**predicate** `%s/%d`", r.name, r.arity)
	}
	return ""
}

package main

import (
	"context"
	"slices"

	"github.com/signadot/fol/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: completions(doc)}, nil
}

// completions offers the markers and every symbol known from doc.
func completions(doc *document) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, m := range []string{"V", "E", "^", "v", "~", "="} {
		items = append(items, protocol.CompletionItem{
			Label:  m,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: markerDocs[m],
		})
	}
	funcs, preds, vars := ir.NewSymbolSet(), ir.NewSymbolSet(), ir.NewVarSet()
	var names []string
	for _, r := range doc.roles {
		switch r.kind {
		case roleFunc:
			funcs.Add(ir.Symbol{Name: r.name, Arity: r.arity})
		case rolePred:
			preds.Add(ir.Symbol{Name: r.name, Arity: r.arity})
		case roleFree, roleBound, roleBinder:
			vars.Add(r.name)
		case roleSymbol:
			names = append(names, r.name)
		}
	}
	for _, sym := range funcs.Sorted() {
		items = append(items, protocol.CompletionItem{
			Label:  sym.Name,
			Kind:   protocol.CompletionItemKindFunction,
			Detail: "function " + sym.String(),
		})
	}
	for _, sym := range preds.Sorted() {
		items = append(items, protocol.CompletionItem{
			Label:  sym.Name,
			Kind:   protocol.CompletionItemKindProperty,
			Detail: "predicate " + sym.String(),
		})
	}
	for _, v := range vars.Sorted() {
		items = append(items, protocol.CompletionItem{
			Label: v,
			Kind:  protocol.CompletionItemKindVariable,
		})
	}
	// unparsed documents still offer the symbols they contain
	slices.Sort(names)
	for _, n := range slices.Compact(names) {
		items = append(items, protocol.CompletionItem{
			Label: n,
			Kind:  protocol.CompletionItemKindText,
		})
	}
	return items
}

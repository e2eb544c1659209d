package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/parse"
	"github.com/signadot/fol/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	toks      []token.Token
	formulas  []ir.Formula
	positions map[ir.Node]token.Pos
	err       error
	warnings  []error
	roles     map[int]role
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		toks:      token.Tokenize(content),
		positions: map[ir.Node]token.Pos{},
	}
	doc.formulas, doc.err = parse.ParseMulti(doc.toks,
		parse.ParsePositions(doc.positions),
		parse.ParseWarnings(&doc.warnings))
	doc.roles = classify(doc)
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: validateDocument(doc),
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   lsName,
		}
		var pe *parse.Error
		if errors.As(doc.err, &pe) {
			d.Range = posRange(pe.Pos, 1)
		}
		return append(diagnostics, d)
	}
	for _, w := range doc.warnings {
		var pe *parse.Error
		if !errors.As(w, &pe) {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    posRange(pe.Pos, 1),
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  w.Error(),
			Source:   lsName,
		})
	}
	for _, f := range doc.formulas {
		err := ir.SignatureOf(f).Check()
		if err == nil {
			continue
		}
		errs := []error{err}
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = joined.Unwrap()
		}
		for _, e := range errs {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    posRange(doc.positions[f], 1),
				Severity: protocol.DiagnosticSeverityWarning,
				Message:  e.Error(),
				Source:   lsName,
			})
		}
	}
	return diagnostics
}

func posRange(p token.Pos, n int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(p.Line), Character: uint32(p.Col)},
		End:   protocol.Position{Line: uint32(p.Line), Character: uint32(p.Col + n)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			content = change.Text
			continue
		}
		runes := []rune(content)
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(runes) {
			content = string(runes[:start]) + change.Text + string(runes[end:])
		}
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset gives the rune offset of a line and column in content.
func lineColToOffset(content string, line, col int) int {
	currentLine, currentCol, i := 0, 0, 0
	for _, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
		i++
	}
	return i
}

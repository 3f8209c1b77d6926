package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lpp/internal/parser"
	"lpp/internal/source"
	"lpp/token"
)

// SemanticTokenTypes is the legend advertised to clients. Token type
// indexes in semantic token data point into it.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"parameter",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

var log = commonlog.GetLogger("lpp.lsp")

// document is the server's copy of an open editor buffer.
type document struct {
	src source.Source
	res *parser.Result
}

// Handler serves lpp documents over LSP. Documents are kept in memory with
// full text sync.
type Handler struct {
	name    string
	version string

	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

func NewHandler(name, version string) *Handler {
	return &Handler{
		name:    name,
		version: version,
		docs:    make(map[protocol.DocumentUri]*document),
	}
}

// Initialize advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    h.name,
			Version: &h.version,
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	log.Infof("trace set to %s", params.Value)
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened %s", uri)

	h.update(ctx, uri, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange replaces the document with the last full-text
// change in params.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("changed %s", uri)

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-text change for %s", uri)
	}
	h.update(ctx, uri, text)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	// Clear whatever the editor still shows for the closed buffer.
	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the language keywords.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &kind})
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

// TextDocumentSemanticTokensFull classifies every token of an open document.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, ok := h.document(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(collectSemanticTokens(doc.src, doc.res))}, nil
}

func (h *Handler) document(uri protocol.DocumentUri) (*document, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.docs[uri]
	return doc, ok
}

// update reparses text, stores it under uri and publishes its diagnostics.
func (h *Handler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	src := source.String(text)
	res := parser.ParseSource(src)

	h.mu.Lock()
	h.docs[uri] = &document{src: src, res: res}
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, convertDiagnostics(src, res))
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch c := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		case *protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		}
	}
	return "", false
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

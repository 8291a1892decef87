package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mnlang/internal/ast"
	"mnlang/internal/parser"
	"mnlang/token"
)

// Define the set of supported semantic token types (advertised in the legend)
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

var log = commonlog.GetLogger("mnlang.lsp")

// Handler implements the LSP server handlers. Documents live in memory:
// the client sends full text on open and on every change.
type Handler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	results map[protocol.DocumentUri]*parser.ParseResult
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[protocol.DocumentUri]string),
		results: make(map[protocol.DocumentUri]*parser.ParseResult),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
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
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	diagnostics := h.update(params.TextDocument.URI, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange applies the changes in order and re-parses the document
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := h.content[uri]
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		case *protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, *c)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	diagnostics := h.update(uri, text)
	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	delete(h.results, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the keywords plus every name bound in the document
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	result, ok := h.result(params.TextDocument.URI)

	items := make([]protocol.CompletionItem, 0, len(token.Keywords()))
	for _, kw := range token.Keywords() {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	if ok {
		bindings := collectBindings(result.Program)
		names := make([]string, 0, len(bindings))
		for name := range bindings {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			kind := protocol.CompletionItemKindVariable
			if bindings[name] == "function" {
				kind = protocol.CompletionItemKindFunction
			}
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   ptrCompletionKind(kind),
				Detail: ptrString(bindings[name]),
			})
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	result, ok := h.result(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document %s is not open", params.TextDocument.URI)
	}

	tokens := collectSemanticTokens(result.Source, result.Program)

	data := []uint32{}
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *Handler) result(uri protocol.DocumentUri) (*parser.ParseResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result, ok := h.results[uri]
	return result, ok
}

func (h *Handler) update(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	filename, err := uriToPath(uri)
	if err != nil {
		log.Warningf("%s", err)
		filename = uri
	}

	result := parser.ParseSource(filename, text)

	h.mu.Lock()
	h.content[uri] = text
	h.results[uri] = result
	h.mu.Unlock()

	return ConvertParseErrors(result.Errors)
}

// applyChange replaces the range of an incremental change. Positions count
// UTF-16 code units as the protocol requires.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := offsetOf(text, change.Range.Start)
	end := offsetOf(text, change.Range.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + change.Text + text[end:]
}

func offsetOf(text string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}

	units := protocol.UInteger(0)
	for i, r := range text[offset:] {
		if units >= pos.Character || r == '\n' {
			return offset + i
		}
		units++
		if r >= 0x10000 {
			units++
		}
	}
	return len(text)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if log.AllowLevel(commonlog.Debug) {
		if diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  "); err == nil {
			log.Debugf("sending diagnostics: %s", diagnosticsJSON)
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// collectBindings maps every let-bound name and parameter to "function",
// "variable" or "parameter".
func collectBindings(program *ast.Program) map[string]string {
	bindings := make(map[string]string)
	if program == nil {
		return bindings
	}

	ast.Inspect(program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.LetStmt:
			if _, ok := n.Value.(*ast.FunctionLiteral); ok {
				bindings[n.Name.Name] = "function"
			} else if _, seen := bindings[n.Name.Name]; !seen {
				bindings[n.Name.Name] = "variable"
			}
		case *ast.FunctionLiteral:
			for _, p := range n.Parameters {
				if _, seen := bindings[p.Name]; !seen {
					bindings[p.Name] = "parameter"
				}
			}
		}
		return true
	})
	return bindings
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

package lsp

import (
	"context"
	"sync"

	"github.com/charj-lang/charj/internal/charj/diagnose"
	"github.com/charj-lang/charj/internal/charj/source"
	"github.com/charj-lang/charj/internal/defaults"
	"github.com/charj-lang/charj/internal/log/semconv"
	"github.com/rs/zerolog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/charj-lang/charj/internal/commands/lsp"

	serverName = "charj"
)

// Server publishes parse diagnostics for open documents. Every change
// re-parses the whole document.
type Server struct {
	ctx     context.Context
	handler protocol.Handler
	tracer  trace.Tracer

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

func NewServer(ctx context.Context, options ...func(*Server)) *Server {
	s := Server{
		ctx:       ctx,
		tracer:    defaults.TracerProvider.Tracer(tracerName),
		mu:        sync.Mutex{},
		documents: make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	for _, apply := range options {
		apply(&s)
	}

	return &s
}

// Handler exposes the protocol handlers.
func (s *Server) Handler() *protocol.Handler {
	return &s.handler
}

func (s *Server) RunStdio() error {
	return server.NewServer(&s.handler, serverName, false).RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	openClose := true
	change := protocol.TextDocumentSyncKindFull
	includeText := true

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &change,
		Save: &protocol.SaveOptions{
			IncludeText: &includeText,
		},
	}

	version := defaults.Version

	result := protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}

	return result, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	zerolog.Ctx(s.ctx).Info().Msg("client initialized")

	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)

	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, &params.TextDocument.Version, params.TextDocument.Text)

	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	// with full sync the last change holds the whole document
	for i := len(params.ContentChanges) - 1; i >= 0; i-- {
		if change, ok := params.ContentChanges[i].(protocol.TextDocumentContentChangeEventWhole); ok {
			s.update(ctx, params.TextDocument.URI, &params.TextDocument.Version, change.Text)

			return nil
		}
	}

	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.update(ctx, params.TextDocument.URI, nil, *params.Text)
		return nil
	}

	s.mu.Lock()
	text, ok := s.documents[params.TextDocument.URI]
	s.mu.Unlock()

	if ok {
		s.update(ctx, params.TextDocument.URI, nil, text)
	}

	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	// clear what the editor still shows
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})

	return nil
}

func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, version *protocol.Integer, text string) {
	_, span := s.tracer.Start(s.ctx, "check document", trace.WithAttributes(
		attribute.String(semconv.FilePath, string(uri)),
	))
	defer span.End()

	s.mu.Lock()
	s.documents[uri] = text
	s.mu.Unlock()

	result := diagnose.File(source.NewFile(string(uri), text))

	span.SetAttributes(attribute.Int(semconv.DiagnosticCount, len(result.Diagnostics)))

	zerolog.Ctx(s.ctx).Debug().
		Str(semconv.FilePath, string(uri)).
		Int(semconv.DiagnosticCount, len(result.Diagnostics)).
		Msg("checked document")

	params := protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocol(result),
	}

	if version != nil {
		v := protocol.UInteger(*version)
		params.Version = &v
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

func toProtocol(result *diagnose.Result) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(result.Diagnostics))

	severity := protocol.DiagnosticSeverityError
	sourceName := serverName

	for _, diagnostic := range result.Diagnostics {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toPosition(result.File, diagnostic.Position.Start),
				End:   toPosition(result.File, diagnostic.Position.End),
			},
			Severity: &severity,
			Source:   &sourceName,
			Message:  diagnostic.Message,
		})
	}

	return diagnostics
}

func toPosition(file *source.File, p source.Point) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(file.UTF16Column(p)),
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Server) {
	return func(s *Server) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// Package pipeline wires the mdpipe stages (lexer, block parser, inline
// parser, renderer) into a single service with optional result caching and
// stage timing logs. The underlying stage functions stay pure; the service
// only adds the orchestration around them.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdpipe/pkg/cache"
	"github.com/yaklabco/mdpipe/pkg/mdast"
	"github.com/yaklabco/mdpipe/pkg/parser"
	"github.com/yaklabco/mdpipe/pkg/render"
)

// Options configures a Service.
type Options struct {
	// Cache holds parse and render results. Nil disables caching.
	Cache *cache.Manager

	// Render is passed through to the HTML renderer.
	Render render.Options

	// Logger receives stage timing at debug level. Nil disables logging.
	Logger *log.Logger
}

// Service runs documents through the pipeline. Independent Services share
// no state and may run concurrently; a single Service is itself safe for
// concurrent use because ASTs are immutable and the cache is synchronized.
type Service struct {
	opts Options
}

// New creates a Service.
func New(opts Options) *Service {
	return &Service{opts: opts}
}

// Tokens runs only the lexer, returning the positioned token stream.
func (s *Service) Tokens(text string) []mdast.Token {
	start := time.Now()
	tokens := parser.Tokenize(text)
	s.debug("tokenize", start, "tokens", len(tokens))
	return tokens
}

// BlockTree runs the lexer and block parser, returning the block tree with
// inline content still unresolved. The result is a debug artifact and is
// never cached.
func (s *Service) BlockTree(text string) *mdast.Node {
	start := time.Now()
	doc := parser.ParseBlocks(parser.Tokenize(text))
	s.debug("parse blocks", start)
	return doc
}

// Parse returns the fully resolved AST for text, consulting the cache first.
func (s *Service) Parse(text string) *mdast.Node {
	if s.opts.Cache == nil {
		return s.parse(text)
	}

	key := cache.Key(text)
	if doc, ok := s.opts.Cache.GetAST(key); ok {
		s.debugf("parse cache hit", "key", key[:12])
		return doc
	}

	doc := s.parse(text)
	s.opts.Cache.SetAST(key, doc)
	return doc
}

func (s *Service) parse(text string) *mdast.Node {
	start := time.Now()
	doc := parser.Parse(text)
	s.debug("parse", start)
	return doc
}

// Render runs the full pipeline from text to HTML, consulting the cache at
// both the HTML and AST levels.
func (s *Service) Render(text string) string {
	if s.opts.Cache == nil {
		return s.render(s.parse(text))
	}

	key := cache.Key(text)
	if html, ok := s.opts.Cache.GetHTML(key); ok {
		s.debugf("render cache hit", "key", key[:12])
		return html
	}

	html := s.render(s.Parse(text))
	s.opts.Cache.SetHTML(key, html)
	return html
}

// RenderAST renders an already parsed document.
func (s *Service) RenderAST(doc *mdast.Node) string {
	return s.render(doc)
}

func (s *Service) render(doc *mdast.Node) string {
	start := time.Now()
	html := render.HTMLWithOptions(doc, s.opts.Render)
	s.debug("render", start)
	return html
}

// CacheStats returns cache counters, or false when caching is disabled.
func (s *Service) CacheStats() (cache.Stats, bool) {
	if s.opts.Cache == nil {
		return cache.Stats{}, false
	}
	return s.opts.Cache.Stats(), true
}

func (s *Service) debug(stage string, start time.Time, keyvals ...any) {
	if s.opts.Logger == nil {
		return
	}
	args := append([]any{"duration", time.Since(start)}, keyvals...)
	s.opts.Logger.Debug(stage, args...)
}

func (s *Service) debugf(msg string, keyvals ...any) {
	if s.opts.Logger == nil {
		return
	}
	s.opts.Logger.Debug(msg, keyvals...)
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/yaklabco/mdpipe/pkg/mdast"
)

// Stats is a point-in-time snapshot of cache effectiveness counters.
type Stats struct {
	ASTHits    uint64
	ASTMisses  uint64
	HTMLHits   uint64
	HTMLMisses uint64
	ASTLen     int
	HTMLLen    int
	Evictions  uint64
}

// Manager caches parsed ASTs and rendered HTML keyed by a digest of the
// source text. It is safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	ast  Strategy
	html Strategy

	astHits    uint64
	astMisses  uint64
	htmlHits   uint64
	htmlMisses uint64
}

// NewManager creates a Manager over the given strategies. Both must be
// distinct instances; strategies are not shared between the two stores.
func NewManager(ast, html Strategy) *Manager {
	return &Manager{ast: ast, html: html}
}

// Key derives the cache key for a source text.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// GetAST returns the cached AST for a key, if present.
func (m *Manager) GetAST(key string) (*mdast.Node, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.ast.Get(key)
	if !ok {
		m.astMisses++
		return nil, false
	}
	m.astHits++

	doc, ok := value.(*mdast.Node)
	return doc, ok
}

// SetAST stores a fully parsed (and therefore immutable) AST.
func (m *Manager) SetAST(key string, doc *mdast.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ast.Put(key, doc)
}

// GetHTML returns the cached rendered HTML for a key, if present.
func (m *Manager) GetHTML(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.html.Get(key)
	if !ok {
		m.htmlMisses++
		return "", false
	}
	m.htmlHits++

	html, ok := value.(string)
	return html, ok
}

// SetHTML stores a rendered document.
func (m *Manager) SetHTML(key, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.html.Put(key, html)
}

// Stats returns a snapshot of the counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		ASTHits:    m.astHits,
		ASTMisses:  m.astMisses,
		HTMLHits:   m.htmlHits,
		HTMLMisses: m.htmlMisses,
		ASTLen:     m.ast.Len(),
		HTMLLen:    m.html.Len(),
		Evictions:  m.ast.Evictions() + m.html.Evictions(),
	}
}

// Clear empties both stores. Counters are preserved.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ast.Clear()
	m.html.Clear()
}

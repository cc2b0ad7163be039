// Package semparse defines the optional external semantic parser hook.
//
// When a parser is registered, the assembler offers each occupation
// title to it before falling back to the built-in heuristic engine.
// Absence of a parser is the normal case; presence only ever replaces
// how a single title is split, never what is done with the result.
package semparse

import (
	"context"
	"sync"
)

// Result carries payloads a semantic parser derives from one title.
// Expansions are sibling title strings; Concepts are concept labels.
type Result struct {
	Expansions []string
	Concepts   []string
}

// Parser is an external semantic title parser.
type Parser interface {
	// Initialize prepares the parser. Called once before first use.
	Initialize(ctx context.Context) error

	// Parse splits one occupation title. An error means the caller
	// should fall back to the heuristic engine for this title.
	Parse(title string) (*Result, error)
}

var (
	mu     sync.RWMutex
	active Parser
)

// Register installs the active parser. Passing nil clears it.
func Register(p Parser) {
	mu.Lock()
	defer mu.Unlock()
	active = p
}

// Active returns the registered parser, or nil when none is installed.
func Active() Parser {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

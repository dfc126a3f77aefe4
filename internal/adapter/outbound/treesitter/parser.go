// Package treesitter provides the tree-sitter backed C# parsing and
// signature extraction adapter.
package treesitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	forest "github.com/alexaandru/go-sitter-forest"
	tree_sitter "github.com/alexaandru/go-tree-sitter-bare"

	"testscaffold/internal/application/common/slogger"
)

// grammarName is the C# grammar identifier registered in go-sitter-forest.
const grammarName = "c_sharp"

// Default parser guards, applied when the config leaves them unset.
const (
	DefaultMaxSourceSize = int64(10 * 1024 * 1024)
	DefaultParseTimeout  = 30 * time.Second
)

// ErrSourceTooLarge is returned when a file exceeds the configured size cap.
var ErrSourceTooLarge = errors.New("source exceeds maximum size")

// ParserConfig holds guards for the C# parser.
type ParserConfig struct {
	MaxSourceSize int64
	ParseTimeout  time.Duration
}

// CSharpParser wraps a tree-sitter parser configured with the C# grammar.
// The parser instance is reused across files; parsing is sequential, so no
// locking is needed.
type CSharpParser struct {
	parser *tree_sitter.Parser
	config ParserConfig
}

// NewCSharpParser loads the C# grammar and configures a parser around it.
func NewCSharpParser(ctx context.Context, config ParserConfig) (*CSharpParser, error) {
	if config.MaxSourceSize <= 0 {
		config.MaxSourceSize = DefaultMaxSourceSize
	}
	if config.ParseTimeout <= 0 {
		config.ParseTimeout = DefaultParseTimeout
	}

	grammar := forest.GetLanguage(grammarName)
	if grammar == nil {
		return nil, fmt.Errorf("grammar %q is not available", grammarName)
	}

	parser := tree_sitter.NewParser()
	if parser == nil {
		return nil, errors.New("failed to create tree-sitter parser")
	}
	if !parser.SetLanguage(grammar) {
		return nil, fmt.Errorf("failed to set %q language on parser", grammarName)
	}

	slogger.Debug(ctx, "C# tree-sitter parser initialized", slogger.Fields{
		"max_source_size": config.MaxSourceSize,
		"parse_timeout":   config.ParseTimeout.String(),
	})

	return &CSharpParser{parser: parser, config: config}, nil
}

// Parse parses C# source and returns the syntax tree. Callers must Close the
// returned tree. Oversized input is rejected before parsing.
func (p *CSharpParser) Parse(ctx context.Context, source []byte) (*tree_sitter.Tree, error) {
	if int64(len(source)) > p.config.MaxSourceSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrSourceTooLarge, len(source), p.config.MaxSourceSize)
	}

	parseCtx, cancel := context.WithTimeout(ctx, p.config.ParseTimeout)
	defer cancel()

	tree, err := p.parser.ParseString(parseCtx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parsing failed: %w", err)
	}

	return tree, nil
}

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexidiff/termgraph"
)

// ErrBadFormat is returned for structurally malformed definition input.
var ErrBadFormat = errors.New("loader: malformed definition input")

// LoadText reads "term: token token token" lines into a graph. Blank lines
// and #-comments are skipped; a line without a colon is ErrBadFormat.
func LoadText(r io.Reader) (*termgraph.Graph, error) {
	g := termgraph.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		term, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: line %d: missing ':'", ErrBadFormat, lineNo)
		}
		if err := g.Define(term, strings.Fields(rest)...); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading definitions: %w", err)
	}

	return g, nil
}

// LoadYAML reads a single YAML mapping of term → token sequence into a
// graph, preserving document order.
func LoadYAML(r io.Reader) (*termgraph.Graph, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) != 1 {
			return nil, fmt.Errorf("%w: expected a single mapping document", ErrBadFormat)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a term → tokens mapping", ErrBadFormat)
	}

	g := termgraph.NewGraph()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		tokens, err := tokensOf(value)
		if err != nil {
			return nil, fmt.Errorf("%w (term %q, line %d)", err, key.Value, value.Line)
		}
		if err = g.Define(key.Value, tokens...); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}

	return g, nil
}

// tokensOf accepts a sequence of scalars or a single scalar of
// whitespace-separated tokens.
func tokensOf(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		tokens := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: definition tokens must be scalars", ErrBadFormat)
			}
			tokens = append(tokens, item.Value)
		}

		return tokens, nil
	case yaml.ScalarNode:
		return strings.Fields(n.Value), nil
	default:
		return nil, fmt.Errorf("%w: definition must be a sequence or scalar", ErrBadFormat)
	}
}

// LoadFile loads a definition graph from path, choosing the format by
// extension: .yaml/.yml → YAML, anything else → plain text.
func LoadFile(path string) (*termgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadText(f)
	}
}

// LoadPairs reads seed pairs, one per line, two whitespace-separated
// terms. Blank lines and #-comments are skipped.
func LoadPairs(r io.Reader) ([][2]string, error) {
	sc := bufio.NewScanner(r)
	var pairs [][2]string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want exactly two terms, got %d", ErrBadFormat, lineNo, len(fields))
		}
		pairs = append(pairs, [2]string{fields[0], fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading pairs: %w", err)
	}

	return pairs, nil
}

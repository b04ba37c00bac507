// Package frontmatter reads the YAML header a slide deck carries at the
// top of its source file.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissing means the source does not open with a frontmatter block.
	ErrMissing = errors.New("no frontmatter block")
	// ErrUnterminated means the opening delimiter is never closed.
	ErrUnterminated = errors.New("frontmatter block is never closed")
	// ErrMissingTitle means the block carries no usable title.
	ErrMissingTitle = errors.New("frontmatter has no title")
)

const delimiter = "---"

// Fields holds the raw decoded frontmatter mapping.
type Fields map[string]any

// Parse splits src into its frontmatter fields and the remaining body.
// The block must start on the first line. Slide separators deeper in
// the document are left untouched.
func Parse(src []byte) (Fields, []byte, error) {
	lines := strings.Split(string(src), "\n")
	if strings.TrimSpace(lines[0]) != delimiter {
		return nil, src, ErrMissing
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != delimiter {
			continue
		}
		block := strings.Join(lines[1:i], "\n")
		body := strings.Join(lines[i+1:], "\n")
		fields := Fields{}
		if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
			return nil, nil, fmt.Errorf("parsing frontmatter: %w", err)
		}
		return fields, []byte(body), nil
	}
	return nil, nil, ErrUnterminated
}

// ParseFile reads path and parses its frontmatter.
func ParseFile(fs afero.Fs, path string) (Fields, []byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data)
}

// Title returns the deck title. Missing, blank, or unconvertible values
// yield ErrMissingTitle. Scalar titles that are not strings (a year, a
// version number) are rendered as text.
func (f Fields) Title() (string, error) {
	raw, ok := f["title"]
	if !ok {
		return "", ErrMissingTitle
	}
	title, err := cast.ToStringE(raw)
	if err != nil || strings.TrimSpace(title) == "" {
		return "", ErrMissingTitle
	}
	return strings.TrimSpace(title), nil
}

// Meta is the subset of deck frontmatter the tooling inspects.
type Meta struct {
	Title      string `mapstructure:"title"`
	Theme      string `mapstructure:"theme"`
	Layout     string `mapstructure:"layout"`
	Background string `mapstructure:"background"`
	Info       string `mapstructure:"info"`
}

// Decode maps fields onto Meta, coercing scalars loosely the way deck
// authors actually write them.
func Decode(f Fields) (Meta, error) {
	var m Meta
	if err := mapstructure.WeakDecode(map[string]any(f), &m); err != nil {
		return Meta{}, fmt.Errorf("decoding frontmatter: %w", err)
	}
	return m, nil
}

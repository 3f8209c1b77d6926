// Package source holds the text a lexer scans. A Source is immutable while
// it is being parsed, so token spans taken against it stay valid.
package source

import (
	"fmt"
	"os"
)

// Source is anything that can hand out a stable UTF-8 string.
type Source interface {
	// Text returns the whole text.
	Text() string
	// After returns the suffix starting at byte offset.
	After(offset int) string
}

// String is an anonymous in-memory source.
type String string

func (s String) Text() string { return string(s) }

func (s String) After(offset int) string { return string(s)[offset:] }

// File is a source loaded from disk.
type File struct {
	Path    string
	Content string
}

func (f *File) Text() string { return f.Content }

func (f *File) After(offset int) string { return f.Content[offset:] }

// ReadFile loads path into a File.
func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &File{Path: path, Content: string(content)}, nil
}

// Name returns a display name for src.
func Name(src Source) string {
	if f, ok := src.(*File); ok && f.Path != "" {
		return f.Path
	}
	return "<input>"
}

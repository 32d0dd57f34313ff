// Package history supplies the profile screen's list of past operations.
package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

// Kind distinguishes the two recorded operations.
type Kind string

const (
	KindSearch Kind = "search"
	KindTryon  Kind = "tryon"
)

// Label is the short human name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindSearch:
		return "Search"
	case KindTryon:
		return "Try-on"
	default:
		return string(k)
	}
}

// Entry is one past operation.
type Entry struct {
	ID     int64  `yaml:"id" json:"id"`
	Type   Kind   `yaml:"type" json:"type"`
	Date   string `yaml:"date" json:"date"`
	Status string `yaml:"status" json:"status"`
}

// Provider lists past operations, newest first.
type Provider interface {
	List(ctx context.Context) ([]Entry, error)
}

// StaticProvider serves a fixed list.
type StaticProvider struct {
	entries []Entry
}

// NewStaticProvider copies entries; with none it serves the sample rows.
func NewStaticProvider(entries ...Entry) *StaticProvider {
	if len(entries) == 0 {
		entries = SampleEntries()
	}
	return &StaticProvider{entries: append([]Entry(nil), entries...)}
}

func (p *StaticProvider) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Entry(nil), p.entries...), nil
}

// SampleEntries returns the demo history shown until real persistence exists.
func SampleEntries() []Entry {
	return []Entry{
		{ID: 1, Type: KindSearch, Date: "08.01.2026", Status: "Found 12 items"},
		{ID: 2, Type: KindTryon, Date: "07.01.2026", Status: "Success"},
		{ID: 3, Type: KindSearch, Date: "05.01.2026", Status: "Found 8 items"},
	}
}

// FileProvider reads entries from a YAML file on every List call.
type FileProvider struct {
	Path string
}

type fileDocument struct {
	Entries []Entry `yaml:"entries"`
}

func (p *FileProvider) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewParseError(p.Path, 0, err)
	}

	for i, e := range doc.Entries {
		switch e.Type {
		case KindSearch, KindTryon:
		default:
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("entries[%d].type", i),
				fmt.Sprintf("%q is not one of search, tryon", e.Type),
				nil,
			)
		}
		doc.Entries[i].Status = strings.TrimSpace(e.Status)
	}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}
	return doc.Entries, nil
}

// New picks a FileProvider when path is set, the sample rows otherwise.
func New(path string) Provider {
	if strings.TrimSpace(path) == "" {
		return NewStaticProvider()
	}
	return &FileProvider{Path: path}
}

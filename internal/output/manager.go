package output

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

type manager struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewManager creates a Manager with the built-in formatters registered.
func NewManager() Manager {
	m := &manager{formatters: make(map[string]Formatter)}
	m.RegisterFormatter(NewTableFormatter())
	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewYAMLFormatter())
	m.RegisterFormatter(NewMarkdownFormatter())
	return m
}

// RegisterFormatter registers a formatter, replacing one with the same name.
func (m *manager) RegisterFormatter(formatter Formatter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name.
func (m *manager) GetFormatter(name string) (Formatter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return f, nil
}

// ListFormatters returns all available formatter names, sorted.
func (m *manager) ListFormatters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format formats the records using the specified formatter.
func (m *manager) Format(ctx context.Context, formatName string, records []Record, w io.Writer) error {
	f, err := m.GetFormatter(formatName)
	if err != nil {
		return err
	}
	if err := f.Format(ctx, records, w); err != nil {
		return fmt.Errorf("formatting %s: %w", formatName, err)
	}
	return nil
}

package theme

import "sync"

// Provider owns the active theme. It starts in the mode it was created with and
// changes only through Toggle or Set.
type Provider struct {
	mu    sync.RWMutex
	theme *Theme
}

// NewProvider creates a provider in mode, falling back to light for unknown modes.
func NewProvider(mode Mode) *Provider {
	t, err := ForMode(mode)
	if err != nil {
		t = LightTheme()
	}
	return &Provider{theme: t}
}

// Mode returns the active mode.
func (p *Provider) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme.Mode
}

// Theme returns the active theme.
func (p *Provider) Theme() *Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// Styles builds styles for the active theme.
func (p *Provider) Styles() *Styles {
	return NewStyles(p.Theme())
}

// Toggle switches between light and dark and returns the new mode.
func (p *Provider) Toggle() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.theme.Mode == ModeDark {
		p.theme = LightTheme()
	} else {
		p.theme = DarkTheme()
	}
	return p.theme.Mode
}

// Set switches to mode.
func (p *Provider) Set(mode Mode) error {
	t, err := ForMode(mode)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.theme = t
	p.mu.Unlock()
	return nil
}

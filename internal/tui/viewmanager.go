package tui

import "fmt"

// screens is the fixed set of views the browser knows about. It is only
// touched from the bubbletea update loop.
type screens struct {
	byName   map[string]View
	fallback string
}

// NewViewManager builds the list, details and help screens.
func NewViewManager(styles StyleManager, filter FilterManager, loader Loader, copier Copier) ViewManager {
	s := &screens{byName: make(map[string]View, 3), fallback: ViewList}
	for _, v := range []View{
		NewListView(styles, filter, loader),
		NewDetailsView(styles, loader, copier),
		NewHelpView(styles),
	} {
		s.byName[v.Name()] = v
	}
	return s
}

func (s *screens) GetCurrentView(state *State) View {
	name := s.fallback
	if state != nil && state.CurrentView != "" {
		name = state.CurrentView
	}
	if v, ok := s.byName[name]; ok {
		return v
	}
	return s.byName[ViewList]
}

func (s *screens) SwitchView(viewName string) error {
	if _, ok := s.byName[viewName]; !ok {
		return fmt.Errorf("unknown view %q", viewName)
	}
	s.fallback = viewName
	return nil
}

func (s *screens) GetView(viewName string) View {
	return s.byName[viewName]
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// nopLoader is a Loader that never starts anything.
type nopLoader struct{}

func (nopLoader) LoadCollection(*State) tea.Cmd          { return nil }
func (nopLoader) LoadDetail(*State, catalog.Key) tea.Cmd { return nil }
func (nopLoader) CancelDetail(*State)                    {}

func newTestViewManager() ViewManager {
	return NewViewManager(NewStyleManager(nil), NewFilterManager(), nopLoader{}, nil)
}

func TestNewViewManager(t *testing.T) {
	vm := newTestViewManager()
	for _, name := range []string{ViewList, ViewDetails, ViewHelp} {
		v := vm.GetView(name)
		if v == nil {
			t.Fatalf("view %q should be registered", name)
		}
		if v.Name() != name {
			t.Errorf("GetView(%q).Name() = %q", name, v.Name())
		}
	}
	if vm.GetView("graph") != nil {
		t.Error("GetView of an unknown name should be nil")
	}
}

func TestViewManagerGetCurrentView(t *testing.T) {
	vm := newTestViewManager()

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{name: "list", current: ViewList, want: ViewList},
		{name: "details", current: ViewDetails, want: ViewDetails},
		{name: "help", current: ViewHelp, want: ViewHelp},
		{name: "unknown falls back to list", current: "tree", want: ViewList},
		{name: "empty uses default screen", current: "", want: ViewList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := vm.GetCurrentView(&State{CurrentView: tt.current})
			if view == nil {
				t.Fatal("GetCurrentView returned nil")
			}
			if view.Name() != tt.want {
				t.Errorf("GetCurrentView().Name() = %q, want %q", view.Name(), tt.want)
			}
		})
	}

	if view := vm.GetCurrentView(nil); view == nil || view.Name() != ViewList {
		t.Error("GetCurrentView(nil) should return the default screen")
	}
}

func TestViewManagerSwitchView(t *testing.T) {
	vm := newTestViewManager()

	if err := vm.SwitchView(ViewDetails); err != nil {
		t.Errorf("SwitchView(details) error = %v", err)
	}
	if got := vm.GetCurrentView(nil).Name(); got != ViewDetails {
		t.Errorf("current view = %q, want %q", got, ViewDetails)
	}
	if got := vm.GetCurrentView(&State{}).Name(); got != ViewDetails {
		t.Errorf("current view for empty state = %q, want %q", got, ViewDetails)
	}

	if err := vm.SwitchView("graph"); err == nil {
		t.Error("SwitchView to an unknown view should fail")
	}
	if got := vm.GetCurrentView(nil).Name(); got != ViewDetails {
		t.Errorf("failed switch changed the default screen to %q", got)
	}
}

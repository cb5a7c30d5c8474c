package declwin

import "testing"

// newTestTabs builds a default TabsContainer under parent.
func newTestTabs(t *testing.T, parent Parent) *TabsContainer {
	t.Helper()
	var tabs TabsContainer
	if err := NewTabsContainerBuilder().Parent(parent).Build(&tabs); err != nil {
		t.Fatalf("TabsContainerBuilder.Build() error = %v", err)
	}
	return &tabs
}

func newTestTab(t *testing.T, container *TabsContainer, caption string) *Tab {
	t.Helper()
	var tab Tab
	if err := NewTabBuilder().Parent(container).Text(caption).Build(&tab); err != nil {
		t.Fatalf("TabBuilder.Build() error = %v", err)
	}
	return &tab
}

// --- Container ---

func TestTabsContainerBuilder_Defaults(t *testing.T) {
	win := newTestWindow(t, 400, 400)
	tabs := newTestTabs(t, win)

	if got, want := tabs.Size(), (Size{W: 300, H: 300}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got := tabs.TabCount(); got != 0 {
		t.Errorf("TabCount() = %d, want 0", got)
	}
	if got := tabs.SelectedTab(); got != -1 {
		t.Errorf("SelectedTab() = %d for an empty container, want -1", got)
	}
	if !tabs.Visible() {
		t.Errorf("Visible() = false, want true")
	}
}

// --- Tab registration ---

func TestTab_RegistrationAndVisibility(t *testing.T) {
	win := newTestWindow(t, 400, 400)
	tabs := newTestTabs(t, win)

	general := newTestTab(t, tabs, "General")
	advanced := newTestTab(t, tabs, "Advanced")

	if got := tabs.TabCount(); got != 2 {
		t.Fatalf("TabCount() = %d, want 2", got)
	}
	if got := tabs.SelectedTab(); got != 0 {
		t.Errorf("SelectedTab() = %d, want 0", got)
	}

	// The first page shows, later ones wait hidden.
	if !general.Visible() {
		t.Errorf("first tab Visible() = false, want true")
	}
	if advanced.Visible() {
		t.Errorf("second tab Visible() = true, want false")
	}

	// Pages fill the container's client area.
	if got, want := boundsOf(general), (Rect{W: 300, H: 300}); got != want {
		t.Errorf("page bounds = %v, want %v", got, want)
	}
	if got, want := activeBackend().parent(general.Handle()), tabs.Handle(); got != want {
		t.Errorf("page parent = %v, want the container handle %v", got, want)
	}
	if got, want := general.Text(), "General"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

// --- Selection ---

func TestTabsContainer_SetSelectedTab(t *testing.T) {
	win := newTestWindow(t, 400, 400)
	tabs := newTestTabs(t, win)
	general := newTestTab(t, tabs, "General")
	advanced := newTestTab(t, tabs, "Advanced")

	var (
		changes int
		gotSrc  Handle
	)
	h := BindEventHandler(win.Handle(), func(evt Event, data EventData, src Handle) {
		if evt == OnTabChanged {
			changes++
			gotSrc = src
		}
	})
	defer UnbindEventHandler(h)

	tabs.SetSelectedTab(1)

	if got := tabs.SelectedTab(); got != 1 {
		t.Errorf("SelectedTab() = %d, want 1", got)
	}
	if general.Visible() {
		t.Errorf("previous page Visible() = true, want false")
	}
	if !advanced.Visible() {
		t.Errorf("selected page Visible() = false, want true")
	}
	if changes != 1 {
		t.Fatalf("OnTabChanged count = %d, want 1", changes)
	}
	if gotSrc != tabs.Handle() {
		t.Errorf("event source = %v, want the container handle %v", gotSrc, tabs.Handle())
	}

	// Re-selecting the current tab or an index out of range changes
	// nothing.
	tabs.SetSelectedTab(1)
	tabs.SetSelectedTab(5)
	tabs.SetSelectedTab(-1)

	if changes != 1 {
		t.Errorf("OnTabChanged count after ignored selections = %d, want 1", changes)
	}
	if got := tabs.SelectedTab(); got != 1 {
		t.Errorf("SelectedTab() after ignored selections = %d, want 1", got)
	}
}

// --- Builder validation ---

func TestTabBuilder_RequiresTabsContainer(t *testing.T) {
	win := newTestWindow(t, 400, 400)

	var tab Tab
	if err := NewTabBuilder().Parent(win).Build(&tab); err == nil {
		t.Errorf("Build() with a window parent error = nil, want error")
	}
	if err := NewTabBuilder().Build(&tab); err == nil {
		t.Errorf("Build() without parent error = nil, want error")
	}
}

func TestTabBuilder_DefaultCaption(t *testing.T) {
	win := newTestWindow(t, 400, 400)
	tabs := newTestTabs(t, win)

	var tab Tab
	if err := NewTabBuilder().Parent(tabs).Build(&tab); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := tab.Text(), "Tab"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

package declwin

import "fmt"

// TabsContainer hosts a row of tabs, each a Tab control whose children
// form one page. Exactly one tab is visible at a time; switching tabs
// raises OnTabChanged on the container.
type TabsContainer struct {
	ControlBase
	tabs     []*Tab
	selected int
}

// TabCount returns the number of registered tabs.
func (t *TabsContainer) TabCount() int { return len(t.tabs) }

// SelectedTab returns the index of the visible tab, or -1 when the
// container has no tabs.
func (t *TabsContainer) SelectedTab() int {
	if len(t.tabs) == 0 {
		return -1
	}
	return t.selected
}

// SetSelectedTab makes the tab at index visible and hides the others.
// Out-of-range indices are ignored.
func (t *TabsContainer) SetSelectedTab(index int) {
	if index < 0 || index >= len(t.tabs) || index == t.selected {
		return
	}
	t.selected = index
	be := activeBackend()
	for i, tab := range t.tabs {
		be.setVisible(tab.handle, i == index)
	}
	raiseEvent(t.handle, OnTabChanged, EventData{})
}

// registerTab adds a built tab as the container's last page. The
// first tab starts visible, later ones hidden.
func (t *TabsContainer) registerTab(tab *Tab) {
	t.tabs = append(t.tabs, tab)
	activeBackend().setVisible(tab.handle, len(t.tabs) == 1)
}

// TabsContainerBuilder assembles a TabsContainer.
type TabsContainerBuilder struct {
	size     Size
	position Point
	flags    TabsContainerFlags
	hasFlags bool
	font     *Font
	parent   Handle
}

// NewTabsContainerBuilder returns a builder with the default size.
func NewTabsContainerBuilder() *TabsContainerBuilder {
	return &TabsContainerBuilder{size: Size{W: 300, H: 300}}
}

// Size sets the initial size.
func (b *TabsContainerBuilder) Size(s Size) *TabsContainerBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *TabsContainerBuilder) Position(p Point) *TabsContainerBuilder { b.position = p; return b }

// Flags replaces the default Visible style.
func (b *TabsContainerBuilder) Flags(f TabsContainerFlags) *TabsContainerBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Font sets the tab caption font.
func (b *TabsContainerBuilder) Font(f *Font) *TabsContainerBuilder { b.font = f; return b }

// Parent sets the container the tab row is created under. Required.
func (b *TabsContainerBuilder) Parent(p Parent) *TabsContainerBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the container and binds it to out.
func (b *TabsContainerBuilder) Build(out *TabsContainer) error {
	if out == nil {
		return fmt.Errorf("TabsContainer build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("TabsContainer requires a parent")
	}
	flags := TabsContainerFlagVisible
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("TabsContainer", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating TabsContainer: %w", err)
	}
	out.handle = h
	out.tabs = nil
	out.selected = 0
	be := activeBackend()
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&TabsContainerFlagVisible != 0)
	be.setEnabled(h, flags&TabsContainerFlagDisabled == 0)
	if b.font != nil {
		be.setFont(h, b.font.Handle())
	}
	return nil
}

// Tab is one page of a TabsContainer. Controls declared after a tab
// without an explicit parent attach to it.
type Tab struct {
	ControlBase
}

// Text returns the tab caption.
func (t *Tab) Text() string { return activeBackend().text(t.handle) }

// SetText replaces the tab caption.
func (t *Tab) SetText(s string) { activeBackend().setText(t.handle, s) }

// TabBuilder assembles a Tab.
type TabBuilder struct {
	text      string
	container *TabsContainer
}

// NewTabBuilder returns a builder with the default caption.
func NewTabBuilder() *TabBuilder {
	return &TabBuilder{text: "Tab"}
}

// Text sets the tab caption.
func (b *TabBuilder) Text(s string) *TabBuilder { b.text = s; return b }

// Parent sets the TabsContainer the tab belongs to. Required, and it
// must be a *TabsContainer.
func (b *TabBuilder) Parent(p Parent) *TabBuilder {
	if tc, ok := p.(*TabsContainer); ok {
		b.container = tc
	}
	return b
}

// Build creates the tab, registers it as the container's last page
// and binds it to out.
func (b *TabBuilder) Build(out *Tab) error {
	if out == nil {
		return fmt.Errorf("Tab build target is nil")
	}
	if b.container == nil {
		return fmt.Errorf("Tab %q requires a TabsContainer parent", b.text)
	}
	h, err := activeBackend().create("Tab", b.container.Handle(), 0)
	if err != nil {
		return fmt.Errorf("creating Tab: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setText(h, b.text)
	be.setBounds(h, Rect{W: b.container.Size().W, H: b.container.Size().H})
	b.container.registerTab(out)
	return nil
}

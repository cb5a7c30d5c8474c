package declwin

// Control flags mirror the window styles of the native backend. A
// builder's Flags call replaces the control's default set wholesale.
// In ui: annotations flags are written as a |-separated string of
// SCREAMING_SNAKE names ("MAIN_WINDOW|VISIBLE") which the generator
// expands to these constants.

// WindowFlags style a Window or MessageWindow.
type WindowFlags uint32

const (
	WindowFlagVisible WindowFlags = 1 << iota
	WindowFlagDisabled
	WindowFlagCaption
	WindowFlagSysMenu
	WindowFlagMinimizeBox
	WindowFlagMaximizeBox
	WindowFlagResizable
	WindowFlagMaximized
	WindowFlagMinimized
	WindowFlagPopup

	// WindowFlagWindow is a titled, non-resizable top-level window.
	WindowFlagWindow = WindowFlagCaption | WindowFlagSysMenu

	// WindowFlagMainWindow carries the full top-level decoration set.
	WindowFlagMainWindow = WindowFlagCaption | WindowFlagSysMenu |
		WindowFlagMinimizeBox | WindowFlagMaximizeBox | WindowFlagResizable
)

// ButtonFlags style a Button.
type ButtonFlags uint32

const (
	ButtonFlagVisible ButtonFlags = 1 << iota
	ButtonFlagDisabled
	ButtonFlagFlat
)

// LabelFlags style a Label.
type LabelFlags uint32

const (
	LabelFlagVisible LabelFlags = 1 << iota
	LabelFlagDisabled
	LabelFlagEllipsis
)

// TextInputFlags style a TextInput.
type TextInputFlags uint32

const (
	TextInputFlagVisible TextInputFlags = 1 << iota
	TextInputFlagDisabled
	TextInputFlagNumber
	TextInputFlagPassword
	TextInputFlagAutoScroll
	TextInputFlagTabStop
)

// CheckBoxFlags style a CheckBox.
type CheckBoxFlags uint32

const (
	CheckBoxFlagVisible CheckBoxFlags = 1 << iota
	CheckBoxFlagDisabled
	CheckBoxFlagTristate
	CheckBoxFlagTabStop
)

// FrameFlags style a Frame.
type FrameFlags uint32

const (
	FrameFlagVisible FrameFlags = 1 << iota
	FrameFlagDisabled
	FrameFlagBorder
)

// TabsContainerFlags style a TabsContainer.
type TabsContainerFlags uint32

const (
	TabsContainerFlagVisible TabsContainerFlags = 1 << iota
	TabsContainerFlagDisabled
)

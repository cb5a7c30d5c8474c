package declwin

// HAlign positions text horizontally within a control.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign positions text vertically within a control.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// CheckState is the tri-state value of a CheckBox.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

// Orientation selects the axis a BoxLayout distributes cells along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// FlexDirection selects the main axis of a FlexboxLayout.
type FlexDirection int

const (
	Row FlexDirection = iota
	Column
)

// JustifyContent distributes children along a FlexboxLayout's main
// axis.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems aligns children on a FlexboxLayout's cross axis.
type AlignItems int

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsCenter
)

// AlignContent packs wrapped lines on a FlexboxLayout's cross axis.
type AlignContent int

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
)

// AlignSelf overrides AlignItems for one child. The zero value defers
// to the container.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfStretch
)

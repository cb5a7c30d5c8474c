package declwin

// Handle identifies a live windowing object. The zero Handle is
// invalid. On the native backend it wraps the OS window handle; on the
// in-memory backend it is an opaque id.
type Handle uintptr

// Valid reports whether the handle refers to an object.
func (h Handle) Valid() bool { return h != 0 }

// Control is the surface every concrete control exposes. ControlBase
// implements it; controls embed ControlBase.
type Control interface {
	Handle() Handle
}

// Parent is anything a control can be created under. Windows, frames
// and tabs all qualify.
type Parent interface {
	Handle() Handle
}

// Package declwin is a declarative windowing runtime. Applications
// declare their UI as plain structs whose fields carry //ui: comment
// directives, run `declwin generate` to turn those declarations into
// builder-based construction code, and call the generated BuildXxx
// function to realize the graph.
//
// The runtime half of the package provides the controls (Window,
// Button, Label, TextInput, CheckBox, Frame, TabsContainer), resources
// (Font), layouts (GridLayout, BoxLayout, FlexboxLayout, DynLayout)
// and the event plumbing the generated code targets. Controls are
// created through builders:
//
//	var win declwin.Window
//	err := declwin.NewWindowBuilder().
//		Title("Demo").
//		Size(declwin.Size{W: 300, H: 135}).
//		Build(&win)
//
// Events are bound per top-level window with BindEventHandler and
// delivered on the dispatch loop:
//
//	declwin.BindEventHandler(win.Handle(), func(evt declwin.Event, data declwin.EventData, src declwin.Handle) {
//		if evt == declwin.OnWindowClose {
//			declwin.StopDispatch()
//		}
//	})
//	declwin.DispatchEvents()
//
// Without a call to Init the package runs against an in-memory
// windowing backend, which is what the tests use. Init selects the
// native backend on platforms that have one.
package declwin

//go:build windows

package declwin

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	comctl32 = windows.NewLazySystemDLL("comctl32.dll")

	pRegisterClassExW      = user32.NewProc("RegisterClassExW")
	pCreateWindowExW       = user32.NewProc("CreateWindowExW")
	pDestroyWindow         = user32.NewProc("DestroyWindow")
	pDefWindowProcW        = user32.NewProc("DefWindowProcW")
	pGetMessageW           = user32.NewProc("GetMessageW")
	pTranslateMessage      = user32.NewProc("TranslateMessage")
	pDispatchMessageW      = user32.NewProc("DispatchMessageW")
	pPostThreadMessageW    = user32.NewProc("PostThreadMessageW")
	pGetWindowRect         = user32.NewProc("GetWindowRect")
	pGetClientRect         = user32.NewProc("GetClientRect")
	pMapWindowPoints       = user32.NewProc("MapWindowPoints")
	pAdjustWindowRectEx    = user32.NewProc("AdjustWindowRectEx")
	pSetWindowPos          = user32.NewProc("SetWindowPos")
	pBeginDeferWindowPos   = user32.NewProc("BeginDeferWindowPos")
	pDeferWindowPos        = user32.NewProc("DeferWindowPos")
	pEndDeferWindowPos     = user32.NewProc("EndDeferWindowPos")
	pSetWindowTextW        = user32.NewProc("SetWindowTextW")
	pGetWindowTextW        = user32.NewProc("GetWindowTextW")
	pGetWindowTextLengthW  = user32.NewProc("GetWindowTextLengthW")
	pShowWindow            = user32.NewProc("ShowWindow")
	pIsWindowVisible       = user32.NewProc("IsWindowVisible")
	pEnableWindow          = user32.NewProc("EnableWindow")
	pIsWindowEnabled       = user32.NewProc("IsWindowEnabled")
	pSetFocus              = user32.NewProc("SetFocus")
	pGetFocus              = user32.NewProc("GetFocus")
	pSendMessageW          = user32.NewProc("SendMessageW")
	pGetWindowLongW        = user32.NewProc("GetWindowLongW")
	pSetWindowLongW        = user32.NewProc("SetWindowLongW")
	pInvalidateRect        = user32.NewProc("InvalidateRect")
	pLoadCursorW           = user32.NewProc("LoadCursorW")
	pCreateFontW           = gdi32.NewProc("CreateFontW")
	pInitCommonControlsEx  = comctl32.NewProc("InitCommonControlsEx")
)

const (
	wmDestroy = 0x0002
	wmMove    = 0x0003
	wmSize    = 0x0005
	wmClose   = 0x0010
	wmSetFont = 0x0030
	wmGetFont = 0x0031
	wmCommand = 0x0111
	wmNotify  = 0x004E

	// Thread message posted by wake to interrupt GetMessageW.
	wmWakeDispatch = 0x8000 + 1 // WM_APP + 1

	bnClicked = 0
	enChange  = 0x0300

	bmGetCheck       = 0x00F0
	bmSetCheck       = 0x00F1
	bstChecked       = 1
	bstIndeterminate = 2

	wsPopup        = 0x80000000
	wsChild        = 0x40000000
	wsMinimize     = 0x20000000
	wsDisabled     = 0x08000000
	wsClipSiblings = 0x04000000
	wsClipChildren = 0x02000000
	wsMaximize     = 0x01000000
	wsCaption      = 0x00C00000
	wsBorder       = 0x00800000
	wsSysMenu      = 0x00080000
	wsThickFrame   = 0x00040000
	wsMinimizeBox  = 0x00020000
	wsMaximizeBox  = 0x00010000
	wsTabStop      = 0x00010000

	esPassword    = 0x0020
	esAutoHScroll = 0x0080
	esNumber      = 0x2000

	bsFlat          = 0x8000
	bsAutoCheckBox  = 0x0003
	bsAuto3State    = 0x0006

	ssCenter       = 0x0001
	ssRight        = 0x0002
	ssNotify       = 0x0100
	ssCenterImage  = 0x0200
	ssWordEllipsis = 0xC000
	ssTypeMask     = 0x001F

	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	swHide = 0
	swShow = 5

	emSetCueBanner = 0x1501

	tcmGetCurSel   = 0x130B
	tcmSetItemW    = 0x133D
	tcmInsertItemW = 0x133E
	tcifText       = 0x0001
	tcnSelChange   = 0xFFFFFDD9 // TCN_FIRST - 1

	iccTabClasses      = 0x0008
	iccStandardClasses = 0x4000

	defaultCharset   = 1
	clearTypeQuality = 5

	csHRedraw = 0x0002
	csVRedraw = 0x0001

	colorBtnFace = 15
	idcArrow     = 32512
)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type pointW32 struct{ x, y int32 }

type rectW32 struct{ left, top, right, bottom int32 }

type msgW32 struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      pointW32
}

type nmhdrW32 struct {
	hwndFrom uintptr
	idFrom   uintptr
	code     uint32
}

type tcItemW32 struct {
	mask        uint32
	dwState     uint32
	dwStateMask uint32
	pszText     *uint16
	cchTextMax  int32
	iImage      int32
	lParam      uintptr
}

type initCommonControlsExW32 struct {
	dwSize uint32
	dwICC  uint32
}

// win32Meta is what the backend remembers about a live hwnd beyond
// what user32 can answer directly.
type win32Meta struct {
	class       string
	parent      Handle
	children    []Handle
	placeholder string
	hAlign      HAlign
	vAlign      VAlign
}

// win32Backend drives real user32 windows. All window calls must stay
// on the thread that ran Init; the mutex only covers the meta map for
// cross-goroutine reads like parent walks.
type win32Backend struct {
	mu     sync.Mutex
	meta   map[Handle]*win32Meta
	thread uint32
}

var (
	nativeOnce sync.Once
	nativeBE   *win32Backend
	nativeErr  error
)

// platformBackend registers the window class and pins the calling
// goroutine to its OS thread. Call Init from the goroutine that will
// run DispatchEvents.
func platformBackend() (backend, bool, error) {
	nativeOnce.Do(func() {
		runtime.LockOSThread()
		b := &win32Backend{meta: map[Handle]*win32Meta{}}
		if err := b.registerClass(); err != nil {
			nativeErr = err
			return
		}
		icc := initCommonControlsExW32{dwICC: iccTabClasses | iccStandardClasses}
		icc.dwSize = uint32(unsafe.Sizeof(icc))
		pInitCommonControlsEx.Call(uintptr(unsafe.Pointer(&icc)))
		b.thread = windows.GetCurrentThreadId()
		nativeBE = b
	})
	if nativeErr != nil {
		return nil, false, nativeErr
	}
	return nativeBE, true, nil
}

var declwinClassName, _ = windows.UTF16PtrFromString("declwin_window")

func (b *win32Backend) registerClass() error {
	inst, err := windows.GetModuleHandle(nil)
	if err != nil {
		return fmt.Errorf("GetModuleHandle: %w", err)
	}
	cursor, _, _ := pLoadCursorW.Call(0, uintptr(idcArrow))
	wc := wndClassExW{
		style:         csHRedraw | csVRedraw,
		lpfnWndProc:   syscall.NewCallback(nativeWndProc),
		hInstance:     uintptr(inst),
		hCursor:       cursor,
		hbrBackground: uintptr(colorBtnFace + 1),
		lpszClassName: declwinClassName,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	atom, _, callErr := pRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("RegisterClassEx: %v", callErr)
	}
	return nil
}

func nativeWndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	switch msg {
	case wmSize:
		raiseEvent(Handle(hwnd), OnResize, EventData{
			Size: Size{W: int(uint16(lparam)), H: int(uint16(lparam >> 16))},
		})
	case wmMove:
		raiseEvent(Handle(hwnd), OnMove, EventData{
			Pos: Point{X: int(int16(uint16(lparam))), Y: int(int16(uint16(lparam >> 16)))},
		})
	case wmClose:
		raiseEvent(Handle(hwnd), OnWindowClose, EventData{})
	case wmCommand:
		src := Handle(lparam)
		if src.Valid() {
			switch uint16(wparam >> 16) {
			case bnClicked:
				raiseEvent(src, OnButtonClick, EventData{})
			case enChange:
				var text string
				if b := nativeBE; b != nil {
					text = b.text(src)
				}
				raiseEvent(src, OnTextInput, EventData{Text: text})
			}
		}
	case wmNotify:
		hdr := (*nmhdrW32)(unsafe.Pointer(lparam))
		if hdr.code == tcnSelChange {
			if b := nativeBE; b != nil {
				b.syncTabPages(Handle(hdr.hwndFrom))
			}
			raiseEvent(Handle(hdr.hwndFrom), OnTabChanged, EventData{})
		}
	case wmDestroy:
		if b := nativeBE; b != nil {
			b.forget(Handle(hwnd))
		}
	}
	ret, _, _ := pDefWindowProcW.Call(hwnd, msg, wparam, lparam)
	return ret
}

// pump runs the win32 message loop until the dispatch loop stops.
// Queued functions are drained whenever a wake message arrives.
func (b *win32Backend) pump(l *eventLoop) {
	var msg msgW32
	for {
		l.drainQueue()
		if l.stopped() {
			return
		}
		ret, _, _ := pGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case 0, -1:
			return
		}
		if msg.hwnd == 0 && msg.message == wmWakeDispatch {
			continue
		}
		pTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		pDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

// wake interrupts a blocked GetMessageW so the pump notices queue or
// stop changes.
func (b *win32Backend) wake() {
	pPostThreadMessageW.Call(uintptr(b.thread), wmWakeDispatch, 0, 0)
}

// hwndMessage is the HWND_MESSAGE pseudo parent for message-only
// windows.
var hwndMessage = ^uintptr(2)

func (b *win32Backend) create(class string, parent Handle, flags uint32) (Handle, error) {
	var (
		clsName  *uint16
		style    uint32
		exStyle  uint32
		parentWd = uintptr(parent)
	)
	switch class {
	case "Window":
		clsName = declwinClassName
		style = wsClipChildren | windowStyleBits(WindowFlags(flags))
	case "MessageWindow":
		clsName = declwinClassName
		parentWd = hwndMessage
	case "Frame", "Tab", "AnimationTimer":
		clsName = declwinClassName
		style = wsChild | wsClipChildren
		if class == "Frame" && FrameFlags(flags)&FrameFlagBorder != 0 {
			style |= wsBorder
		}
	case "Button":
		clsName, _ = windows.UTF16PtrFromString("BUTTON")
		style = wsChild | wsTabStop
		if ButtonFlags(flags)&ButtonFlagFlat != 0 {
			style |= bsFlat
		}
	case "CheckBox":
		clsName, _ = windows.UTF16PtrFromString("BUTTON")
		style = wsChild | bsAutoCheckBox
		if CheckBoxFlags(flags)&CheckBoxFlagTristate != 0 {
			style = wsChild | bsAuto3State
		}
		if CheckBoxFlags(flags)&CheckBoxFlagTabStop != 0 {
			style |= wsTabStop
		}
	case "Label":
		clsName, _ = windows.UTF16PtrFromString("STATIC")
		style = wsChild | ssNotify
		if LabelFlags(flags)&LabelFlagEllipsis != 0 {
			style |= ssWordEllipsis
		}
	case "TextInput":
		clsName, _ = windows.UTF16PtrFromString("EDIT")
		style = wsChild | wsBorder
		f := TextInputFlags(flags)
		if f&TextInputFlagNumber != 0 {
			style |= esNumber
		}
		if f&TextInputFlagPassword != 0 {
			style |= esPassword
		}
		if f&TextInputFlagAutoScroll != 0 {
			style |= esAutoHScroll
		}
		if f&TextInputFlagTabStop != 0 {
			style |= wsTabStop
		}
	case "TabsContainer":
		clsName, _ = windows.UTF16PtrFromString("SysTabControl32")
		style = wsChild | wsClipSiblings | wsTabStop
	default:
		return 0, fmt.Errorf("unknown control class %q", class)
	}

	inst, _ := windows.GetModuleHandle(nil)
	hwnd, _, callErr := pCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(clsName)),
		0,
		uintptr(style),
		0, 0, 0, 0,
		parentWd,
		0,
		uintptr(inst),
		0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx %s: %v", class, callErr)
	}

	h := Handle(hwnd)
	b.mu.Lock()
	b.meta[h] = &win32Meta{class: class, parent: parent}
	if p, ok := b.meta[parent]; ok {
		p.children = append(p.children, h)
	}
	b.mu.Unlock()

	if class == "Tab" {
		b.insertTabItem(parent, h)
	}
	return h, nil
}

func windowStyleBits(f WindowFlags) uint32 {
	var s uint32
	if f&WindowFlagCaption != 0 {
		s |= wsCaption
	}
	if f&WindowFlagSysMenu != 0 {
		s |= wsSysMenu
	}
	if f&WindowFlagMinimizeBox != 0 {
		s |= wsMinimizeBox
	}
	if f&WindowFlagMaximizeBox != 0 {
		s |= wsMaximizeBox
	}
	if f&WindowFlagResizable != 0 {
		s |= wsThickFrame
	}
	if f&WindowFlagMaximized != 0 {
		s |= wsMaximize
	}
	if f&WindowFlagMinimized != 0 {
		s |= wsMinimize
	}
	if f&WindowFlagPopup != 0 {
		s |= wsPopup
	}
	return s
}

// insertTabItem adds a row entry for a new page to the native tab
// control.
func (b *win32Backend) insertTabItem(tabs, page Handle) {
	idx := b.pageIndex(tabs, page)
	if idx < 0 {
		return
	}
	empty, _ := windows.UTF16PtrFromString("")
	item := tcItemW32{mask: tcifText, pszText: empty}
	pSendMessageW.Call(uintptr(tabs), tcmInsertItemW, uintptr(idx), uintptr(unsafe.Pointer(&item)))
}

// pageIndex returns page's position among the tab control's pages.
func (b *win32Backend) pageIndex(tabs, page Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.meta[tabs]
	if !ok {
		return -1
	}
	idx := 0
	for _, c := range m.children {
		cm := b.meta[c]
		if cm == nil || cm.class != "Tab" {
			continue
		}
		if c == page {
			return idx
		}
		idx++
	}
	return -1
}

// syncTabPages shows the natively selected page and hides the rest.
func (b *win32Backend) syncTabPages(tabs Handle) {
	sel, _, _ := pSendMessageW.Call(uintptr(tabs), tcmGetCurSel, 0, 0)
	b.mu.Lock()
	var pages []Handle
	if m, ok := b.meta[tabs]; ok {
		for _, c := range m.children {
			if cm := b.meta[c]; cm != nil && cm.class == "Tab" {
				pages = append(pages, c)
			}
		}
	}
	b.mu.Unlock()
	for i, page := range pages {
		cmd := uintptr(swHide)
		if i == int(int32(sel)) {
			cmd = swShow
		}
		pShowWindow.Call(uintptr(page), cmd)
	}
}

func (b *win32Backend) destroy(h Handle) {
	pDestroyWindow.Call(uintptr(h))
}

// forget cleans up the bookkeeping for a destroyed subtree. Children
// of system classes never pass through our window procedure, so the
// whole known subtree is dropped here.
func (b *win32Backend) forget(h Handle) {
	b.mu.Lock()
	m, ok := b.meta[h]
	if !ok {
		b.mu.Unlock()
		return
	}
	subtree := []Handle{h}
	for i := 0; i < len(subtree); i++ {
		if sm, ok := b.meta[subtree[i]]; ok {
			subtree = append(subtree, sm.children...)
		}
	}
	if p, ok := b.meta[m.parent]; ok {
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	for _, s := range subtree {
		delete(b.meta, s)
	}
	b.mu.Unlock()

	for _, s := range subtree {
		dropHandlers(s)
	}
}

func (b *win32Backend) parent(h Handle) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.meta[h]; ok {
		return m.parent
	}
	return 0
}

func (b *win32Backend) bounds(h Handle) Rect {
	var wr rectW32
	pGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&wr)))
	if p := b.parent(h); p.Valid() {
		pts := [2]pointW32{{wr.left, wr.top}, {wr.right, wr.bottom}}
		pMapWindowPoints.Call(0, uintptr(p), uintptr(unsafe.Pointer(&pts[0])), 2)
		return Rect{
			X: int(pts[0].x), Y: int(pts[0].y),
			W: int(pts[1].x - pts[0].x), H: int(pts[1].y - pts[0].y),
		}
	}
	// Top-level windows report their client size so layouts see the
	// usable area.
	var cr rectW32
	pGetClientRect.Call(uintptr(h), uintptr(unsafe.Pointer(&cr)))
	return Rect{X: int(wr.left), Y: int(wr.top), W: int(cr.right), H: int(cr.bottom)}
}

func (b *win32Backend) setBounds(h Handle, r Rect) {
	w, ht := r.W, r.H
	if !b.parent(h).Valid() {
		// Grow the outer frame so the client area matches the request.
		ar := rectW32{right: int32(r.W), bottom: int32(r.H)}
		style := getWindowLong(uintptr(h), -16)
		exStyle := getWindowLong(uintptr(h), -20)
		pAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(&ar)), uintptr(style), 0, uintptr(exStyle))
		w = int(ar.right - ar.left)
		ht = int(ar.bottom - ar.top)
	}
	pSetWindowPos.Call(uintptr(h), 0,
		uintptr(uint32(int32(r.X))), uintptr(uint32(int32(r.Y))),
		uintptr(w), uintptr(ht),
		swpNoZOrder|swpNoActivate)
}

func (b *win32Backend) applyDeferred(changes []boundsChange) {
	hdwp, _, _ := pBeginDeferWindowPos.Call(uintptr(len(changes)))
	for _, ch := range changes {
		if hdwp == 0 {
			break
		}
		hdwp, _, _ = pDeferWindowPos.Call(hdwp, uintptr(ch.handle), 0,
			uintptr(uint32(int32(ch.rect.X))), uintptr(uint32(int32(ch.rect.Y))),
			uintptr(ch.rect.W), uintptr(ch.rect.H),
			swpNoZOrder|swpNoActivate)
	}
	if hdwp != 0 {
		pEndDeferWindowPos.Call(hdwp)
		return
	}
	for _, ch := range changes {
		b.setBounds(ch.handle, ch.rect)
	}
}

func getWindowLong(h uintptr, index int32) uint32 {
	ret, _, _ := pGetWindowLongW.Call(h, uintptr(uint32(index)))
	return uint32(ret)
}

func setWindowLong(h uintptr, index int32, value uint32) {
	pSetWindowLongW.Call(h, uintptr(uint32(index)), uintptr(value))
}

func (b *win32Backend) text(h Handle) string {
	n, _, _ := pGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	pGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), n+1)
	return windows.UTF16ToString(buf)
}

func (b *win32Backend) setText(h Handle, s string) {
	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return
	}
	pSetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(ptr)))

	b.mu.Lock()
	m := b.meta[h]
	var tabs Handle
	if m != nil && m.class == "Tab" {
		tabs = m.parent
	}
	b.mu.Unlock()
	if tabs.Valid() {
		if idx := b.pageIndex(tabs, h); idx >= 0 {
			item := tcItemW32{mask: tcifText, pszText: ptr}
			pSendMessageW.Call(uintptr(tabs), tcmSetItemW, uintptr(idx), uintptr(unsafe.Pointer(&item)))
		}
	}
}

func (b *win32Backend) placeholder(h Handle) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.meta[h]; ok {
		return m.placeholder
	}
	return ""
}

func (b *win32Backend) setPlaceholder(h Handle, s string) {
	b.mu.Lock()
	if m, ok := b.meta[h]; ok {
		m.placeholder = s
	}
	b.mu.Unlock()
	if ptr, err := windows.UTF16PtrFromString(s); err == nil {
		pSendMessageW.Call(uintptr(h), emSetCueBanner, 1, uintptr(unsafe.Pointer(ptr)))
	}
}

func (b *win32Backend) textAlign(h Handle) (HAlign, VAlign) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.meta[h]; ok {
		return m.hAlign, m.vAlign
	}
	return AlignLeft, AlignTop
}

func (b *win32Backend) setTextAlign(h Handle, ha HAlign, va VAlign) {
	b.mu.Lock()
	if m, ok := b.meta[h]; ok {
		m.hAlign = ha
		m.vAlign = va
	}
	b.mu.Unlock()

	style := getWindowLong(uintptr(h), -16) &^ ssTypeMask
	switch ha {
	case AlignCenter:
		style |= ssCenter
	case AlignRight:
		style |= ssRight
	}
	// STATIC can only center vertically, and only for single lines.
	style &^= ssCenterImage
	if va == AlignMiddle {
		style |= ssCenterImage
	}
	setWindowLong(uintptr(h), -16, style)
	pInvalidateRect.Call(uintptr(h), 0, 1)
}

func (b *win32Backend) visible(h Handle) bool {
	ret, _, _ := pIsWindowVisible.Call(uintptr(h))
	return ret != 0
}

func (b *win32Backend) setVisible(h Handle, v bool) {
	cmd := uintptr(swHide)
	if v {
		cmd = swShow
	}
	pShowWindow.Call(uintptr(h), cmd)
}

func (b *win32Backend) enabled(h Handle) bool {
	ret, _, _ := pIsWindowEnabled.Call(uintptr(h))
	return ret != 0
}

func (b *win32Backend) setEnabled(h Handle, v bool) {
	enable := uintptr(0)
	if v {
		enable = 1
	}
	pEnableWindow.Call(uintptr(h), enable)
}

func (b *win32Backend) setFocus(h Handle) {
	pSetFocus.Call(uintptr(h))
}

func (b *win32Backend) focused(h Handle) bool {
	ret, _, _ := pGetFocus.Call()
	return Handle(ret) == h && h.Valid()
}

func (b *win32Backend) checkState(h Handle) CheckState {
	ret, _, _ := pSendMessageW.Call(uintptr(h), bmGetCheck, 0, 0)
	switch ret {
	case bstChecked:
		return Checked
	case bstIndeterminate:
		return Indeterminate
	default:
		return Unchecked
	}
}

func (b *win32Backend) setCheckState(h Handle, s CheckState) {
	var v uintptr
	switch s {
	case Checked:
		v = bstChecked
	case Indeterminate:
		v = bstIndeterminate
	}
	pSendMessageW.Call(uintptr(h), bmSetCheck, v, 0)
}

func (b *win32Backend) createFont(spec FontSpec) (Handle, error) {
	if spec.Family == "" {
		return 0, fmt.Errorf("font family is empty")
	}
	face, err := windows.UTF16PtrFromString(spec.Family)
	if err != nil {
		return 0, fmt.Errorf("font family %q: %w", spec.Family, err)
	}
	italic := uintptr(0)
	if spec.Italic {
		italic = 1
	}
	hf, _, callErr := pCreateFontW.Call(
		uintptr(spec.Size), 0, 0, 0,
		uintptr(spec.Weight),
		italic, 0, 0,
		defaultCharset, 0, 0,
		clearTypeQuality, 0,
		uintptr(unsafe.Pointer(face)),
	)
	if hf == 0 {
		return 0, fmt.Errorf("CreateFont %q: %v", spec.Family, callErr)
	}
	return Handle(hf), nil
}

func (b *win32Backend) setFont(h Handle, font Handle) {
	pSendMessageW.Call(uintptr(h), wmSetFont, uintptr(font), 1)
}

func (b *win32Backend) font(h Handle) Handle {
	ret, _, _ := pSendMessageW.Call(uintptr(h), wmGetFont, 0, 0)
	return Handle(ret)
}

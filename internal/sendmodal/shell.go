package sendmodal

// DefaultBreakpoint is the minimum viewport width, in CSS pixels, that gets the dialog shell.
const DefaultBreakpoint = 768

// Shell is a presentation container for the send modal. Both shells render the same
// title, body and close control; they differ only in layout.
type Shell interface {
	// Name identifies the shell in markup and logs ("dialog", "drawer" or "auto").
	Name() string
	// ShowsDescription reports whether the shell renders the helper description line.
	ShowsDescription() bool
	// ShowsCancel reports whether the shell renders an explicit cancel button.
	ShowsCancel() bool
}

// DialogShell is the centered dialog used on wide viewports.
type DialogShell struct{}

func (DialogShell) Name() string           { return "dialog" }
func (DialogShell) ShowsDescription() bool { return false }
func (DialogShell) ShowsCancel() bool      { return false }

// DrawerShell is the bottom drawer used on narrow viewports.
type DrawerShell struct{}

func (DrawerShell) Name() string           { return "drawer" }
func (DrawerShell) ShowsDescription() bool { return true }
func (DrawerShell) ShowsCancel() bool      { return true }

// ResponsiveShell is used when the server does not know the viewport width. It renders
// drawer markup that the stylesheet turns into the dialog at the breakpoint.
type ResponsiveShell struct{}

func (ResponsiveShell) Name() string           { return "auto" }
func (ResponsiveShell) ShowsDescription() bool { return true }
func (ResponsiveShell) ShowsCancel() bool      { return true }

// Viewport is what the client told us about its screen.
type Viewport struct {
	Width int // CSS pixels, 0 when unknown
}

// SelectShell picks the dialog when the viewport is at least breakpoint wide and the
// drawer otherwise. Without a width hint the choice is left to CSS.
func SelectShell(vp Viewport, breakpoint int) Shell {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if vp.Width <= 0 {
		return ResponsiveShell{}
	}
	if vp.Width >= breakpoint {
		return DialogShell{}
	}
	return DrawerShell{}
}

// Package nav implements the menu navigation state machine: cursor
// position, menu history and the standard/application mode flag.
//
// All operations are in-memory state mutations that never fail;
// out-of-range input is clamped and selection on an empty menu is a
// no-op. The navigator owns no menus, it only references models produced
// by the bluray and bdj packages. A single navigator must only be driven
// from one event-handling context at a time.
package nav

import (
	"fmt"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/common"
)

// Mode identifies which menu system the navigator is currently in.
type Mode string

const (
	// ModeStandard navigates menus classified from playlist files.
	ModeStandard Mode = "standard"
	// ModeApplication navigates a BD-J application's synthesized menu.
	ModeApplication Mode = "application"
)

// ActionToken is the navigator's output to the host: a verb and an
// optional target for the host to execute, e.g. playing a stream.
// Tokens are only emitted for leaf selections the navigator does not
// interpret itself.
type ActionToken struct {
	Action bluray.Action
	Target string
}

// String renders the token for logs and status displays.
func (t ActionToken) String() string {
	if t.Target == "" {
		return string(t.Action)
	}
	return fmt.Sprintf("%s(%s)", t.Action, t.Target)
}

// frame is one entry of the menu history stack: the item sequence that
// was current and the cursor position within it.
type frame struct {
	items  []bluray.MenuItem
	cursor int
}

// Navigator tracks the currently displayed menu, the cursor, the
// history stack and the mode. Create one per loaded disc and discard it
// on reload; it holds references into the disc's menu models.
type Navigator struct {
	standardRoot *bluray.MenuModel
	application  *bluray.ApplicationInfo

	items   []bluray.MenuItem
	cursor  int
	history []frame
	mode    Mode
}

// NewNavigator creates a navigator rooted at the standard main menu,
// with the cursor on the first item and an empty history.
func NewNavigator(standardRoot *bluray.MenuModel) *Navigator {
	n := &Navigator{
		standardRoot: standardRoot,
		mode:         ModeStandard,
	}
	if standardRoot != nil {
		n.items = standardRoot.Items
		if len(n.items) == 0 {
			common.LogWarn(common.WarnEmptyMenu, standardRoot.Name)
		}
	}
	return n
}

// Mode returns the current navigation mode.
func (n *Navigator) Mode() Mode { return n.mode }

// Cursor returns the current cursor index. For an empty menu the cursor
// is pinned at 0.
func (n *Navigator) Cursor() int { return n.cursor }

// Items returns the currently displayed menu items.
func (n *Navigator) Items() []bluray.MenuItem { return n.items }

// Depth returns how many submenus deep the navigator currently is.
func (n *Navigator) Depth() int { return len(n.history) }

// Application returns the active BD-J application, or nil in standard
// mode.
func (n *Navigator) Application() *bluray.ApplicationInfo { return n.application }

// CurrentItem returns the item under the cursor. ok is false for an
// empty menu.
func (n *Navigator) CurrentItem() (bluray.MenuItem, bool) {
	if len(n.items) == 0 {
		return bluray.MenuItem{}, false
	}
	return n.items[n.cursor], true
}

// Move shifts the cursor by delta, clamped to the menu bounds. There is
// no wraparound: moving up from the first item stays on the first item.
func (n *Navigator) Move(delta int) {
	if len(n.items) == 0 {
		n.cursor = 0
		return
	}
	next := n.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(n.items)-1 {
		next = len(n.items) - 1
	}
	n.cursor = next
}

// Select acts on the item under the cursor. Entering a submenu pushes
// the current menu onto the history and emits no token. The reserved
// back and main-menu actions are interpreted here rather than returned;
// every other leaf yields a token for the host. ok is false when no
// token was produced.
func (n *Navigator) Select() (ActionToken, bool) {
	item, exists := n.CurrentItem()
	if !exists {
		return ActionToken{}, false
	}

	if item.IsSubmenu() {
		n.history = append(n.history, frame{items: n.items, cursor: n.cursor})
		n.items = item.Children
		n.cursor = 0
		return ActionToken{}, false
	}

	switch item.Action {
	case bluray.ActionBack:
		n.GoBack()
		return ActionToken{}, false
	case bluray.ActionMainMenu:
		n.GoHome()
		return ActionToken{}, false
	case bluray.ActionFallbackMenu:
		if n.mode == ModeApplication {
			n.SwitchToStandard()
			return ActionToken{}, false
		}
		n.GoHome()
		return ActionToken{}, false
	}

	token := ActionToken{Action: item.Action, Target: item.Target}
	common.LogDebug(common.DebugActionToken, token.Action, token.Target)
	return token, true
}

// GoBack restores the menu and cursor from the top of the history.
// Returns false when already at the root.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 0 {
		return false
	}
	top := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.items = top.items
	n.cursor = top.cursor
	return true
}

// GoHome clears the history and returns to the root menu of the current
// mode with the cursor on the first item.
func (n *Navigator) GoHome() {
	n.history = nil
	n.cursor = 0
	if n.mode == ModeApplication && n.application != nil {
		n.items = n.application.Menu.Items
		return
	}
	if n.standardRoot != nil {
		n.items = n.standardRoot.Items
	} else {
		n.items = nil
	}
}

// SetApplication enters application mode on the given BD-J application:
// history is cleared and the application's menu becomes current.
func (n *Navigator) SetApplication(app *bluray.ApplicationInfo) {
	n.application = app
	n.mode = ModeApplication
	n.history = nil
	n.cursor = 0
	if app != nil {
		n.items = app.Menu.Items
	} else {
		n.items = nil
	}
}

// SwitchToStandard leaves application mode and restores the standard
// root menu. Returns false when already in standard mode, in which case
// nothing changes.
func (n *Navigator) SwitchToStandard() bool {
	if n.mode == ModeStandard {
		return false
	}
	n.mode = ModeStandard
	n.application = nil
	n.GoHome()
	return true
}

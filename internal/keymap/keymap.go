package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/gridpad/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionCopy      Action = "copy"
	ActionPaste     Action = "paste"
	ActionExportRaw Action = "export_raw"
	ActionShowKeyed Action = "show_keyed"
	ActionShowData  Action = "show_data"

	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionSearch    Action = "focus_search"
	ActionHelp      Action = "help"
	ActionTheme     Action = "cycle_theme"
	ActionQuit      Action = "quit"

	ActionGridUp    Action = "grid_up"
	ActionGridDown  Action = "grid_down"
	ActionGridLeft  Action = "grid_left"
	ActionGridRight Action = "grid_right"

	ActionExtendUp    Action = "extend_up"
	ActionExtendDown  Action = "extend_down"
	ActionExtendLeft  Action = "extend_left"
	ActionExtendRight Action = "extend_right"

	ActionClearSelection Action = "clear_selection"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Copy      key.Binding
	Paste     key.Binding
	ExportRaw key.Binding
	ShowKeyed key.Binding
	ShowData  key.Binding

	FocusNext key.Binding
	FocusPrev key.Binding
	Search    key.Binding
	Help      key.Binding
	Theme     key.Binding
	Quit      key.Binding

	GridUp    key.Binding
	GridDown  key.Binding
	GridLeft  key.Binding
	GridRight key.Binding

	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding

	ClearSelection key.Binding
}

var defaultDefs = []bindingDef{
	{ActionCopy, []string{"ctrl+c", "y"}, "copy keyed JSON"},
	{ActionPaste, []string{"ctrl+v", "p"}, "paste"},
	{ActionExportRaw, []string{"e"}, "export raw"},
	{ActionShowKeyed, []string{"c"}, "show JSON"},
	{ActionShowData, []string{"d"}, "show data"},

	{ActionFocusNext, []string{"tab"}, "next pane"},
	{ActionFocusPrev, []string{"shift+tab"}, "prev pane"},
	{ActionSearch, []string{"/"}, "search"},
	{ActionHelp, []string{"?"}, "help"},
	{ActionTheme, []string{"ctrl+t"}, "theme"},
	{ActionQuit, []string{"ctrl+q"}, "quit"},

	{ActionGridUp, []string{"up", "k"}, "up"},
	{ActionGridDown, []string{"down", "j"}, "down"},
	{ActionGridLeft, []string{"left", "h"}, "left"},
	{ActionGridRight, []string{"right", "l"}, "right"},

	{ActionExtendUp, []string{"shift+up", "K"}, "extend up"},
	{ActionExtendDown, []string{"shift+down", "J"}, "extend down"},
	{ActionExtendLeft, []string{"shift+left", "H"}, "extend left"},
	{ActionExtendRight, []string{"shift+right", "L"}, "extend right"},

	{ActionClearSelection, []string{"esc"}, "clear selection"},
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	var km KeyMap
	for _, def := range defaultDefs {
		*bindingRef(&km, def.action) = bindingFromDef(cfg, def)
	}
	return km
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

func bindingRef(km *KeyMap, action Action) *key.Binding {
	switch action {
	case ActionCopy:
		return &km.Copy
	case ActionPaste:
		return &km.Paste
	case ActionExportRaw:
		return &km.ExportRaw
	case ActionShowKeyed:
		return &km.ShowKeyed
	case ActionShowData:
		return &km.ShowData
	case ActionFocusNext:
		return &km.FocusNext
	case ActionFocusPrev:
		return &km.FocusPrev
	case ActionSearch:
		return &km.Search
	case ActionHelp:
		return &km.Help
	case ActionTheme:
		return &km.Theme
	case ActionQuit:
		return &km.Quit
	case ActionGridUp:
		return &km.GridUp
	case ActionGridDown:
		return &km.GridDown
	case ActionGridLeft:
		return &km.GridLeft
	case ActionGridRight:
		return &km.GridRight
	case ActionExtendUp:
		return &km.ExtendUp
	case ActionExtendDown:
		return &km.ExtendDown
	case ActionExtendLeft:
		return &km.ExtendLeft
	case ActionExtendRight:
		return &km.ExtendRight
	case ActionClearSelection:
		return &km.ClearSelection
	default:
		return nil
	}
}

// BindingForAction returns the binding for the given action.
func BindingForAction(km KeyMap, action Action) key.Binding {
	if ref := bindingRef(&km, action); ref != nil {
		return *ref
	}
	return key.Binding{}
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BindingHint returns a single key hint for a binding, falling back to help text.
func BindingHint(binding key.Binding) string {
	key := PrimaryKey(binding)
	if key == "" {
		return binding.Help().Key
	}
	return key
}

// ActionInfo describes a configurable action for UI display.
type ActionInfo struct {
	Action Action
	Desc   string
	Group  string
}

// ActionInfos returns the ordered list of actions for the help overlay.
func ActionInfos() []ActionInfo {
	return []ActionInfo{
		{Action: ActionCopy, Desc: "Copy keyed JSON", Group: "Selection"},
		{Action: ActionPaste, Desc: "Log current selection", Group: "Selection"},
		{Action: ActionExportRaw, Desc: "Export raw selection", Group: "Selection"},
		{Action: ActionShowKeyed, Desc: "Show keyed JSON", Group: "Selection"},
		{Action: ActionShowData, Desc: "Log sheet data", Group: "Selection"},
		{Action: ActionClearSelection, Desc: "Clear selection", Group: "Selection"},
		{Action: ActionGridUp, Desc: "Move up", Group: "Grid"},
		{Action: ActionGridDown, Desc: "Move down", Group: "Grid"},
		{Action: ActionGridLeft, Desc: "Move left", Group: "Grid"},
		{Action: ActionGridRight, Desc: "Move right", Group: "Grid"},
		{Action: ActionExtendUp, Desc: "Extend up", Group: "Grid"},
		{Action: ActionExtendDown, Desc: "Extend down", Group: "Grid"},
		{Action: ActionExtendLeft, Desc: "Extend left", Group: "Grid"},
		{Action: ActionExtendRight, Desc: "Extend right", Group: "Grid"},
		{Action: ActionFocusNext, Desc: "Next pane", Group: "Global"},
		{Action: ActionFocusPrev, Desc: "Previous pane", Group: "Global"},
		{Action: ActionSearch, Desc: "Focus search", Group: "Global"},
		{Action: ActionHelp, Desc: "Toggle help", Group: "Global"},
		{Action: ActionTheme, Desc: "Cycle theme", Group: "Global"},
		{Action: ActionQuit, Desc: "Quit", Group: "Global"},
	}
}

package theme

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/glintedit/glint/internal/capture"
	"github.com/glintedit/glint/internal/style"
)

// luaScriptTimeout bounds theme script execution. A theme script that
// computes for longer than this is broken, not slow.
const luaScriptTimeout = 2 * time.Second

// LoadLua executes a sandboxed Lua theme script. The script must return
// a table:
//
//	return {
//	  name = "My Theme",
//	  background = "#282a36",
//	  foreground = "#f8f8f2",
//	  captures = {
//	    keyword = { fg = "#ff79c6", bold = true },
//	  },
//	}
//
// The sandbox opens only the base, table, string, and math libraries and
// strips the chunk loaders, so scripts cannot touch the filesystem or
// network. A missing file returns (nil, nil).
func LoadLua(path string) (*Theme, error) {
	data, err := readThemeFile(path)
	if err != nil || data == nil {
		return nil, err
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := openSafeLibs(L); err != nil {
		return nil, fmt.Errorf("initializing lua state: %w", err)
	}
	sandboxState(L)

	ctx, cancel := context.WithTimeout(context.Background(), luaScriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoString(string(data)); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	ret := L.Get(-1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ParseError{Path: path, Message: "script did not return a table"}
	}

	return themeFromTable(path, table)
}

// openSafeLibs opens the Lua libraries theme scripts may use.
func openSafeLibs(L *lua.LState) error {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return err
		}
	}
	return nil
}

// sandboxState removes globals that would let a script escape: the chunk
// loaders can read arbitrary files.
func sandboxState(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func themeFromTable(path string, table *lua.LTable) (*Theme, error) {
	name, _ := tableString(table, "name")
	if name == "" {
		return nil, ErrNoThemeName
	}

	t := &Theme{
		Name:          name,
		CaptureStyles: make(map[capture.Name]style.Style),
	}

	palette := []struct {
		key string
		dst *style.Color
	}{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"selection", &t.Selection},
		{"cursor", &t.Cursor},
		{"line_highlight", &t.LineHighlight},
	}
	for _, p := range palette {
		hex, _ := tableString(table, p.key)
		c, err := parseColor(path, p.key, hex)
		if err != nil {
			return nil, err
		}
		*p.dst = c
	}

	captures, ok := tableTable(table, "captures")
	if !ok {
		return t, nil
	}

	var convErr error
	captures.ForEach(func(key, value lua.LValue) {
		if convErr != nil {
			return
		}
		captureName, ok := key.(lua.LString)
		if !ok {
			return
		}
		entry, ok := value.(*lua.LTable)
		if !ok {
			return
		}

		fgHex, _ := tableString(entry, "fg")
		bgHex, _ := tableString(entry, "bg")
		fg, err := parseColor(path, "captures."+string(captureName)+".fg", fgHex)
		if err != nil {
			convErr = err
			return
		}
		bg, err := parseColor(path, "captures."+string(captureName)+".bg", bgHex)
		if err != nil {
			convErr = err
			return
		}

		t.CaptureStyles[capture.Name(captureName)] = captureStyle(fg, bg,
			tableBool(entry, "bold"),
			tableBool(entry, "italic"),
			tableBool(entry, "underline"))
	})
	if convErr != nil {
		return nil, convErr
	}

	return t, nil
}

func tableString(t *lua.LTable, key string) (string, bool) {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s), true
	}
	return "", false
}

func tableBool(t *lua.LTable, key string) bool {
	if b, ok := t.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

func tableTable(t *lua.LTable, key string) (*lua.LTable, bool) {
	if inner, ok := t.RawGetString(key).(*lua.LTable); ok {
		return inner, true
	}
	return nil, false
}

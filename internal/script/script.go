package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/interact/internal/input/event"
	"github.com/dshills/interact/internal/input/profile"
)

// ErrBadProfile is returned when a chunk does not return a binding
// table or an entry is malformed.
var ErrBadProfile = errors.New("script: bad profile chunk")

// LoadProfile evaluates a Lua chunk and installs the bindings of the
// table it returns into p. Existing bindings for other shortcuts are
// kept.
func LoadProfile(chunk string, p *profile.Profile) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(chunk); err != nil {
		return fmt.Errorf("evaluating profile chunk: %w", err)
	}
	return installReturn(L, p)
}

// LoadProfileFile evaluates a Lua file and installs the bindings of
// the table it returns into p.
func LoadProfileFile(path string, p *profile.Profile) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("evaluating profile file: %w", err)
	}
	return installReturn(L, p)
}

func installReturn(L *lua.LState, p *profile.Profile) error {
	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fmt.Errorf("%w: chunk must return a table", ErrBadProfile)
	}

	if err := eachEntry(tbl, "motion", func(e *lua.LTable) error {
		mods, err := profile.ParseModifiers(str(e, "mods"))
		if err != nil {
			return err
		}
		id, err := profile.ParseChannel(str(e, "id"))
		if err != nil {
			return err
		}
		act, err := action(e)
		if err != nil {
			return err
		}
		p.BindMotion(event.MotionShortcut{Mods: mods, ID: id}, nil, act)
		return nil
	}); err != nil {
		return err
	}

	if err := eachEntry(tbl, "click", func(e *lua.LTable) error {
		id, err := profile.ParseChannel(str(e, "id"))
		if err != nil {
			return err
		}
		count := num(e, "count")
		if count == 0 {
			count = 1
		}
		act, err := action(e)
		if err != nil {
			return err
		}
		p.BindClick(event.ClickShortcut{ID: id, Count: count}, nil, act)
		return nil
	}); err != nil {
		return err
	}

	return eachEntry(tbl, "key", func(e *lua.LTable) error {
		act, err := action(e)
		if err != nil {
			return err
		}
		if r := str(e, "rune"); r != "" {
			runes := []rune(r)
			if len(runes) != 1 {
				return fmt.Errorf("%w: rune %q", ErrBadProfile, r)
			}
			p.BindKey(event.KeyShortcut{Rune: runes[0]}, nil, act)
			return nil
		}
		if code, ok := e.RawGetString("code").(lua.LNumber); ok {
			mods, err := profile.ParseModifiers(str(e, "mods"))
			if err != nil {
				return err
			}
			p.BindKey(event.KeyShortcut{Mods: mods, Code: int(code)}, nil, act)
			return nil
		}
		return fmt.Errorf("%w: key binding needs rune or code", ErrBadProfile)
	})
}

// eachEntry calls fn for every array element of the named section.
// A missing section is fine; a section that is not a table of tables
// is not.
func eachEntry(tbl *lua.LTable, section string, fn func(e *lua.LTable) error) error {
	sec := tbl.RawGetString(section)
	if sec == lua.LNil {
		return nil
	}
	st, ok := sec.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%w: %q must be a table", ErrBadProfile, section)
	}
	var err error
	st.ForEach(func(_, v lua.LValue) {
		if err != nil {
			return
		}
		e, ok := v.(*lua.LTable)
		if !ok {
			err = fmt.Errorf("%w: %q entries must be tables", ErrBadProfile, section)
			return
		}
		err = fn(e)
	})
	return err
}

func action(e *lua.LTable) (profile.Action, error) {
	name := str(e, "action")
	act, ok := profile.ParseAction(name)
	if !ok {
		return profile.ActionNone, fmt.Errorf("%w: %q", profile.ErrUnknownAction, name)
	}
	return act, nil
}

func str(e *lua.LTable, key string) string {
	if s, ok := e.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func num(e *lua.LTable, key string) int {
	if n, ok := e.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

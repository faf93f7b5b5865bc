// Package script loads binding profiles defined in Lua.
//
// A profile chunk is a script that returns a table with optional
// "motion", "click" and "key" sections, each an array of binding
// specs. Action, channel and modifier names use the same vocabulary
// as the JSON profile format:
//
//	return {
//	  motion = {
//	    { id = "left", action = "rotate" },
//	    { mods = "shift", id = "left", action = "zoomOnRegion" },
//	  },
//	  click = {
//	    { id = "right", count = 2, action = "center" },
//	  },
//	  key = {
//	    { rune = "n", action = "align" },
//	    { mods = "shift", code = 38, action = "rotateYPos" },
//	  },
//	}
//
// Because a chunk is a full Lua program, profiles can compute their
// bindings (loops over channels, shared modifier prefixes) instead of
// enumerating them.
package script

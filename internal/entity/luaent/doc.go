// Package luaent loads entities from Lua scripts.
//
// A script defines one entity by returning a table:
//
//	return {
//		name = "browser",
//		dispatchAction = function(action, flags)
//			-- flags.key, flags.mods, flags.chainedFrom
//			return false -- autoExit
//		end,
//	}
//
// The name field is optional; when omitted the entity is named after
// the script file. Scripts run in a sandboxed interpreter with only
// the base, table, string, and math libraries opened. The load family
// (dofile, loadfile, load, loadstring) is removed so scripts cannot
// pull in code outside the configured entities directory.
//
// All entities loaded by one Engine share a single Lua state. The
// engine runs on the dispatch goroutine and is not safe for
// concurrent use.
package luaent

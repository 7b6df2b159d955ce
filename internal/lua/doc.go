// Package lua renders the card database and layout overrides as Lua table
// constructors, and embeds raw script text as Lua string assignments.
//
// Output is deterministic: records keep database order, fields keep the
// order of card.ScalarFields and card.SideFields, and layout keys are
// always written as type, sides, aspect, rotation, grid.
//
// Two escaping rules apply:
//
//   - EscapeText for data values: trimmed, with backslash, double quote,
//     CR, LF and TAB turned into Lua escape sequences.
//   - EscapeCode for script text: trimmed, backslash and double quote
//     escaped, newlines flattened to spaces so the script fits on one line.
package lua

// Package build runs the generator pipeline: fetch the card database,
// correct and augment it, load layout overrides, render the Lua tables,
// collect the script fragments and emit one script.
//
// Every input is loaded and rendered in memory before anything is written,
// so a failed run leaves an existing output file untouched.
package build

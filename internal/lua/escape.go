package lua

import (
	"strings"

	"github.com/hellscube/cubegen/internal/card"
)

// A Replacer makes a single pass, so a backslash it inserts is never
// escaped a second time.
var (
	textEscaper = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\r", `\r`,
		"\n", `\n`,
		"\t", `\t`,
	)
	textUnescaper = strings.NewReplacer(
		`\\`, `\`,
		`\"`, `"`,
		`\r`, "\r",
		`\n`, "\n",
		`\t`, "\t",
	)
	codeEscaper = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\r\n", " ",
		"\r", " ",
		"\n", " ",
	)
)

// EscapeText renders a database value for use inside a double-quoted Lua
// string. Null, empty, zero and false values render as "", so a CMC of 0
// reaches Lua as an empty string and readers need `tonumber(cmc) or 0`.
func EscapeText(v card.Value) string {
	if v.Falsy() {
		return ""
	}
	return EscapeString(v.Text)
}

// EscapeString applies the data escaping rule to a plain string
func EscapeString(s string) string {
	return textEscaper.Replace(strings.TrimSpace(s))
}

// UnescapeText reverses EscapeString's character escapes.
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// EscapeCode flattens script text into the body of a one-line Lua string.
func EscapeCode(s string) string {
	return codeEscaper.Replace(strings.TrimSpace(s))
}

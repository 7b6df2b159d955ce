package lua

import (
	"strconv"
	"strings"

	"github.com/hellscube/cubegen/internal/card"
	"github.com/hellscube/cubegen/internal/layout"
)

// Global names assigned in the generated script
const (
	DatabaseName    = "DATABASE"
	LayoutsName     = "LAYOUTS"
	CardScriptName  = "CARD_SCRIPT"
	ProxyScriptName = "PROXY_SCRIPT"
)

// Database renders `DATABASE = {...}` with one table per card.
func Database(cards []*card.Card) string {
	var b strings.Builder
	b.WriteString(DatabaseName)
	b.WriteString(" = {")
	for i, c := range cards {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCard(&b, c)
	}
	b.WriteByte('}')
	return b.String()
}

func writeCard(b *strings.Builder, c *card.Card) {
	b.WriteByte('{')
	for _, f := range card.ScalarFields {
		writeField(b, f.Key, *f.Ref(c))
		b.WriteByte(',')
	}

	b.WriteString("Sides={")
	for i, face := range c.Faces() {
		if i > 0 {
			b.WriteByte(',')
		}
		writeFace(b, &face)
	}
	b.WriteString("}}")
}

func writeFace(b *strings.Builder, face *card.Face) {
	b.WriteByte('{')
	for i, f := range card.SideFields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeField(b, f.Key, *f.Ref(face))
	}
	b.WriteByte('}')
}

// writeField writes ["Key"]="value"
func writeField(b *strings.Builder, key string, v card.Value) {
	b.WriteString(`["`)
	b.WriteString(key)
	b.WriteString(`"]="`)
	b.WriteString(EscapeText(v))
	b.WriteByte('"')
}

// Layouts renders `LAYOUTS = {...}` keyed by layout name. Entries keep file
// order, so with duplicate names the last one wins at runtime.
func Layouts(layouts []layout.Layout) string {
	var b strings.Builder
	b.WriteString(LayoutsName)
	b.WriteString(" = {")
	for i := range layouts {
		if i > 0 {
			b.WriteByte(',')
		}
		writeLayout(&b, &layouts[i])
	}
	b.WriteByte('}')
	return b.String()
}

func writeLayout(b *strings.Builder, l *layout.Layout) {
	b.WriteString(`["`)
	b.WriteString(EscapeString(l.Name))
	b.WriteString(`"]={type="`)
	b.WriteString(EscapeString(l.Type))
	b.WriteString(`",sides=`)
	b.WriteString(strconv.Itoa(l.Sides))

	if l.Aspect != nil {
		b.WriteString(`,aspect="`)
		b.WriteString(EscapeString(*l.Aspect))
		b.WriteByte('"')
	}
	if l.Rotation != nil {
		b.WriteString(",rotation=")
		b.WriteString(strconv.Itoa(*l.Rotation))
	}
	if l.Grid != nil {
		b.WriteString(",grid={x=")
		b.WriteString(strconv.Itoa(l.Grid.X))
		b.WriteString(",y=")
		b.WriteString(strconv.Itoa(l.Grid.Y))
		b.WriteByte('}')
	}
	b.WriteByte('}')
}

// Assign renders `NAME = "code"` with the script flattened by EscapeCode.
func Assign(name, code string) string {
	return name + ` = "` + EscapeCode(code) + `"`
}

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hellscube/cubegen/internal/ansi"
	"github.com/hellscube/cubegen/internal/card"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display a card from the database with ANSI art",
	Long: `Show prints a card exactly as the generated script sees it: the card fields,
then every face in order. When the card image can be downloaded and decoded
(PNG, JPEG or GIF) it is drawn next to the text as ANSI art.

Examples:
  cubegen show "Spork Elemental"
  cubegen show --art=false plains`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		showArt, _ := cmd.Flags().GetBool("art")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := loadDatabase(cmd, cfg)
		if err != nil {
			return err
		}

		c, err := db.Find(name)
		if err != nil {
			return err
		}

		var art string
		if showArt && !c.Image.Blank() {
			img, err := ansi.FetchImage(cmd.Context(), http.DefaultClient, strings.TrimSpace(c.Image.Text))
			if err != nil {
				// missing art is not fatal
				logger.Debug("No art for card", zap.String("card", c.Name.Text), zap.Error(err))
			} else {
				art = ansi.Render(img, 30, 21)
			}
		}

		displayCard(cmd.OutOrStdout(), c, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("art", true, "download the card image and render it as ANSI art")
}

// cardLines builds the text column for a card
func cardLines(c *card.Card, width int) []string {
	label := func(name string) string { return colorize.CyanString("%-8s", name+":") }
	value := func(v card.Value) string { return colorize.HiWhiteString("%s", strings.TrimSpace(v.Text)) }

	var lines []string
	lines = append(lines, label("Card")+value(c.Name))

	for _, f := range []struct {
		name string
		v    card.Value
	}{
		{"Set", c.Set},
		{"Creator", c.Creator},
		{"CMC", c.CMC},
		{"Colors", c.Colors},
		{"Tags", c.Tags},
		{"Format", c.Constructed},
	} {
		if !f.v.Blank() {
			lines = append(lines, label(f.name)+value(f.v))
		}
	}

	faces := c.Faces()
	for i, face := range faces {
		lines = append(lines, "")
		if len(faces) > 1 {
			lines = append(lines, colorize.YellowString("Face %d", i+1))
		}

		header := strings.TrimSpace(face.Cost.Text)
		if header != "" {
			lines = append(lines, colorize.HiWhiteString("%s", header))
		}
		lines = append(lines, colorize.CyanString("%s", typeLine(&face)))

		if !face.TextBox.Blank() {
			lines = append(lines, ansi.Wrap(strings.TrimSpace(face.TextBox.Text), width)...)
		}
		if !face.FlavorText.Blank() {
			for _, l := range ansi.Wrap(strings.TrimSpace(face.FlavorText.Text), width) {
				lines = append(lines, colorize.New(colorize.Italic).Sprint(l))
			}
		}

		switch {
		case !face.Power.Blank() || !face.Toughness.Blank():
			lines = append(lines, colorize.HiWhiteString("%s/%s", face.Power.Text, face.Toughness.Text))
		case !face.Loyalty.Blank():
			lines = append(lines, colorize.HiWhiteString("Loyalty %s", face.Loyalty.Text))
		}
	}

	if !c.Rulings.Blank() {
		lines = append(lines, "", colorize.CyanString("Rulings:"))
		lines = append(lines, ansi.Wrap(strings.TrimSpace(c.Rulings.Text), width)...)
	}

	return lines
}

// typeLine joins supertypes, types and subtypes as printed on a card
func typeLine(f *card.Face) string {
	var parts []string
	for _, v := range []card.Value{f.Supertypes, f.CardTypes} {
		if !v.Blank() {
			parts = append(parts, strings.TrimSpace(v.Text))
		}
	}
	line := strings.Join(parts, " ")
	if !f.Subtypes.Blank() {
		line += " — " + strings.TrimSpace(f.Subtypes.Text)
	}
	return line
}

// displayCard prints the art on the left and the card text on the right
func displayCard(out io.Writer, c *card.Card, art string) {
	var artLines []string
	maxArtWidth := 0
	if art != "" {
		artLines = strings.Split(strings.TrimSuffix(art, "\n"), "\n")
		for _, line := range artLines {
			if w := len([]rune(ansi.Strip(line))); w > maxArtWidth {
				maxArtWidth = w
			}
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := 0
	if maxArtWidth > 0 {
		infoStartCol = maxArtWidth + spacing
	}

	infoWidth := width - infoStartCol - 4
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines := cardLines(c, infoWidth)

	fmt.Fprintln(out)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			visibleWidth := len([]rune(ansi.Strip(artLines[i])))
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
}

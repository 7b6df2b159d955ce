package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hellscube/cubegen/internal/config"
	"github.com/hellscube/cubegen/internal/database"
	"github.com/hellscube/cubegen/internal/fragment"
	"github.com/hellscube/cubegen/internal/layout"
	"github.com/hellscube/cubegen/internal/lua"
	"github.com/hellscube/cubegen/internal/validator"
)

// Header is the first line of every generated script
const Header = "-- Generated by cubegen. DO NOT EDIT."

// Pipeline wires the generator to its inputs. FS resolves every path from
// Config; production runs use os.DirFS(".").
type Pipeline struct {
	Fetcher database.Fetcher
	FS      fs.FS
	Config  *config.Config
	Logger  *zap.Logger
}

// Summary reports what went into a generated script
type Summary struct {
	Cards     int
	Faces     int
	Layouts   int
	Fragments int
	Warnings  []string
}

// ErrInvalid is returned when validation finds errors in the inputs
var ErrInvalid = errors.New("invalid generator input")

// Inputs is everything the script is rendered from
type Inputs struct {
	Database    *database.Database
	Layouts     []layout.Layout
	CardScript  string
	ProxyScript string
	Fragments   []fragment.Fragment
}

// Load reads every input in pipeline order
func (p *Pipeline) Load(ctx context.Context) (*Inputs, error) {
	log := p.logger()
	cfg := p.Config

	log.Info("Fetching card database", zap.String("url", cfg.DatabaseURL))
	db, err := database.Load(ctx, p.Fetcher)
	if err != nil {
		return nil, fmt.Errorf("fetching database: %w", err)
	}
	log.Info("Loaded card database", zap.Int("cards", len(db.Cards)))

	layouts, err := layout.LoadFS(p.FS, fsPath(cfg.LayoutsFile))
	if err != nil {
		return nil, fmt.Errorf("loading layouts: %w", err)
	}
	log.Info("Loaded layouts", zap.Int("count", len(layouts)), zap.String("path", cfg.LayoutsFile))

	in := &Inputs{Database: db, Layouts: layouts}

	if in.CardScript, err = p.readScript(cfg.CardScript); err != nil {
		return nil, err
	}
	if in.ProxyScript, err = p.readScript(cfg.ProxyScript); err != nil {
		return nil, err
	}

	sourceDir := fsPath(cfg.SourceDir)
	in.Fragments, err = fragment.Collect(p.FS, sourceDir, cfg.FragmentExt,
		embeddedIn(sourceDir, cfg.CardScript, cfg.ProxyScript)...)
	if err != nil {
		return nil, fmt.Errorf("collecting fragments: %w", err)
	}
	for _, f := range in.Fragments {
		log.Debug("Collected fragment", zap.String("name", f.Name), zap.Int("bytes", len(f.Text)))
	}
	log.Info("Collected fragments", zap.Int("count", len(in.Fragments)), zap.String("dir", cfg.SourceDir))

	return in, nil
}

// Render validates the inputs and writes the script to w
func (p *Pipeline) Render(in *Inputs, w io.Writer) (Summary, error) {
	log := p.logger()

	results := validator.NewValidator(in.Database.Cards, in.Layouts).Validate()
	for _, warning := range results.Warnings {
		log.Warn("Input warning", zap.String("warning", warning))
	}
	if !results.OK() {
		for _, e := range results.Errors {
			log.Error("Input error", zap.String("error", e))
		}
		return Summary{}, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(results.Errors, "; "))
	}

	blocks := []string{
		Header,
		lua.Database(in.Database.Cards),
		lua.Layouts(in.Layouts),
		lua.Assign(lua.CardScriptName, in.CardScript),
		lua.Assign(lua.ProxyScriptName, in.ProxyScript),
	}
	for _, f := range in.Fragments {
		blocks = append(blocks, f.Text)
	}

	if _, err := io.WriteString(w, strings.Join(blocks, "\n")); err != nil {
		return Summary{}, fmt.Errorf("writing script: %w", err)
	}

	return Summary{
		Cards:     len(in.Database.Cards),
		Faces:     in.Database.FaceCount(),
		Layouts:   len(in.Layouts),
		Fragments: len(in.Fragments),
		Warnings:  results.Warnings,
	}, nil
}

// Run loads every input and renders the script to w
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (Summary, error) {
	in, err := p.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return p.Render(in, w)
}

func (p *Pipeline) readScript(name string) (string, error) {
	data, err := fs.ReadFile(p.FS, fsPath(name))
	if err != nil {
		return "", fmt.Errorf("reading script %s: %w", name, err)
	}
	p.logger().Debug("Read embedded script", zap.String("path", name), zap.Int("bytes", len(data)))
	return string(data), nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// fsPath turns a config path into an io/fs path
func fsPath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// embeddedIn returns the base names of the scripts that live directly in
// dir, so they are not appended a second time as fragments.
func embeddedIn(dir string, scripts ...string) []string {
	var names []string
	for _, s := range scripts {
		p := fsPath(s)
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	return names
}

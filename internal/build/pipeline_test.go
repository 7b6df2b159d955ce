package build

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellscube/cubegen/internal/card"
	"github.com/hellscube/cubegen/internal/config"
	"github.com/hellscube/cubegen/internal/database"
)

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context) ([]*card.Card, error) {
	return nil, errors.New("connection refused")
}

func decodeCards(t *testing.T, src string) []*card.Card {
	t.Helper()

	var cards []*card.Card
	require.NoError(t, json.Unmarshal([]byte(src), &cards))
	return cards
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts.yaml":         {Data: []byte("- {name: split, type: split, sides: 2, rotation: 90}\n")},
		"src/card_script.lua":  {Data: []byte("local card = \"x\"\nreturn card\n")},
		"src/proxy_script.lua": {Data: []byte("return 'proxy'\n")},
		"src/card10.lua":       {Data: []byte("-- ten")},
		"src/card2.lua":        {Data: []byte("-- two")},
		"src/card1.lua":        {Data: []byte("-- one")},
	}
}

func newPipeline(t *testing.T, fetcher database.Fetcher, fsys fstest.MapFS) *Pipeline {
	t.Helper()

	return &Pipeline{
		Fetcher: fetcher,
		FS:      fsys,
		Config:  config.Default(),
		Logger:  zap.NewNop(),
	}
}

func TestRun(t *testing.T) {
	cards := decodeCards(t, `[{"Name":"A","Card Type(s)":["Land",null,null,null]}, {"Name":"B"}]`)
	p := newPipeline(t, database.StaticFetcher(cards), testFS())

	var out bytes.Buffer
	summary, err := p.Run(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Cards)
	assert.Equal(t, 7, summary.Faces)
	assert.Equal(t, 1, summary.Layouts)
	assert.Equal(t, 3, summary.Fragments)
	assert.Contains(t, summary.Warnings, `card "B" has no faces`)

	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 8)

	assert.Equal(t, Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "DATABASE = {"))
	assert.True(t, strings.HasPrefix(lines[1], `DATABASE = {{["Name"]="A",`))
	assert.Contains(t, lines[1], `{["Name"]="B",["Image"]="",["Creator"]="",["Set"]="",["Constructed"]="",["Rulings"]="",["CMC"]="",["Color(s)"]="",["Tags"]="",Sides={}}`)

	want := []string{
		`LAYOUTS = {["split"]={type="split",sides=2,rotation=90}}`,
		`CARD_SCRIPT = "local card = \"x\" return card"`,
		`PROXY_SCRIPT = "return 'proxy'"`,
		"-- one",
		"-- two",
		"-- ten",
	}
	if diff := cmp.Diff(want, lines[2:]); diff != "" {
		t.Errorf("script tail mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFirstRecordHasOneFace(t *testing.T) {
	cards := decodeCards(t, `[{"Name":"A","Card Type(s)":["Land",null,null,null]}, {"Name":"B"}]`)
	p := newPipeline(t, database.StaticFetcher(cards), testFS())

	in, err := p.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, in.Database.Cards[0].Faces(), 1)
	assert.Empty(t, in.Database.Cards[1].Faces())
}

func TestRunFailures(t *testing.T) {
	without := func(name string) fstest.MapFS {
		fsys := testFS()
		delete(fsys, name)
		return fsys
	}

	tests := []struct {
		name    string
		fetcher database.Fetcher
		fsys    fstest.MapFS
		wantErr string
	}{
		{"fetch fails", failingFetcher{}, testFS(), "fetching database"},
		{"layouts missing", database.StaticFetcher(nil), without("layouts.yaml"), "loading layouts"},
		{"card script missing", database.StaticFetcher(nil), without("src/card_script.lua"), "reading script src/card_script.lua"},
		{"proxy script missing", database.StaticFetcher(nil), without("src/proxy_script.lua"), "reading script src/proxy_script.lua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := newPipeline(t, tt.fetcher, tt.fsys).Run(context.Background(), &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRunInvalidLayouts(t *testing.T) {
	fsys := testFS()
	fsys["layouts.yaml"] = &fstest.MapFile{Data: []byte("- {name: broken, type: card, sides: 0}\n")}

	var out bytes.Buffer
	_, err := newPipeline(t, database.StaticFetcher(nil), fsys).Run(context.Background(), &out)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "sides must be at least 1")
	assert.Zero(t, out.Len())
}

func TestScriptsOutsideSourceDirAreNotSkipped(t *testing.T) {
	fsys := testFS()
	fsys["scripts/card.lua"] = &fstest.MapFile{Data: []byte("-- card")}
	fsys["scripts/proxy.lua"] = &fstest.MapFile{Data: []byte("-- proxy")}

	p := newPipeline(t, database.StaticFetcher(nil), fsys)
	p.Config.CardScript = "./scripts/card.lua"
	p.Config.ProxyScript = "scripts/proxy.lua"

	in, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-- card", in.CardScript)

	// card_script.lua and proxy_script.lua are now ordinary fragments
	assert.Len(t, in.Fragments, 5)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "Global.lua")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	err := WriteFile(path, func(w *bytes.Buffer) error {
		_, err := w.WriteString("new")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileKeepsOldContentOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Global.lua")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	err := WriteFile(path, func(w *bytes.Buffer) error {
		w.WriteString("partial")
		return errors.New("boom")
	})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestWriteFileUnwritableDestination(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, func(w *bytes.Buffer) error { return nil })
	assert.Error(t, err)
}

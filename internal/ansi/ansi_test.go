package ansi

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRender(t *testing.T) {
	art := Render(solid(color.RGBA{255, 0, 0, 255}, 16, 16), 4, 3)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("▀", 4), Strip(line))
	}
	assert.Contains(t, art, "\x1b[38;2;")
	assert.Contains(t, art, "\x1b[48;2;")
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "plain", Strip("\x1b[31mpl\x1b[0main"))
	assert.Equal(t, "", Strip(""))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"Trample, haste", "At the beginning of", "the next end step"},
		Wrap("Trample, haste\nAt the beginning of the next end step", 20))
	assert.Equal(t, []string{""}, Wrap("", 20))
}

func TestFetchImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(color.White, 2, 2)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/card.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	img, err := FetchImage(context.Background(), srv.Client(), srv.URL+"/card.png")
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = FetchImage(context.Background(), srv.Client(), srv.URL+"/missing.png")
	assert.Error(t, err)
}

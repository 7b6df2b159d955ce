package fragment

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalOrder(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "numeric suffix",
			in:   []string{"card2.lua", "card10.lua", "card1.lua"},
			want: []string{"card1.lua", "card2.lua", "card10.lua"},
		},
		{
			name: "numeric prefix",
			in:   []string{"10_ui.lua", "2_util.lua", "1_init.lua"},
			want: []string{"1_init.lua", "2_util.lua", "10_ui.lua"},
		},
		{
			name: "mixed text",
			in:   []string{"b1.lua", "a10.lua", "a9.lua"},
			want: []string{"a9.lua", "a10.lua", "b1.lua"},
		},
		{
			name: "leading zeros",
			in:   []string{"x010.lua", "x9.lua", "x10.lua"},
			want: []string{"x9.lua", "x10.lua", "x010.lua"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.in)
			slices.SortFunc(got, Compare)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, NaturalLess("card2.lua", "card10.lua"))
	assert.False(t, NaturalLess("card10.lua", "card2.lua"))
	assert.False(t, NaturalLess("same.lua", "same.lua"))
	assert.True(t, NaturalLess("card", "card1"))
}

func TestCollect(t *testing.T) {
	fsys := fstest.MapFS{
		"src/card10.lua":      {Data: []byte("-- ten\n")},
		"src/card2.lua":       {Data: []byte("-- two\n")},
		"src/card1.lua":       {Data: []byte("-- one\n")},
		"src/readme.md":       {Data: []byte("not lua")},
		"src/card_script.lua": {Data: []byte("-- embedded separately")},
		"src/nested/x.lua":    {Data: []byte("-- not scanned")},
	}

	fragments, err := Collect(fsys, "src", ".lua", "card_script.lua")
	require.NoError(t, err)

	var names, texts []string
	for _, f := range fragments {
		names = append(names, f.Name)
		texts = append(texts, f.Text)
	}
	assert.Equal(t, []string{"card1.lua", "card2.lua", "card10.lua"}, names)
	assert.Equal(t, []string{"-- one\n", "-- two\n", "-- ten\n"}, texts)
}

func TestCollectMissingDir(t *testing.T) {
	_, err := Collect(fstest.MapFS{}, "src", ".lua")
	assert.Error(t, err)
}

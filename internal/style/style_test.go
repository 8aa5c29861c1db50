package style

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataFlags(t *testing.T) {
	m := Of(Bold, Code)
	assert.True(t, m.IsBold())
	assert.True(t, m.IsCode())
	assert.False(t, m.IsItalic())
	assert.Equal(t, "bold+code", m.String())

	m = m.Set(Bold, false).Set(Underline, true)
	assert.Equal(t, Of(Code, Underline), m)
	assert.Equal(t, "plain", Default.String())
	assert.Len(t, Flags(), 5)
}

func TestParseFlag(t *testing.T) {
	for _, f := range Flags() {
		got, ok := ParseFlag(f.String())
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}
	got, ok := ParseFlag("  StrikeThrough ")
	assert.True(t, ok)
	assert.Equal(t, Strikethrough, got)

	_, ok = ParseFlag("blink")
	assert.False(t, ok)
}

func TestMetadataJSON(t *testing.T) {
	m := Of(Italic, Strikethrough)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isBold":false,"isItalic":true,"isUnderline":false,"isCode":false,"isStrikethrough":true}`, string(data))

	var back Metadata
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)

	require.NoError(t, json.Unmarshal([]byte(`{"isCode":true}`), &back))
	assert.Equal(t, Of(Code), back)
}

func TestCompress(t *testing.T) {
	b, i := Of(Bold), Of(Italic)
	tests := []struct {
		name   string
		styles []Metadata
		want   []Run
	}{
		{"empty", nil, []Run{}},
		{"single", []Metadata{b}, []Run{{b, 0, 1}}},
		{"uniform", []Metadata{b, b, b}, []Run{{b, 0, 3}}},
		{"last run differs", []Metadata{b, b, i}, []Run{{b, 0, 2}, {i, 2, 3}}},
		{"alternating", []Metadata{b, i, b}, []Run{{b, 0, 1}, {i, 1, 2}, {b, 2, 3}}},
		{
			"hello world sample",
			[]Metadata{b, b, b, 0, 0, b, 0, 0, b, 0},
			[]Run{{b, 0, 3}, {0, 3, 5}, {b, 5, 6}, {0, 6, 8}, {b, 8, 9}, {0, 9, 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.styles)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func randomStyles(r *rand.Rand, n int) []Metadata {
	out := make([]Metadata, n)
	for i := range out {
		// small alphabet so runs actually form
		out[i] = Metadata(r.Intn(4))
	}
	return out
}

func TestCompressProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		styles := randomStyles(r, 1+r.Intn(40))
		runs := Compress(styles)

		require.NotEmpty(t, runs)
		assert.Equal(t, 0, runs[0].Start)
		assert.Equal(t, len(styles), runs[len(runs)-1].End)
		for k, run := range runs {
			assert.Less(t, run.Start, run.End)
			if k+1 < len(runs) {
				assert.Equal(t, run.End, runs[k+1].Start, "gap or overlap")
				assert.NotEqual(t, run.Metadata, runs[k+1].Metadata, "adjacent runs must differ")
			}
		}
		assert.Equal(t, styles, Expand(runs))
	}
}

func TestAttributes(t *testing.T) {
	b := Of(Bold)
	attrs := Attributes([]Metadata{b, b, 0, Of(Bold, Italic)})
	require.Len(t, attrs, 3)
	assert.Equal(t, [2]int{0, 1}, attrs[0].Range)
	assert.Equal(t, []string{"bold"}, attrs[0].Flags)
	assert.Equal(t, [2]int{2, 2}, attrs[1].Range)
	assert.Empty(t, attrs[1].Flags)
	assert.Equal(t, [2]int{3, 3}, attrs[2].Range)
	assert.Equal(t, Of(Bold, Italic), attrs[2].Metadata)

	assert.Empty(t, Attributes(nil))
}

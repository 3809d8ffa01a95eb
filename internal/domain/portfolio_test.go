package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseBlockKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseBlockKind("video")
	assert.True(t, errors.Is(err, ErrInvalidKind))
}

func TestContentBlock_UnmarshalClampsSpans(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCols int
		wantRows int
	}{
		{"missing spans default to one", `{"id":"1","type":"text","title":"t"}`, 1, 1},
		{"oversized spans are clamped", `{"id":"1","type":"text","title":"t","colSpan":9,"rowSpan":3}`, 4, 2},
		{"negative spans are clamped", `{"id":"1","type":"text","title":"t","colSpan":-2,"rowSpan":-1}`, 1, 1},
		{"in range spans are kept", `{"id":"1","type":"text","title":"t","colSpan":3,"rowSpan":2}`, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ContentBlock
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			assert.Equal(t, tt.wantCols, b.ColumnSpan)
			assert.Equal(t, tt.wantRows, b.RowSpan)
		})
	}
}

func TestContentBlock_MarshalUsesSnapshotFieldNames(t *testing.T) {
	b := ContentBlock{ID: "7", Kind: KindImage, ImageURL: "https://example.com/a.jpg", ColumnSpan: 2, RowSpan: 1}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"7","type":"image","title":"","imageUrl":"https://example.com/a.jpg","colSpan":2,"rowSpan":1}`, string(data))
}

func TestContentBlock_Set(t *testing.T) {
	var b ContentBlock
	require.NoError(t, b.Set(BlockTitle, "Reels"))
	require.NoError(t, b.Set(BlockURL, "https://example.com"))
	assert.Equal(t, "Reels", b.Title)
	assert.Equal(t, "https://example.com", b.URL)

	err := b.Set("colSpan", "4")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestProfile_SetAndGet(t *testing.T) {
	p := DefaultProfile()

	for _, f := range ProfileFields {
		require.NoError(t, p.Set(f, "value-"+string(f)))
		got, err := p.Get(f)
		require.NoError(t, err)
		assert.Equal(t, "value-"+string(f), got)
	}

	assert.ErrorIs(t, p.Set("password", "x"), ErrUnknownField)
	_, err := p.Get("password")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDefaultBlocks_OneOfEachKind(t *testing.T) {
	blocks := DefaultBlocks()
	require.Len(t, blocks, 5)

	seen := map[BlockKind]int{}
	for _, b := range blocks {
		seen[b.Kind]++
		assert.GreaterOrEqual(t, b.ColumnSpan, MinSpan)
		assert.LessOrEqual(t, b.ColumnSpan, MaxColumnSpan)
		assert.GreaterOrEqual(t, b.RowSpan, MinSpan)
		assert.LessOrEqual(t, b.RowSpan, MaxRowSpan)
	}
	for _, k := range Kinds {
		assert.Equal(t, 1, seen[k], "kind %s", k)
	}
}

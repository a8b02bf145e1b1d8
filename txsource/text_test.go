package txsource

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailbase-oss/ptfmine/item"
)

func TestTextParsesAndInterns(t *testing.T) {
	r := strings.NewReader("10 20 10\n\n30\n")
	src := NewText(r)

	require.True(t, src.Next())
	assert.Equal(t, []item.Item{0, 1}, src.Transaction()) // 10->0, 20->1, dup dropped

	require.True(t, src.Next())
	assert.Equal(t, []item.Item{2}, src.Transaction()) // 30->2

	require.False(t, src.Next())
	require.NoError(t, src.Err())
	assert.Equal(t, 2, src.N())

	orig, ok := src.Dictionary().Original(1)
	require.True(t, ok)
	assert.Equal(t, 20, orig)
}

func TestTextRejectsMalformedToken(t *testing.T) {
	src := NewText(strings.NewReader("1 foo\n"))
	assert.False(t, src.Next())
	assert.Error(t, src.Err())
}

func TestTextRejectsNegativeID(t *testing.T) {
	src := NewText(strings.NewReader("1 -2\n"))
	assert.False(t, src.Next())
	assert.Error(t, src.Err())
}

func TestGzipText(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("1 2\n3\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	src, err := NewGzipText(&buf)
	require.NoError(t, err)

	require.True(t, src.Next())
	assert.Equal(t, []item.Item{0, 1}, src.Transaction())
	require.True(t, src.Next())
	assert.Equal(t, []item.Item{2}, src.Transaction())
	require.False(t, src.Next())
	require.NoError(t, src.Err())
}

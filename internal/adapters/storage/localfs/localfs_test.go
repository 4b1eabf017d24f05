package localfs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s := New(dir)

	url, err := s.Save(context.Background(), "ms300 photo.png", strings.NewReader("data"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, "-ms300-photo.png"))

	b, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a_b-c.1.png", sanitizeFileName("a_b-c.1.png"))
	assert.Equal(t, "a-b.png", sanitizeFileName("a b.png"))
	assert.Equal(t, "file", sanitizeFileName(""))
	assert.Equal(t, "file", sanitizeFileName("."))
	// path components are stripped, not encoded
	assert.Equal(t, "passwd", sanitizeFileName("../../etc/passwd"))
}

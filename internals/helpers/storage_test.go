package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueFilenameSanitizes(t *testing.T) {
	name := GenerateUniqueFilename("lesson", "وثيقة درس (1).pdf")
	assert.True(t, strings.HasPrefix(name, "lesson/"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, "(")
	assert.NotContains(t, name, " ")
}

func TestGenerateUniqueFilenameIsUnique(t *testing.T) {
	a := GenerateUniqueFilename("receipts", "r.webp")
	b := GenerateUniqueFilename("receipts", "r.webp")
	assert.NotEqual(t, a, b)
}

func TestExtractStoragePath(t *testing.T) {
	bucket, path, err := ExtractStoragePath(
		"https://example.supabase.co/storage/v1/object/public/content-files/lesson/20260830-abc-file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "content-files", bucket)
	assert.Equal(t, "lesson/20260830-abc-file.pdf", path)
}

func TestExtractStoragePathRejectsOtherURLs(t *testing.T) {
	_, _, err := ExtractStoragePath("https://example.com/some/other/path")
	assert.Error(t, err)

	_, _, err = ExtractStoragePath("https://example.supabase.co/storage/v1/object/public/onlybucket")
	assert.Error(t, err)
}

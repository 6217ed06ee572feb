package dataset

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = "model_id,category,correct\nalpha,Math,1\n"

func TestStageInputPlainFilePassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	require.NoError(t, os.WriteFile(path, []byte(samplePayload), 0644))

	staged, dir, err := StageInput(path)
	require.NoError(t, err)
	assert.Equal(t, path, staged)
	assert.Empty(t, dir)
}

func TestStageInputGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	staged, dir, err := StageInput(path)
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	assert.NotEmpty(t, dir)
	assert.Equal(t, "runs.csv", filepath.Base(staged))
	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, samplePayload, string(content))
}

func TestStageInputLZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv.lz4")
	f, err := os.Create(path)
	require.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	require.NoError(t, f.Close())

	staged, dir, err := StageInput(path)
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	assert.Equal(t, "runs.csv", filepath.Base(staged))
	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, samplePayload, string(content))
}

func TestStageInputZipPicksLargestEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	small, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = small.Write([]byte("notes"))
	require.NoError(t, err)
	large, err := zw.Create("runs.csv")
	require.NoError(t, err)
	_, err = large.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	staged, dir, err := StageInput(path)
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	assert.Equal(t, "runs.csv", filepath.Base(staged))
	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, samplePayload, string(content))
}

func TestStageInputCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, _, err := StageInput(path)
	assert.Error(t, err)
}

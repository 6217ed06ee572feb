package dataset

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
	uuid "github.com/satori/go.uuid"
)

// StageInput prepares an input file for import: archives are unpacked into a
// fresh staging directory, plain files are returned as-is. The caller owns
// the returned directory (empty when no staging was needed).
func StageInput(path string) (filePath string, stagingDir string, err error) {
	switch filepath.Ext(path) {
	case ".zip", ".gz", ".lz4":
	default:
		return path, "", nil
	}
	stagingDir = filepath.Join(os.TempDir(), "benchgraph-"+uuid.NewV4().String())
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return "", "", err
	}
	unpacked, err := unpackArchive(path, stagingDir)
	if err != nil {
		os.RemoveAll(stagingDir)
		return "", "", err
	}
	return unpacked, stagingDir, nil
}

func unpackArchive(filePath, destDir string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZipArchive(filePath, destDir)
	case ".gz":
		return unpackGzipArchive(filePath, destDir)
	case ".lz4":
		return unpackLZ4Archive(filePath, destDir)
	}
	return "", fmt.Errorf("not an archive: %s", filePath)
}

// unpackZipArchive extracts the largest file in the archive, which is taken
// to be the payload.
func unpackZipArchive(filePath, destDir string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", fmt.Errorf("empty zip archive: %s", filePath)
	}

	destPath := filepath.Join(destDir, filepath.Base(largestFile.Name))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if _, err = io.Copy(outFile, rc); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackGzipArchive(filePath, destDir string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	destPath := filepath.Join(destDir, trimArchiveExt(filePath, ".gz"))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, gr); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackLZ4Archive(filePath, destDir string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	destPath := filepath.Join(destDir, trimArchiveExt(filePath, ".lz4"))
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	if _, err = io.Copy(outFile, lz4.NewReader(file)); err != nil {
		return "", err
	}
	return destPath, nil
}

func trimArchiveExt(filePath, ext string) string {
	base := filepath.Base(filePath)
	return base[:len(base)-len(ext)]
}

package filesave

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func initTestStore(t *testing.T) {
	t.Helper()
	Init(&Config{Dir: t.TempDir()})
}

func TestSaveAndReadFile(t *testing.T) {
	initTestStore(t)

	data := []byte("Drought reduces wheat yield.")
	resp, err := SaveFile(data, "notes.txt")
	assert.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), resp.Hash)
	assert.Equal(t, "txt", resp.Type)

	loaded, err := ReadFile(resp.URL)
	assert.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestSaveFileIdempotent(t *testing.T) {
	initTestStore(t)

	data := []byte("a,b,c\n")

	first, err := SaveFile(data, "table.csv")
	assert.NoError(t, err)
	second, err := SaveFile(data, "table.csv")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFileType(t *testing.T) {
	assert.Equal(t, "csv", fileType("data.CSV"))
	assert.Equal(t, "txt", fileType("notes.txt"))
	assert.Equal(t, "", fileType("README"))
	assert.Equal(t, "", fileType("archive.tar.verylongext"))
}

func TestReadMissingFile(t *testing.T) {
	initTestStore(t)

	_, err := ReadFile("no/such_file")
	assert.Error(t, err)
}

package filesave

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"knowmap-backend/utils"
)

type Config struct {
	// Dir is the root directory of the local file store.
	Dir string
}

func GenerateTestConfig() *Config {
	return &Config{
		Dir: filepath.Join(os.TempDir(), "knowmap_filesave_test"),
	}
}

var globalConfig Config

func Init(config *Config) {
	globalConfig = *config

	if err := os.MkdirAll(globalConfig.Dir, 0o755); err != nil {
		panic(err)
	}
}

func GetConfig() *Config {
	return &globalConfig
}

type SaveFileResp struct {
	// Hash is the hex sha256 of the content.
	Hash string
	// URL is the store-relative path of the saved file.
	URL string
	// Type is the lowercased extension without the dot, empty if none.
	Type string
}

/*
SaveFile writes data into the content-addressed store. Files are placed under
a two-character fan-out directory named by their hash, so saving the same
content twice is idempotent.
*/
func SaveFile(data []byte, fileName string) (SaveFileResp, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	typ := fileType(fileName)

	name := hash
	if typ != "" {
		name = hash + "." + typ
	}
	relative := filepath.Join(hash[:2], name)
	full := filepath.Join(globalConfig.Dir, relative)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return SaveFileResp{}, utils.WrapError(err, "create fan-out dir fail")
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return SaveFileResp{}, utils.WrapErrorf(err, "write file [%s] fail", relative)
	}

	return SaveFileResp{
		Hash: hash,
		URL:  relative,
		Type: typ,
	}, nil
}

// ReadFile loads a stored file back by its store-relative path.
func ReadFile(url string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(globalConfig.Dir, url))
	if err != nil {
		return nil, utils.WrapErrorf(err, "read file [%s] fail", url)
	}
	return data, nil
}

func fileType(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" || len(ext) > 5 {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

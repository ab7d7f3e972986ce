package store

import (
	"os"
	"path/filepath"

	"aurad/internal/providers"
	"aurad/internal/structures"
)

// KV is the record medium: one independently-addressable value per key.
// A missing or unreadable value is a miss, never an error.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte) error
}

// FileKV keeps one compressed file per key under a data directory.
// Writes go through a temp file and rename so a crash never leaves a
// half-written record.
type FileKV struct {
	dir        string
	compressor Compressor
	logger     providers.Logger
}

func NewFileKV(conf *structures.Config, compressor Compressor, logger providers.Logger) (*FileKV, error) {
	if err := os.MkdirAll(conf.Persistence.Dir, 0755); err != nil {
		return nil, err
	}
	return &FileKV{
		dir:        conf.Persistence.Dir,
		compressor: compressor,
		logger:     logger,
	}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".rec.zst")
}

func (f *FileKV) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Errorf(providers.TypeApp, "Failed to read record %s: %s", key, err)
		}
		return nil, false
	}

	raw, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Errorf(providers.TypeApp, "Failed to decompress record %s: %s", key, err)
		return nil, false
	}
	return raw, true
}

func (f *FileKV) Set(key string, val []byte) error {
	compressed, err := f.compressor.Compress(val)
	if err != nil {
		return err
	}

	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(compressed)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileKV) Close() {
	f.compressor.Close()
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKV persiste cada clave como un archivo JSON dentro de un directorio.
// Las escrituras usan archivo temporal + rename para no dejar estados a medias.
type fileKV struct {
	mu  sync.Mutex
	dir string
}

// NewFile crea el backend de archivos locales sobre dir, creándolo si falta.
func NewFile(dir string, seed SeedAdmin) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return newStore(&fileKV{dir: dir}, seed), nil
}

func (f *fileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileKV) load(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *fileKV) save(key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

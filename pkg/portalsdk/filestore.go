package portalsdk

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorruptStore reports persisted content that does not decode to a
// profile. Session construction reacts by clearing the entry.
var ErrCorruptStore = errors.New("portalsdk: corrupt credential store")

// FileStore persists the profile as JSON at Path. A missing file loads as
// empty; content that does not decode returns ErrCorruptStore so the caller
// clears it.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load() (*User, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		return nil, ErrCorruptStore
	}
	return &user, nil
}

func (f *FileStore) Save(u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, raw, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

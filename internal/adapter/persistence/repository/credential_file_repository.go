package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// CredentialFileRepository stores the credential as JSON in the operator's
// config directory, readable by the owner only.
type CredentialFileRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.ICredentialStore = (*CredentialFileRepository)(nil)

func NewCredentialFileRepository(path string) *CredentialFileRepository {
	return &CredentialFileRepository{path: path}
}

func (r *CredentialFileRepository) Load(_ context.Context) (entities.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.Credential{}, nil
	}
	if err != nil {
		return entities.Credential{}, errors.Wrap(err, "read credential file")
	}
	var c entities.Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return entities.Credential{}, errors.Wrap(err, "decode credential file")
	}
	return c, nil
}

func (r *CredentialFileRepository) Save(_ context.Context, c entities.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode credential")
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "create credential dir")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".credentials-*")
	if err != nil {
		return errors.Wrap(err, "create temp credential file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "chmod credential file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write credential file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close credential file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), r.path), "replace credential file")
}

func (r *CredentialFileRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove credential file")
	}
	return nil
}

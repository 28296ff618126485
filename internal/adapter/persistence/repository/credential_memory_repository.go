package repository

import (
	"context"
	"sync"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"
)

// CredentialMemoryRepository keeps the credential for the life of the
// process only.
type CredentialMemoryRepository struct {
	mu   sync.Mutex
	cred entities.Credential
}

var _ interfaces.ICredentialStore = (*CredentialMemoryRepository)(nil)

func NewCredentialMemoryRepository(initial entities.Credential) *CredentialMemoryRepository {
	return &CredentialMemoryRepository{cred: initial}
}

func (r *CredentialMemoryRepository) Load(_ context.Context) (entities.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cred, nil
}

func (r *CredentialMemoryRepository) Save(_ context.Context, c entities.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred = c
	return nil
}

func (r *CredentialMemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred = entities.Credential{}
	return nil
}

package usecase

import (
	"context"
	"strings"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrMissingCredentials = errors.New("username and password are required")

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.Credential, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (entities.Credential, error)
}

type AuthUseCase struct {
	auth  interfaces.IAuthGateway
	store interfaces.ICredentialStore
	now   func() time.Time
	log   log.FieldLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(auth interfaces.IAuthGateway, store interfaces.ICredentialStore, logger log.FieldLogger) *AuthUseCase {
	return &AuthUseCase{auth: auth, store: store, now: time.Now, log: Feedback{Logger: logger}.logger("auth")}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.Credential, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Credential{}, ErrMissingCredentials
	}
	cred, err := u.auth.Login(ctx, username, password)
	if err != nil {
		return entities.Credential{}, err
	}
	if err := u.store.Save(ctx, cred); err != nil {
		return entities.Credential{}, errors.Wrap(err, "save credential")
	}
	u.log.WithFields(log.Fields{"username": username, "expires_at": cred.ExpiresAt}).Info("signed in")
	return cred, nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	if err := u.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear credential")
	}
	u.log.Info("signed out")
	return nil
}

// Status returns the stored credential or ErrNotSignedIn. Stores that keep
// sessions alive server-side are touched so the session does not expire
// while the operator is working.
func (u *AuthUseCase) Status(ctx context.Context) (entities.Credential, error) {
	cred, err := u.store.Load(ctx)
	if err != nil {
		return entities.Credential{}, errors.Wrap(err, "load credential")
	}
	if !cred.Valid(u.now()) {
		return entities.Credential{}, ErrNotSignedIn
	}
	if t, ok := u.store.(interfaces.ICredentialToucher); ok {
		if err := t.Touch(ctx); err != nil {
			u.log.WithError(err).Warn("session touch failed")
		}
	}
	return cred, nil
}

package interfaces

//go:generate mockgen -source=refresh_interface.go -destination=mocks/refresh_interface.go -package=mock_interfaces

import "context"

// IRefreshPublisher tells open views that backend data changed behind
// their back (for example after the assistant ran an action).
type IRefreshPublisher interface {
	Publish(reason string)
}

// ICredentialToucher is implemented by shared credential stores that keep
// a session alive while it is used.
type ICredentialToucher interface {
	Touch(ctx context.Context) error
}

package interfaces

//go:generate mockgen -source=session_interface.go -destination=mocks/session_interface.go -package=mock_interfaces

import "context"

// INavigator moves the operator to another screen. The API client only
// ever asks for the login screen after a 401.
type INavigator interface {
	RedirectToLogin(path string)
}

// INotifier is the operator-visible feedback sink for long-running actions.
type INotifier interface {
	Pending(message string)
	Success(message string)
	Failure(message string)
}

// IConfirmer asks the operator to confirm a destructive action. A false
// answer with a nil error means the operator declined.
type IConfirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

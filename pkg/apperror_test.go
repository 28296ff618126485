package pkg

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestAppError(t *testing.T) {
	t.Run("message wins over cause", func(t *testing.T) {
		err := NewDomainError("BAD", "Нет на складе", errors.New("raw"), http.StatusBadRequest)
		if err.Error() != "Нет на складе" {
			t.Fatalf("expected message, got %q", err.Error())
		}
	})

	t.Run("falls back to status", func(t *testing.T) {
		err := &AppError{HTTPStatus: http.StatusBadGateway}
		if err.Error() != "HTTP 502" {
			t.Fatalf("expected HTTP 502, got %q", err.Error())
		}
	})

	t.Run("found through wrapping", func(t *testing.T) {
		base := NewDomainErrorSimple("NOT_FOUND", "not found", http.StatusNotFound)
		wrapped := pkgerrors.Wrap(base, "get estimate")
		if StatusOf(wrapped) != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", StatusOf(wrapped))
		}
		if StatusOf(errors.New("plain")) != 0 {
			t.Fatalf("expected 0 for plain error")
		}
	})

	t.Run("http envelope", func(t *testing.T) {
		body := NewDomainErrorSimple("X", "boom", http.StatusConflict).ToHTTPError()
		if body["detail"] != "boom" || body["code"] != "X" {
			t.Fatalf("unexpected envelope: %v", body)
		}
	})
}

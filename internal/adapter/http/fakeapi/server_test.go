package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"sklad/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func authorized(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	token, _, err := s.IssueToken()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestServer_Auth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		s := New(Options{})
		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/workers/", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("password grant", func(t *testing.T) {
		s := New(Options{})
		form := url.Values{"grant_type": {"password"}, "username": {DefaultUsername}, "password": {DefaultPassword}}
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["access_token"] == "" {
			t.Fatalf("expected token, got %s", w.Body.String())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		s := New(Options{})
		form := url.Values{"grant_type": {"password"}, "username": {DefaultUsername}, "password": {"nope"}}
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestServer_EstimateLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New(Options{})
	s.SeedProducts(entities.Product{ID: 1, Name: "Труба ПНД 32", Unit: entities.UnitMeter, RetailPrice: 100, StockQuantity: 10})
	s.SeedWorkers(entities.Worker{ID: 2, Name: "Иванов"})

	t.Run("zero items rejected", func(t *testing.T) {
		w := authorized(t, s, http.MethodPost, "/estimates/", `{"estimate_number":"С-1","client_name":"ООО","items":[]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	var created entities.Estimate
	t.Run("create draft", func(t *testing.T) {
		w := authorized(t, s, http.MethodPost, "/estimates/", `{"estimate_number":"С-1","client_name":"ООО","items":[{"product_id":1,"quantity":2}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.Status != entities.EstimateStatusDraft || created.TotalSum != 200 {
			t.Fatalf("unexpected estimate %+v", created)
		}
	})

	t.Run("ship moves stock to the worker", func(t *testing.T) {
		w := authorized(t, s, http.MethodPost, "/estimates/"+itoa64(created.ID)+"/ship?worker_id=2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		e, _ := s.Estimate(created.ID)
		if e.Status != entities.EstimateStatusInProgress || !e.HasWorker() {
			t.Fatalf("expected in-progress with worker, got %+v", e)
		}
		p, _ := s.Product(1)
		if p.StockQuantity != 8 {
			t.Fatalf("expected stock 8, got %v", p.StockQuantity)
		}
	})

	t.Run("ship twice is refused", func(t *testing.T) {
		w := authorized(t, s, http.MethodPost, "/estimates/"+itoa64(created.ID)+"/ship?worker_id=2", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServer_Override(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New(Options{})
	s.Override(http.MethodGet, "/workers/", http.StatusInternalServerError, "boom")

	w := authorized(t, s, http.MethodGet, "/workers/", "")
	if w.Code != http.StatusInternalServerError || w.Body.String() != "boom" {
		t.Fatalf("expected scripted failure, got %d %q", w.Code, w.Body.String())
	}
	if s.Count(http.MethodGet, "/workers/") != 1 {
		t.Fatalf("expected one recorded request")
	}

	s.Reset()
	w = authorized(t, s, http.MethodGet, "/workers/", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %q", w.Code, w.Body.String())
	}
}

func TestServer_HistoryReversal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New(Options{})
	s.SeedProducts(entities.Product{ID: 1, Name: "Кабель", StockQuantity: 5})
	m := s.SeedMovement(1, 0, entities.MovementIncome, 5)

	w := authorized(t, s, http.MethodPost, "/actions/history/cancel/"+itoa64(m.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = authorized(t, s, http.MethodGet, "/actions/history/", "")
	var page struct {
		Items []entities.Movement `json:"items"`
		Total int                 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 2 || !page.Items[0].Type.IsReversal() {
		t.Fatalf("expected reversal on top, got %+v", page)
	}

	w = authorized(t, s, http.MethodPost, "/actions/history/cancel/"+itoa64(page.Items[0].ID), "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversal, got %d", w.Code)
	}
}

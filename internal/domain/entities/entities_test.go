package entities

import "testing"

func TestMovementType_IsReversal(t *testing.T) {
	for _, mt := range MovementTypes {
		if mt.IsReversal() {
			t.Fatalf("%q must not be a reversal", mt)
		}
		if !ReversalOf(mt).IsReversal() {
			t.Fatalf("reversal of %q must be a reversal", mt)
		}
	}

	m := Movement{Type: ReversalOf(MovementIncome)}
	if m.Cancellable() {
		t.Fatalf("expected reversal to be non-cancellable")
	}
	if string(m.Type) != "Отмена (Поступление)" {
		t.Fatalf("unexpected reversal type %q", m.Type)
	}

	adjustment := Movement{Type: "Корректировка (Отмена ошибочного ввода)"}
	if adjustment.Type.IsReversal() || !adjustment.Cancellable() {
		t.Fatalf("%q mentions the marker but is not a reversal", adjustment.Type)
	}
}

func TestProduct_StockLevels(t *testing.T) {
	t.Run("low stock", func(t *testing.T) {
		p := Product{StockQuantity: 2, MinStockLevel: 5}
		if !p.IsLowStock() || p.ToOrder() != 3 {
			t.Fatalf("expected low stock with 3 to order, got %v", p.ToOrder())
		}
	})

	t.Run("no minimum never low", func(t *testing.T) {
		p := Product{StockQuantity: 0}
		if p.IsLowStock() {
			t.Fatalf("product without minimum must not be low stock")
		}
		if !p.IsOutOfStock() {
			t.Fatalf("expected out of stock")
		}
	})
}

func TestPage(t *testing.T) {
	p := NewPage[Worker](nil, 0)
	if p.Items == nil || !p.Empty() {
		t.Fatalf("expected empty non-nil page")
	}

	p = NewPage([]Worker{{ID: 1}, {ID: 2}}, 0)
	if p.Total != 2 {
		t.Fatalf("expected total raised to item count, got %d", p.Total)
	}

	p = NewPage([]Worker{{ID: 1}}, 101)
	if p.Pages(50) != 3 {
		t.Fatalf("expected 3 pages, got %d", p.Pages(50))
	}
}

func TestChatReply_AnySucceeded(t *testing.T) {
	r := ChatReply{FunctionResults: []ActionResult{{Function: "issue_item", Success: false}}}
	if r.AnySucceeded() {
		t.Fatalf("expected no success")
	}
	r.FunctionResults = append(r.FunctionResults, ActionResult{Function: "receive_item", Success: true})
	if !r.AnySucceeded() {
		t.Fatalf("expected success")
	}
}

func TestTimestamp(t *testing.T) {
	cases := []string{
		`"2025-03-04T10:20:30.123456"`,
		`"2025-03-04T10:20:30Z"`,
		`"2025-03-04T13:20:30+03:00"`,
		`"2025-03-04"`,
	}
	for _, raw := range cases {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
		if ts.Date() != "2025-03-04" {
			t.Fatalf("%s: expected 2025-03-04, got %q", raw, ts.Date())
		}
	}

	var ts Timestamp
	if err := ts.UnmarshalJSON([]byte(`null`)); err != nil || !ts.IsZero() {
		t.Fatalf("expected zero for null")
	}
	if err := ts.UnmarshalJSON([]byte(`"yesterday"`)); err == nil {
		t.Fatalf("expected error")
	}
	out, _ := Timestamp{}.MarshalJSON()
	if string(out) != "null" {
		t.Fatalf("expected null, got %s", out)
	}
}

func TestListQuery_Values(t *testing.T) {
	q := ListQuery{Page: 2, Size: 50, Search: "труба"}.
		WithFilter(FilterStockStatus, string(StockStatusLow)).
		WithFilter(FilterWorkerID, "")

	got := q.Values().Encode()
	want := "page=2&search=%D1%82%D1%80%D1%83%D0%B1%D0%B0&size=50&stock_status=low_stock"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	base := ListQuery{}
	_ = base.WithFilter(FilterEndDate, "2025-01-31")
	if base.Filters != nil {
		t.Fatalf("WithFilter must not mutate the receiver")
	}
}

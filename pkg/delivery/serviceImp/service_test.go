package serviceImp

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"milkman/database"
	"milkman/pkg/apperr"
	"milkman/pkg/delivery/repositoryImp"
	svc "milkman/pkg/delivery/service"
)

func newService(t *testing.T) svc.Service {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return New(repositoryImp.New(db))
}

func TestRecordThenListByCustomer(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	d, err := s.Record(ctx, 1, "2024-03-05", 4)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if d.ID == 0 || d.CustomerID != 1 || d.Date != "2024-03-05" || d.Quantity != 4 {
		t.Fatalf("unexpected delivery: %+v", d)
	}
	if _, err := s.Record(ctx, 2, "2024-03-06", 1.5); err != nil {
		t.Fatalf("record: %v", err)
	}

	list, err := s.ListByCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0] != *d {
		t.Fatalf("list for 1 = %+v", list)
	}

	other, _ := s.ListByCustomer(ctx, 2)
	for _, o := range other {
		if o.ID == d.ID {
			t.Fatalf("customer 2 must not see customer 1's delivery")
		}
	}

	none, err := s.ListByCustomer(ctx, 77)
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("unknown customer: got %v (%v), want empty list", none, err)
	}
}

func TestListOrdersByDateDescStable(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	type in struct {
		date string
		qty  float64
	}
	for _, x := range []in{
		{"2024-03-01", 1},
		{"2024-03-10", 2}, // A
		{"2024-02-28", 3},
		{"2024-03-10", 4}, // B, same day as A
		{"2024-03-05", 5},
	} {
		if _, err := s.Record(ctx, 1, x.date, x.qty); err != nil {
			t.Fatalf("record %v: %v", x, err)
		}
	}

	for run := 0; run < 2; run++ {
		list, err := s.ListByCustomer(ctx, 1)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		want := []float64{2, 4, 5, 1, 3}
		if len(list) != len(want) {
			t.Fatalf("len=%d", len(list))
		}
		for i, q := range want {
			if list[i].Quantity != q {
				t.Fatalf("run %d pos %d: qty %v want %v (list=%+v)", run, i, list[i].Quantity, q, list)
			}
		}
	}
}

func TestRecordAllowsUnknownCustomer(t *testing.T) {
	if _, err := newService(t).Record(context.Background(), 404, "2024-01-01", 1); err != nil {
		t.Fatalf("store is permissive about customer ids: %v", err)
	}
}

func TestRecordValidation(t *testing.T) {
	s := newService(t)
	cases := []struct {
		id   uint
		date string
		qty  float64
	}{
		{0, "2024-03-05", 1},
		{1, "", 1},
		{1, "2024-3-5", 1},
		{1, "2024-02-30", 1},
		{1, "yesterday", 1},
		{1, "2024-03-05", -0.5},
	}
	for _, tc := range cases {
		if _, err := s.Record(context.Background(), tc.id, tc.date, tc.qty); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("Record(%d, %q, %v): expected validation error, got %v", tc.id, tc.date, tc.qty, err)
		}
	}
	if _, err := s.ListByCustomer(context.Background(), 0); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("list with id 0: expected validation error, got %v", err)
	}
}

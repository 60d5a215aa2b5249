package platform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"backoffice_console/internal/adapters/platform"
	"backoffice_console/internal/domain"
)

func TestClient_ListAppointments_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "a1", "date": "2025-03-01", "status": "pending"}})
		}
	}))
	defer ts.Close()

	cl, err := platform.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.ListAppointments(ctx, domain.AppointmentFilter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_FilterQueryEncoding(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer ts.Close()

	cl, _ := platform.New(ts.URL, "test-key", 100)
	m, y := 2, 2025
	_, err := cl.ListAppointments(context.Background(), domain.AppointmentFilter{
		Status: "confirmed",
		Month:  &m,
		Year:   &y,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "month=2&status=confirmed&year=2025"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}

	// inactive predicates are omitted entirely
	_, _ = cl.ListAppointments(context.Background(), domain.AppointmentFilter{Month: &m}) // no year: inert
	if gotQuery != "" {
		t.Fatalf("half a month/year pair must not be sent, got %q", gotQuery)
	}
}

func TestClient_GetCompany_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := platform.New(ts.URL, "test-key", 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cl.GetCompany(ctx)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	cl, _ := platform.New(ts.URL, "test-key", 100)
	_, err := cl.ListCustomers(context.Background(), "anna")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestClient_ExhaustedRetriesAreUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cl, _ := platform.New(ts.URL, "test-key", 100)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := cl.ListCalls(ctx, domain.AppointmentFilter{})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := platform.New("http://example.invalid", "", 5); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

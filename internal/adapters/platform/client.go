package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"backoffice_console/internal/adapters/observability"
	"backoffice_console/internal/domain"
)

// Client talks to the platform API that owns companies, appointments,
// calls and customers. It implements domain.ScheduleDirectory and
// domain.CompanyDirectory. Outbound calls are client-side rate limited and
// retried on 429/5xx; terminal statuses map onto the domain sentinels.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) GetCompany(ctx context.Context) (domain.Company, error) {
	var out domain.Company
	err := c.get(ctx, c.base+"/v1/companies/current", &out)
	return out, err
}

func (c *Client) ListAppointments(ctx context.Context, f domain.AppointmentFilter) ([]domain.CalendarAppointment, error) {
	u := c.base + "/v1/appointments" + filterQuery(f)
	var out []domain.CalendarAppointment
	return out, c.get(ctx, u, &out)
}

func (c *Client) ListCalls(ctx context.Context, f domain.AppointmentFilter) ([]domain.CallLog, error) {
	u := c.base + "/v1/calls" + filterQuery(f)
	var out []domain.CallLog
	return out, c.get(ctx, u, &out)
}

func (c *Client) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	u := c.base + "/v1/customers"
	if search != "" {
		u += "?search=" + url.QueryEscape(search)
	}
	var out []domain.Customer
	return out, c.get(ctx, u, &out)
}

// filterQuery encodes the active predicates; inactive ones are omitted so
// the upstream sees the same optionality the filter engine does.
func filterQuery(f domain.AppointmentFilter) string {
	q := url.Values{}
	if f.Status != "" && f.Status != "all" {
		q.Set("status", f.Status)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Month != nil && f.Year != nil {
		q.Set("month", strconv.Itoa(*f.Month))
		q.Set("year", strconv.Itoa(*f.Year))
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ---- Internals ----

func backoff(attempt int) time.Duration {
	base := time.Duration(200*(1<<attempt)) * time.Millisecond
	return base + time.Duration(rand.Int63n(int64(100*time.Millisecond)))
}

// get performs a GET with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx, honoring Retry-After
// when provided. Exhausted retries surface as domain.ErrUnavailable.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	endpoint := endpointLabel(rawURL)
	status := 0
	defer func() {
		observability.ObserveExternal("platform", endpoint, status, time.Since(start))
	}()

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-API-Key", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "backoffice-console/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", domain.ErrUnavailable, lastErr)
		}
		status = resp.StatusCode

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return domain.ErrUnauthorized

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", domain.ErrUnavailable, lastErr)

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrUnavailable, lastErr)
}

// endpointLabel strips the query and the base so metrics don't explode in
// cardinality.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	return u.Path
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if
// absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

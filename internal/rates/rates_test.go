package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_OpenERAPI(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"result":"success","base_code":"USD","rates":{"USD":1,"INR":84.25}}`)

	rate, err := NewClient(srv.URL, time.Second).USDToINR(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 84.25 {
		t.Errorf("rate = %v, want 84.25", rate)
	}
}

func TestClient_ConversionRatesPayload(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"result":"success","conversion_rates":{"INR":82.5}}`)

	rate, err := NewClient(srv.URL, time.Second).USDToINR(context.Background())
	if err != nil || rate != 82.5 {
		t.Fatalf("rate = %v, err = %v; want 82.5, nil", rate, err)
	}
}

func TestClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `oops`},
		{"bad json", http.StatusOK, `{"rates":`},
		{"provider error", http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`},
		{"missing INR", http.StatusOK, `{"result":"success","rates":{"EUR":0.9}}`},
		{"zero rate", http.StatusOK, `{"result":"success","rates":{"INR":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			_, err := NewClient(srv.URL, time.Second).USDToINR(context.Background())
			if !errors.Is(err, ErrRateUnavailable) {
				t.Fatalf("err = %v, want ErrRateUnavailable", err)
			}
		})
	}
}

type failing struct{}

func (failing) USDToINR(context.Context) (float64, error) {
	return 0, errors.New("network down")
}

func TestResolve_FallsBack(t *testing.T) {
	q := Resolve(context.Background(), failing{}, Fallback)
	if q.Rate != 83.0 {
		t.Errorf("rate = %v, want exactly 83.0", q.Rate)
	}
	if q.Source != SourceFallback || q.Err == nil {
		t.Errorf("quote = %+v, want fallback with error", q)
	}
}

func TestResolve_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	q := Resolve(context.Background(), NewClient(url, 200*time.Millisecond), 0)
	if q.Rate != Fallback || q.Source != SourceFallback {
		t.Errorf("quote = %+v, want fallback %v", q, Fallback)
	}
}

func TestResolve_Fixed(t *testing.T) {
	q := Resolve(context.Background(), Fixed(80), Fallback)
	if q.Rate != 80 || q.Source != SourceFixed {
		t.Errorf("quote = %+v, want fixed 80", q)
	}

	q = Resolve(context.Background(), Fixed(0), Fallback)
	if q.Rate != Fallback || q.Source != SourceFallback {
		t.Errorf("quote = %+v, want fallback for non-positive fixed rate", q)
	}
}

func TestResolve_NilProvider(t *testing.T) {
	q := Resolve(context.Background(), nil, 90)
	if q.Rate != 90 || q.Source != SourceFallback {
		t.Errorf("quote = %+v, want fallback 90", q)
	}
}

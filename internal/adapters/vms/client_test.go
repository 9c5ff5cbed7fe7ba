package vms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
	"vms-gateway/internal/infrastructure/config"
)

func testSource(t *testing.T, h http.HandlerFunc) (*Source, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(config.Config{UpstreamTimeoutMs: 5000}, zerolog.Nop())
	return c.Bind(domain.Credential{ServerURL: srv.URL, Authorization: "Basic dGVzdA=="}), srv
}

func TestListCamerasSendsCredential(t *testing.T) {
	var gotAuth string
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"cameras": []domain.Camera{{ID: "cam-1", Name: "Entrance"}},
		})
	})
	cams, err := src.ListCameras(context.Background())
	if err != nil {
		t.Fatalf("list cameras: %v", err)
	}
	if len(cams) != 1 || cams[0].ID != "cam-1" {
		t.Fatalf("cameras = %+v", cams)
	}
	if gotAuth != "Basic dGVzdA==" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestUpstreamErrorTextSurfaces(t *testing.T) {
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "camera offline"})
	})
	_, err := src.ListCameras(context.Background())
	if err == nil || !strings.Contains(err.Error(), "camera offline") {
		t.Fatalf("err = %v, want upstream error text", err)
	}
}

func TestListEventsOmitsZeroBounds(t *testing.T) {
	var gotQuery string
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "events": []any{}})
	})

	if _, err := src.ListEvents(context.Background(), time.Time{}, time.Time{}); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("query = %q, want no bounds for open range", gotQuery)
	}

	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	if _, err := src.ListEvents(context.Background(), from, to); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if !strings.Contains(gotQuery, "from=") || !strings.Contains(gotQuery, "to=") {
		t.Fatalf("query = %q, want both bounds", gotQuery)
	}
}

func TestStopSessionToleratesUnknownID(t *testing.T) {
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "unknown session"})
	})
	if err := src.StopSession(context.Background(), "sess-gone"); err != nil {
		t.Fatalf("stop of unknown session must not error: %v", err)
	}
}

func TestFrameURLCarriesSpeedAndCacheToken(t *testing.T) {
	var gotSpeed, gotToken string
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotSpeed = r.URL.Query().Get("speed")
		gotToken = r.URL.Query().Get("t")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff, 0xd9})
	})
	frame, err := src.Frame(context.Background(), "sess-1", 0.25)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if len(frame) != 4 {
		t.Fatalf("frame bytes = %d", len(frame))
	}
	if gotSpeed != "0.25" {
		t.Fatalf("speed param = %q, want 0.25", gotSpeed)
	}
	if gotToken == "" {
		t.Fatalf("cache-busting token missing")
	}
}

func TestStartSessionPostsPosition(t *testing.T) {
	var body map[string]string
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "sessionId": "sess-42"})
	})
	sid, err := src.StartSession(context.Background(),
		"cam-1", time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC), domain.DirectionBackward)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if sid != "sess-42" {
		t.Fatalf("session id = %q", sid)
	}
	if body["cameraId"] != "cam-1" || body["direction"] != "backward" {
		t.Fatalf("body = %v", body)
	}
	if body["time"] != "2026-03-14T06:00:00.000Z" {
		t.Fatalf("time = %q", body["time"])
	}
}

func TestCurrentTimeParsesUpstreamFormat(t *testing.T) {
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "time": "2026-03-14T06:15:30.500Z"})
	})
	ts, err := src.CurrentTime(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("current time: %v", err)
	}
	want := time.Date(2026, 3, 14, 6, 15, 30, 500_000_000, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("time = %v, want %v", ts, want)
	}
}

func TestExchangeOfferFailureSurfacesText(t *testing.T) {
	src, _ := testSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "no stream available"})
	})
	_, err := src.ExchangeOffer(context.Background(), "cam-1", "v=0\r\n")
	if err == nil || !strings.Contains(err.Error(), "no stream available") {
		t.Fatalf("err = %v, want upstream error text", err)
	}
}

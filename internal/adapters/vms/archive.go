package vms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vms-gateway/internal/archive"
	"vms-gateway/internal/domain"
	"vms-gateway/pkg/shared/id"
)

type sequenceListResponse struct {
	envelope
	Sequences []domain.ArchiveSequence `json:"sequences"`
}

// ListSequences fetches the recorded intervals for one calendar day. An
// empty list is a valid answer, not an error.
func (s *Source) ListSequences(ctx context.Context, cameraID string, day time.Time) ([]domain.ArchiveSequence, error) {
	var out sequenceListResponse
	resp, err := s.req().
		SetContext(ctx).
		SetQueryParam("cameraId", cameraID).
		SetQueryParam("date", day.UTC().Format("2006-01-02")).
		SetResult(&out).
		SetError(&out).
		Get(s.url("/api/archive/sequences"))
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	if resp.IsError() {
		return nil, upstreamErr("list sequences", resp, out.envelope)
	}
	return out.Sequences, nil
}

type startSessionResponse struct {
	envelope
	SessionID string `json:"sessionId"`
}

func (s *Source) StartSession(ctx context.Context, cameraID string, at time.Time, dir domain.Direction) (string, error) {
	var out startSessionResponse
	resp, err := s.req().
		SetContext(ctx).
		SetBody(map[string]string{
			"cameraId":  cameraID,
			"time":      at.UTC().Format(TimeFormat),
			"direction": string(dir),
		}).
		SetResult(&out).
		SetError(&out).
		Post(s.url("/api/archive/sessions"))
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	if resp.IsError() {
		return "", upstreamErr("start session", resp, out.envelope)
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("start session: upstream returned no session id")
	}
	return out.SessionID, nil
}

// StopSession releases the remote session. A session the server no longer
// knows about counts as already stopped.
func (s *Source) StopSession(ctx context.Context, sessionID string) error {
	var out struct{ envelope }
	resp, err := s.req().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Delete(s.url("/api/archive/sessions/" + sessionID))
	if err != nil {
		return fmt.Errorf("stop session: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusGone {
		return nil
	}
	if resp.IsError() {
		return upstreamErr("stop session", resp, out.envelope)
	}
	return nil
}

func (s *Source) SetSpeed(ctx context.Context, sessionID string, speed float64) error {
	var out struct{ envelope }
	resp, err := s.req().
		SetContext(ctx).
		SetBody(map[string]string{"speed": archive.EncodeSpeed(speed)}).
		SetResult(&out).
		SetError(&out).
		Post(s.url("/api/archive/sessions/" + sessionID + "/speed"))
	if err != nil {
		return fmt.Errorf("set speed: %w", err)
	}
	if resp.IsError() {
		return upstreamErr("set speed", resp, out.envelope)
	}
	return nil
}

// Frame fetches the session's current decoded frame as a JPEG. The URL
// carries the speed (0 = paused, no advance) and a cache-busting token so
// intermediaries never serve a stale image.
func (s *Source) Frame(ctx context.Context, sessionID string, speed float64) ([]byte, error) {
	resp, err := s.req().
		SetContext(ctx).
		SetQueryParam("speed", archive.EncodeSpeed(speed)).
		SetQueryParam("t", id.New()).
		Get(s.url("/api/archive/sessions/" + sessionID + "/frame"))
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	if resp.IsError() {
		return nil, upstreamErr("frame", resp, envelope{})
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("frame: empty response body")
	}
	return resp.Body(), nil
}

type currentTimeResponse struct {
	envelope
	Time string `json:"time"`
}

func (s *Source) CurrentTime(ctx context.Context, sessionID string) (time.Time, error) {
	var out currentTimeResponse
	resp, err := s.req().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get(s.url("/api/archive/sessions/" + sessionID + "/time"))
	if err != nil {
		return time.Time{}, fmt.Errorf("current time: %w", err)
	}
	if resp.IsError() {
		return time.Time{}, upstreamErr("current time", resp, out.envelope)
	}
	ts, err := time.Parse(TimeFormat, out.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("current time: bad timestamp %q", out.Time)
	}
	return ts, nil
}

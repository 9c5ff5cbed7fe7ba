package vms

import (
	"context"
	"fmt"
	"time"

	"vms-gateway/internal/domain"
)

type cameraListResponse struct {
	envelope
	Cameras []domain.Camera `json:"cameras"`
}

func (s *Source) ListCameras(ctx context.Context) ([]domain.Camera, error) {
	var out cameraListResponse
	resp, err := s.req().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get(s.url("/api/cameras"))
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}
	if resp.IsError() {
		return nil, upstreamErr("list cameras", resp, out.envelope)
	}
	return out.Cameras, nil
}

// Snapshot downloads a JPEG still for the given camera. Returns the image
// bytes and content type.
func (s *Source) Snapshot(ctx context.Context, cameraID string) ([]byte, string, error) {
	resp, err := s.req().
		SetContext(ctx).
		Get(s.url("/api/cameras/" + cameraID + "/snapshot"))
	if err != nil {
		return nil, "", fmt.Errorf("snapshot: %w", err)
	}
	if resp.IsError() {
		return nil, "", upstreamErr("snapshot", resp, envelope{})
	}
	ct := resp.Header().Get("Content-Type")
	if ct == "" {
		ct = "image/jpeg"
	}
	return resp.Body(), ct, nil
}

type eventListResponse struct {
	envelope
	Events []domain.Event `json:"events"`
}

func (s *Source) ListEvents(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	var out eventListResponse
	req := s.req().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out)
	if !from.IsZero() {
		req.SetQueryParam("from", from.UTC().Format(TimeFormat))
	}
	if !to.IsZero() {
		req.SetQueryParam("to", to.UTC().Format(TimeFormat))
	}
	resp, err := req.Get(s.url("/api/events"))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if resp.IsError() {
		return nil, upstreamErr("list events", resp, out.envelope)
	}
	return out.Events, nil
}

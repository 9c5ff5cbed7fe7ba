package vms

import (
	"context"
	"fmt"

	"vms-gateway/internal/domain"
)

type offerExchangeResponse struct {
	envelope
	SDP string                `json:"sdp"`
	ICE []domain.ICECandidate `json:"ice"`
}

// ExchangeOffer posts a local SDP offer to the VMS signaling endpoint and
// returns the remote answer plus server-gathered ICE candidates.
func (s *Source) ExchangeOffer(ctx context.Context, cameraID string, offerSDP string) (domain.OfferAnswer, error) {
	var out offerExchangeResponse
	resp, err := s.req().
		SetContext(ctx).
		SetBody(map[string]string{"cameraId": cameraID, "sdp": offerSDP}).
		SetResult(&out).
		SetError(&out).
		Post(s.url("/api/webrtc/offer"))
	if err != nil {
		return domain.OfferAnswer{}, fmt.Errorf("offer exchange: %w", err)
	}
	if resp.IsError() {
		return domain.OfferAnswer{}, upstreamErr("offer exchange", resp, out.envelope)
	}
	if out.SDP == "" {
		return domain.OfferAnswer{}, fmt.Errorf("offer exchange: upstream returned no answer sdp")
	}
	return domain.OfferAnswer{SDP: out.SDP, ICE: out.ICE}, nil
}

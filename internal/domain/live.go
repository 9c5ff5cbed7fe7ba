package domain

// ICECandidate mirrors the candidate lines returned by the VMS offer
// exchange. Pointer fields omit cleanly when the server leaves them out.
type ICECandidate struct {
	Candidate     string  `json:"candidate"`
	SDPMid        *string `json:"sdpMid,omitempty"`
	SDPMLineIndex *uint16 `json:"sdpMLineIndex,omitempty"`
}

// OfferAnswer is the VMS response to a WebRTC offer: the remote SDP answer
// plus the server-gathered ICE candidates to apply in order.
type OfferAnswer struct {
	SDP string         `json:"sdp"`
	ICE []ICECandidate `json:"ice"`
}

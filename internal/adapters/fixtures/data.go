package fixtures

import (
	"time"

	"vms-gateway/internal/domain"
)

var cameras = []domain.Camera{
	{ID: "cam-entrance", Name: "Main Entrance", Model: "DS-2CD2143", ConnectionState: "CONNECTED", IPAddress: "10.0.0.11", Connected: true, RecordedData: true, PTZ: false},
	{ID: "cam-parking", Name: "Parking Lot", Model: "DS-2DE4225", ConnectionState: "CONNECTED", IPAddress: "10.0.0.12", Connected: true, RecordedData: true, PTZ: true},
	{ID: "cam-warehouse", Name: "Warehouse Aisle 3", Model: "IPC-HFW2431", ConnectionState: "DISCONNECTED", IPAddress: "10.0.0.13", Connected: false, RecordedData: true, PTZ: false},
	{ID: "cam-lobby", Name: "Lobby Desk", Model: "DS-2CD2143", ConnectionState: "CONNECTED", IPAddress: "10.0.0.14", Connected: true, RecordedData: false, PTZ: false},
}

var events = []domain.Event{
	{ID: "ev-1", Ts: time.Date(2026, 8, 24, 8, 2, 11, 0, time.UTC), Type: "access_granted", CameraID: "cam-entrance", Description: "Card 4411 accepted at main entrance"},
	{ID: "ev-2", Ts: time.Date(2026, 8, 24, 8, 17, 43, 0, time.UTC), Type: "motion", CameraID: "cam-parking", Description: "Motion detected in parking lot"},
	{ID: "ev-3", Ts: time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC), Type: "access_denied", CameraID: "cam-entrance", Description: "Card 9017 rejected: expired"},
	{ID: "ev-4", Ts: time.Date(2026, 8, 24, 11, 12, 5, 0, time.UTC), Type: "plate_recognized", CameraID: "cam-parking", Description: "Plate A123BC matched watchlist"},
	{ID: "ev-5", Ts: time.Date(2026, 8, 24, 14, 48, 59, 0, time.UTC), Type: "camera_offline", CameraID: "cam-warehouse", Description: "Camera stopped responding"},
}

// frameJPEG is a 1x1 grey JPEG used for snapshots and archive frames.
var frameJPEG = []byte{
	0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46, 0x00, 0x01,
	0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0xff, 0xdb, 0x00, 0x43,
	0x00, 0x08, 0x06, 0x06, 0x07, 0x06, 0x05, 0x08, 0x07, 0x07, 0x07, 0x09,
	0x09, 0x08, 0x0a, 0x0c, 0x14, 0x0d, 0x0c, 0x0b, 0x0b, 0x0c, 0x19, 0x12,
	0x13, 0x0f, 0x14, 0x1d, 0x1a, 0x1f, 0x1e, 0x1d, 0x1a, 0x1c, 0x1c, 0x20,
	0x24, 0x2e, 0x27, 0x20, 0x22, 0x2c, 0x23, 0x1c, 0x1c, 0x28, 0x37, 0x29,
	0x2c, 0x30, 0x31, 0x34, 0x34, 0x34, 0x1f, 0x27, 0x39, 0x3d, 0x38, 0x32,
	0x3c, 0x2e, 0x33, 0x34, 0x32, 0xff, 0xc0, 0x00, 0x0b, 0x08, 0x00, 0x01,
	0x00, 0x01, 0x01, 0x01, 0x11, 0x00, 0xff, 0xc4, 0x00, 0x1f, 0x00, 0x00,
	0x01, 0x05, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0xff, 0xc4, 0x00, 0xb5, 0x10, 0x00, 0x02, 0x01, 0x03,
	0x03, 0x02, 0x04, 0x03, 0x05, 0x05, 0x04, 0x04, 0x00, 0x00, 0x01, 0x7d,
	0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12, 0x21, 0x31, 0x41, 0x06,
	0x13, 0x51, 0x61, 0x07, 0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
	0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0, 0x24, 0x33, 0x62, 0x72,
	0x82, 0x09, 0x0a, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x43, 0x44, 0x45,
	0x46, 0x47, 0x48, 0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
	0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6a, 0x73, 0x74, 0x75,
	0x76, 0x77, 0x78, 0x79, 0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
	0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3,
	0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
	0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9,
	0xca, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
	0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea, 0xf1, 0xf2, 0xf3, 0xf4,
	0xf5, 0xf6, 0xf7, 0xf8, 0xf9, 0xfa, 0xff, 0xda, 0x00, 0x08, 0x01, 0x01,
	0x00, 0x00, 0x3f, 0x00, 0xfb, 0xd0, 0xff, 0xd9,
}

// answerSDP is a syntactically plausible recvonly answer for demo mode.
const answerSDP = "v=0\r\n" +
	"o=- 0 0 IN IP4 127.0.0.1\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=sendonly\r\n" +
	"a=rtpmap:96 H264/90000\r\n"

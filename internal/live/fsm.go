package live

// State of a live viewer. error is terminal: there is no automatic
// reconnect, the owner remounts a fresh viewer to retry.
type State string

const (
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
	StateError      State = "error"
)

type event string

const (
	evTrack           event = "track"
	evICEFailed       event = "ice_failed"
	evICEDisconnected event = "ice_disconnected"
	evICEClosed       event = "ice_closed"
	evSignalingFailed event = "signaling_failed"
	evSetupFailed     event = "setup_failed"
)

// transitions is the whole machine. ICE failed/disconnected/closed are
// deliberately not distinguished: transient blips and permanent failures
// both end the viewer. Events with no entry are ignored, which makes the
// error state absorbing.
var transitions = map[State]map[event]State{
	StateConnecting: {
		evTrack:           StateConnected,
		evICEFailed:       StateError,
		evICEDisconnected: StateError,
		evICEClosed:       StateError,
		evSignalingFailed: StateError,
		evSetupFailed:     StateError,
	},
	StateConnected: {
		evICEFailed:       StateError,
		evICEDisconnected: StateError,
		evICEClosed:       StateError,
	},
}

package archive

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
)

// FrameFunc receives each frame fetched by the polling loop. shownAt is the
// session's current playback timestamp and may be zero when the secondary
// time request failed.
type FrameFunc func(frame []byte, shownAt time.Time)

type Options struct {
	ID        string
	Source    SessionAPI
	CameraID  string
	At        time.Time
	Direction domain.Direction
	// Polling cadence while playing. Wall-clock, independent of speed.
	Interval time.Duration
	Logger   zerolog.Logger
}

// Player drives one camera's archive playback. It holds the only local
// reference to the remote session and owns the polling loop.
type Player struct {
	id        string
	cameraID  string
	direction domain.Direction
	src       SessionAPI
	log       zerolog.Logger
	interval  time.Duration
	startedAt time.Time

	mu          sync.Mutex
	sessionID   string
	speed       float64
	closed      bool
	poll        *pollHandle
	lastFrame   []byte
	lastShownAt time.Time
}

type pollHandle struct {
	stop    chan struct{}
	done    chan struct{}
	onFrame FrameFunc
}

// Open fetches the day's sequences and starts a remote session positioned at
// opts.At. An empty sequence list refuses with ErrNoRecordings before any
// start request is sent.
func Open(ctx context.Context, opts Options) (*Player, error) {
	if !opts.Direction.Valid() {
		opts.Direction = domain.DirectionForward
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	seqs, err := opts.Source.ListSequences(ctx, opts.CameraID, opts.At)
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, ErrNoRecordings
	}
	sid, err := opts.Source.StartSession(ctx, opts.CameraID, opts.At, opts.Direction)
	if err != nil {
		return nil, err
	}
	return &Player{
		id:        opts.ID,
		cameraID:  opts.CameraID,
		direction: opts.Direction,
		src:       opts.Source,
		log:       opts.Logger.With().Str("player", opts.ID).Str("camera", opts.CameraID).Logger(),
		interval:  opts.Interval,
		startedAt: time.Now().UTC(),
		sessionID: sid,
		speed:     1,
	}, nil
}

func (p *Player) ID() string       { return p.id }
func (p *Player) CameraID() string { return p.cameraID }

func (p *Player) StartedAt() time.Time { return p.startedAt }

// Seek re-positions playback by replacing the remote session. The previous
// session's stop is issued first and its failure only logged: a dead session
// on the server must not block the new one.
func (p *Player) Seek(ctx context.Context, at time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if p.sessionID != "" {
		if err := p.src.StopSession(ctx, p.sessionID); err != nil {
			p.log.Warn().Err(err).Str("session", p.sessionID).Msg("stop before seek failed")
		}
		p.sessionID = ""
	}
	sid, err := p.src.StartSession(ctx, p.cameraID, at, p.direction)
	if err != nil {
		return err
	}
	p.sessionID = sid
	return nil
}

// SetSpeed changes the rate applied to subsequent frame fetches. Negative
// speeds are not supported; direction is chosen at open.
func (p *Player) SetSpeed(ctx context.Context, speed float64) error {
	if speed <= 0 {
		return ErrBadSpeed
	}
	p.mu.Lock()
	sid, closed := p.sessionID, p.closed
	p.mu.Unlock()
	if closed || sid == "" {
		return ErrClosed
	}
	if err := p.src.SetSpeed(ctx, sid, speed); err != nil {
		return err
	}
	p.mu.Lock()
	p.speed = speed
	p.mu.Unlock()
	return nil
}

// Play starts the polling loop. Each tick fetches one frame at the current
// speed; pausing later fetches one final speed-0 frame to freeze the image.
// Calling Play on an already-playing player is a no-op.
func (p *Player) Play(onFrame FrameFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.sessionID == "" {
		return ErrClosed
	}
	if p.poll != nil {
		return nil
	}
	h := &pollHandle{stop: make(chan struct{}), done: make(chan struct{}), onFrame: onFrame}
	p.poll = h
	go p.run(h)
	return nil
}

func (p *Player) run(h *pollHandle) {
	defer close(h.done)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-t.C:
			p.mu.Lock()
			speed := p.speed
			p.mu.Unlock()
			frame, shownAt, err := p.fetchFrame(context.Background(), speed)
			if err != nil {
				p.log.Warn().Err(err).Msg("frame fetch failed")
				continue
			}
			if h.onFrame != nil {
				h.onFrame(frame, shownAt)
			}
		}
	}
}

// Pause cancels the polling loop and freezes the displayed image with one
// speed-0 fetch. An in-flight tick may still complete; late frames are
// acceptable staleness, not an error.
func (p *Player) Pause(ctx context.Context) error {
	p.mu.Lock()
	h := p.poll
	p.poll = nil
	p.mu.Unlock()
	if h == nil {
		return nil
	}
	close(h.stop)
	<-h.done
	if _, _, err := p.fetchFrame(ctx, 0); err != nil {
		p.log.Warn().Err(err).Msg("freeze frame fetch failed")
	}
	return nil
}

// Playing reports whether the polling loop is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.poll != nil
}

// Frame returns the current frame. While playing it serves the last polled
// image; while paused it fetches a fresh speed-0 frame so the session does
// not advance.
func (p *Player) Frame(ctx context.Context) ([]byte, time.Time, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, time.Time{}, ErrClosed
	}
	if p.poll != nil && p.lastFrame != nil {
		frame, shownAt := p.lastFrame, p.lastShownAt
		p.mu.Unlock()
		return frame, shownAt, nil
	}
	p.mu.Unlock()
	return p.fetchFrame(ctx, 0)
}

// FetchFrame fetches a frame at an explicit speed, bypassing the cache.
// Speed 0 freezes; negative speeds are rejected.
func (p *Player) FetchFrame(ctx context.Context, speed float64) ([]byte, time.Time, error) {
	if speed < 0 {
		return nil, time.Time{}, ErrBadSpeed
	}
	return p.fetchFrame(ctx, speed)
}

// ShownAt returns the last known playback timestamp.
func (p *Player) ShownAt(ctx context.Context) (time.Time, error) {
	p.mu.Lock()
	sid, closed := p.sessionID, p.closed
	p.mu.Unlock()
	if closed || sid == "" {
		return time.Time{}, ErrClosed
	}
	return p.src.CurrentTime(ctx, sid)
}

// Close stops the polling loop and releases the remote session. Idempotent:
// closing twice, or closing a player whose session is already gone upstream,
// is not an error.
func (p *Player) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	h := p.poll
	p.poll = nil
	sid := p.sessionID
	p.sessionID = ""
	p.mu.Unlock()
	if h != nil {
		close(h.stop)
		<-h.done
	}
	if sid == "" {
		return nil
	}
	if err := p.src.StopSession(ctx, sid); err != nil {
		p.log.Warn().Err(err).Str("session", sid).Msg("stop session failed")
	}
	return nil
}

func (p *Player) Info() domain.PlayerInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	info := domain.PlayerInfo{
		ID:        p.id,
		CameraID:  p.cameraID,
		SessionID: p.sessionID,
		Direction: p.direction,
		Speed:     p.speed,
		StartedAt: p.startedAt,
	}
	switch {
	case p.closed:
		info.State = domain.PlayerClosed
	case p.poll != nil:
		info.State = domain.PlayerPlaying
	default:
		info.State = domain.PlayerPaused
	}
	if !p.lastShownAt.IsZero() {
		t := p.lastShownAt
		info.LastShownAt = &t
	}
	return info
}

func (p *Player) fetchFrame(ctx context.Context, speed float64) ([]byte, time.Time, error) {
	p.mu.Lock()
	sid := p.sessionID
	p.mu.Unlock()
	if sid == "" {
		return nil, time.Time{}, ErrClosed
	}
	frame, err := p.src.Frame(ctx, sid, speed)
	if err != nil {
		return nil, time.Time{}, err
	}
	// Secondary request: the session's current timestamp for UI display.
	shownAt, err := p.src.CurrentTime(ctx, sid)
	if err != nil {
		p.log.Debug().Err(err).Msg("current time fetch failed")
		shownAt = time.Time{}
	}
	p.mu.Lock()
	p.lastFrame = frame
	if !shownAt.IsZero() {
		p.lastShownAt = shownAt
	}
	p.mu.Unlock()
	return frame, shownAt, nil
}

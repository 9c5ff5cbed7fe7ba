package memory

import (
	"context"
	"sync"
	"time"

	"vms-gateway/internal/archive"
	"vms-gateway/internal/live"
)

type playerEntry struct {
	player    *archive.Player
	createdAt time.Time
}

type viewerEntry struct {
	viewer    *live.Viewer
	createdAt time.Time
}

// Registry is the in-process home of archive players and live viewers.
// Both are bounded by capacity and TTL; evicting a player closes it so the
// remote session is released, evicting a viewer disconnects its peer
// connection. Nothing retained here is allowed to outlive the limits.
type Registry struct {
	mu sync.RWMutex
	// insertion order of ids, oldest first
	order       []string
	players     map[string]*playerEntry
	viewerOrder []string
	viewers     map[string]*viewerEntry

	capacity int
	ttl      time.Duration

	// OnEvict is called outside the lock for every player removed by
	// capacity or TTL pressure.
	OnEvict func(p *archive.Player)
}

func NewRegistry(capacity int, ttl time.Duration) *Registry {
	return &Registry{
		order:    make([]string, 0, capacity),
		players:  make(map[string]*playerEntry, capacity),
		viewers:  make(map[string]*viewerEntry),
		capacity: capacity,
		ttl:      ttl,
	}
}

func (r *Registry) Put(p *archive.Player) error {
	r.mu.Lock()
	evicted := r.evictExpiredLocked()
	if r.capacity > 0 && len(r.players) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		if e, ok := r.players[oldest]; ok {
			evicted = append(evicted, e.player)
			delete(r.players, oldest)
		}
	}
	r.players[p.ID()] = &playerEntry{player: p, createdAt: time.Now()}
	r.order = append(r.order, p.ID())
	r.mu.Unlock()

	r.evict(evicted)
	return nil
}

func (r *Registry) Get(id string) (*archive.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.players[id]; ok {
		return e.player, true
	}
	return nil, false
}

func (r *Registry) Delete(id string) (*archive.Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.players[id]
	if !ok {
		return nil, false
	}
	delete(r.players, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e.player, true
}

func (r *Registry) List() []*archive.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*archive.Player, 0, len(r.players))
	for _, id := range r.order {
		if e, ok := r.players[id]; ok {
			out = append(out, e.player)
		}
	}
	return out
}

// CloseAll releases every player, best-effort. Used on shutdown so remote
// sessions do not outlive the gateway.
func (r *Registry) CloseAll(ctx context.Context) {
	r.mu.Lock()
	all := make([]*archive.Player, 0, len(r.players))
	for _, e := range r.players {
		all = append(all, e.player)
	}
	r.players = make(map[string]*playerEntry)
	r.order = r.order[:0]
	r.mu.Unlock()

	for _, p := range all {
		_ = p.Close(ctx)
	}
}

// PutViewer registers a viewer under the same capacity and TTL pressure as
// players. A burst of failed probes must not pile up peer connections.
func (r *Registry) PutViewer(v *live.Viewer) {
	r.mu.Lock()
	evicted := r.evictExpiredViewersLocked()
	if r.capacity > 0 && len(r.viewers) >= r.capacity {
		oldest := r.viewerOrder[0]
		r.viewerOrder = r.viewerOrder[1:]
		if e, ok := r.viewers[oldest]; ok {
			evicted = append(evicted, e.viewer)
			delete(r.viewers, oldest)
		}
	}
	r.viewers[v.ID] = &viewerEntry{viewer: v, createdAt: time.Now()}
	r.viewerOrder = append(r.viewerOrder, v.ID)
	r.mu.Unlock()

	for _, ev := range evicted {
		ev.Disconnect()
	}
}

func (r *Registry) GetViewer(id string) (*live.Viewer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.viewers[id]; ok {
		return e.viewer, true
	}
	return nil, false
}

func (r *Registry) DeleteViewer(id string) (*live.Viewer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.viewers[id]
	if !ok {
		return nil, false
	}
	delete(r.viewers, id)
	for i, vid := range r.viewerOrder {
		if vid == id {
			r.viewerOrder = append(r.viewerOrder[:i], r.viewerOrder[i+1:]...)
			break
		}
	}
	return e.viewer, true
}

func (r *Registry) DisconnectAll() {
	r.mu.Lock()
	all := make([]*live.Viewer, 0, len(r.viewers))
	for _, e := range r.viewers {
		all = append(all, e.viewer)
	}
	r.viewers = make(map[string]*viewerEntry)
	r.viewerOrder = r.viewerOrder[:0]
	r.mu.Unlock()

	for _, v := range all {
		v.Disconnect()
	}
}

// evictExpiredViewersLocked drops viewers past the TTL. Caller holds the
// write lock; returned viewers still need disconnecting.
func (r *Registry) evictExpiredViewersLocked() []*live.Viewer {
	if r.ttl <= 0 {
		return nil
	}
	now := time.Now()
	var out []*live.Viewer
	i := 0
	for i < len(r.viewerOrder) {
		id := r.viewerOrder[i]
		e := r.viewers[id]
		if e == nil || now.Sub(e.createdAt) > r.ttl {
			if e != nil {
				out = append(out, e.viewer)
			}
			delete(r.viewers, id)
			r.viewerOrder = append(r.viewerOrder[:i], r.viewerOrder[i+1:]...)
			continue
		}
		i++
	}
	return out
}

// evictExpiredLocked drops players past the TTL. Caller holds the write
// lock; returned players still need closing.
func (r *Registry) evictExpiredLocked() []*archive.Player {
	if r.ttl <= 0 {
		return nil
	}
	now := time.Now()
	var out []*archive.Player
	i := 0
	for i < len(r.order) {
		id := r.order[i]
		e := r.players[id]
		if e == nil || now.Sub(e.createdAt) > r.ttl {
			if e != nil {
				out = append(out, e.player)
			}
			delete(r.players, id)
			r.order = append(r.order[:i], r.order[i+1:]...)
			continue
		}
		i++
	}
	return out
}

func (r *Registry) evict(players []*archive.Player) {
	for _, p := range players {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = p.Close(ctx)
		cancel()
		if r.OnEvict != nil {
			r.OnEvict(p)
		}
	}
}

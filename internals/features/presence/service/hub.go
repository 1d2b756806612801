package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Member is one online user as seen by the hub. A user connected from
// several tabs still appears once; OnlineAt is the earliest connection.
type Member struct {
	UserID   string    `json:"user_id"`
	FullName string    `json:"full_name"`
	OnlineAt time.Time `json:"online_at"`
}

// Snapshot is the membership broadcast sent on every join and leave.
type Snapshot struct {
	Type    string   `json:"type"`
	Members []Member `json:"members"`
	Count   int      `json:"count"`
}

type conn struct {
	userID   uuid.UUID
	fullName string
	joinedAt time.Time
	send     chan Snapshot
}

// Hub tracks connected users in memory and fans membership snapshots out to
// every connection. Single process only: presence resets on restart, which
// matches what an online indicator needs.
type Hub struct {
	mu    sync.RWMutex
	conns map[*conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*conn]struct{})}
}

// Join registers a connection and broadcasts the new membership. The
// returned channel delivers snapshots; the leave func must be called on
// disconnect.
func (h *Hub) Join(userID uuid.UUID, fullName string) (<-chan Snapshot, func()) {
	c := &conn{
		userID:   userID,
		fullName: fullName,
		joinedAt: time.Now(),
		send:     make(chan Snapshot, 8),
	}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	h.broadcast("join")

	leave := func() {
		// delete and close together so no broadcast can hit a closed channel
		h.mu.Lock()
		delete(h.conns, c)
		close(c.send)
		h.mu.Unlock()
		h.broadcast("leave")
	}
	return c.send, leave
}

// Members returns the deduplicated online users, ordered by user id.
func (h *Hub) Members() []Member {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.membersLocked()
}

func (h *Hub) membersLocked() []Member {
	byUser := make(map[uuid.UUID]Member, len(h.conns))
	for c := range h.conns {
		if m, ok := byUser[c.userID]; !ok || c.joinedAt.Before(m.OnlineAt) {
			byUser[c.userID] = Member{
				UserID:   c.userID.String(),
				FullName: c.fullName,
				OnlineAt: c.joinedAt,
			}
		}
	}
	members := make([]Member, 0, len(byUser))
	for _, m := range byUser {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })
	return members
}

func (h *Hub) broadcast(event string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	snap := Snapshot{Type: event, Members: h.membersLocked()}
	snap.Count = len(snap.Members)
	for c := range h.conns {
		select {
		case c.send <- snap:
		default:
			// slow consumer: drop this snapshot, the next one supersedes it
		}
	}
}

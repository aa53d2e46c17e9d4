package usecase_battle

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomUnavailable    = errors.New("room unavailable")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrEmptyQuestionBatch = errors.New("empty question batch")
	ErrRoomsUnavailable   = errors.New("no available room codes")
	ErrInternal           = errors.New("internal error")
)

const (
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength    = 4
	createRetries = 5
)

// Registry owns every live Room, keyed by code. It is the single
// mutation point for room creation and removal; per-room state is
// guarded by each Room's own mutex.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
	}
}

// Create allocates a waiting room for playerOne under a freshly
// generated code. Codes are re-rolled on collision with a live room.
func (r *Registry) Create(playerOne Player) (*Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for retries := createRetries; retries > 0; retries-- {
		code, err := generateCode()
		if err != nil {
			return nil, errors.Join(ErrInternal, err)
		}
		if _, taken := r.rooms[code]; taken {
			continue
		}

		room := newRoom(code, playerOne)
		r.rooms[code] = room
		return room, nil
	}

	return nil, ErrRoomsUnavailable
}

func (r *Registry) Get(code string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (r *Registry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, code)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Sweep drops every room older than maxAge regardless of status and
// reports how many were removed.
func (r *Registry) Sweep(maxAge time.Duration) int {
	deadline := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for code, room := range r.rooms {
		if room.CreatedAt().Before(deadline) {
			delete(r.rooms, code)
			removed++
		}
	}
	return removed
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

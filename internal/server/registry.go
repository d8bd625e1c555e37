package server

import "sync"

// Registry owns every room. A registry-wide RWMutex guards the map and a
// per-room mutex serializes access to each room's state, so unrelated
// rooms never block each other. WithRoom is the only sanctioned path to a
// room's mutable state.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*roomEntry
}

type roomEntry struct {
	mu      sync.Mutex
	room    *Room
	deleted bool
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*roomEntry),
	}
}

// Create registers a room under its id.
func (reg *Registry) Create(room *Room) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.rooms[room.ID]; ok {
		return ErrDuplicateID
	}
	reg.rooms[room.ID] = &roomEntry{room: room}
	return nil
}

// WithRoom runs fn with exclusive access to the identified room. No other
// caller observes or mutates the room while fn runs. fn must not retain
// the *Room beyond the call.
func (reg *Registry) WithRoom(id string, fn func(*Room) error) error {
	reg.mu.RLock()
	entry, ok := reg.rooms[id]
	reg.mu.RUnlock()
	if !ok {
		return ErrRoomNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return ErrRoomNotFound
	}
	return fn(entry.room)
}

// Delete removes a room and closes its subscriber channels. Waits for any
// in-flight operation on the room to finish first.
func (reg *Registry) Delete(id string) error {
	reg.mu.Lock()
	entry, ok := reg.rooms[id]
	if ok {
		delete(reg.rooms, id)
	}
	reg.mu.Unlock()
	if !ok {
		return ErrRoomNotFound
	}
	entry.mu.Lock()
	entry.deleted = true
	entry.room.closeSubscribers()
	entry.mu.Unlock()
	return nil
}

// RoomIDs returns a point-in-time snapshot of the registered room ids.
// The phase timer iterates this snapshot; a room deleted in between shows
// up as an ordinary RoomNotFound from WithRoom.
func (reg *Registry) RoomIDs() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ids := make([]string, 0, len(reg.rooms))
	for id := range reg.rooms {
		ids = append(ids, id)
	}
	return ids
}

// RoomSummary is one row of the room listing.
type RoomSummary struct {
	ID          string `json:"room_id"`
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
	Phase       string `json:"phase"`
}

// ListRooms snapshots (id, name, player count, phase) for every room.
func (reg *Registry) ListRooms() []RoomSummary {
	ids := reg.RoomIDs()
	list := make([]RoomSummary, 0, len(ids))
	for _, id := range ids {
		_ = reg.WithRoom(id, func(room *Room) error {
			list = append(list, RoomSummary{
				ID:          room.ID,
				Name:        room.Config.Name,
				PlayerCount: room.PlayerCount(),
				MaxPlayers:  room.Config.MaxPlayers,
				Phase:       string(room.Phase()),
			})
			return nil
		})
	}
	return list
}

// RoomCount returns the number of registered rooms.
func (reg *Registry) RoomCount() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

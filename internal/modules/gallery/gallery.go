// Package gallery keeps the rolling, session-scoped list of generated images.
// Entries live only in process memory and expire with the session.
package gallery

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/reusedev/imagen-studio/internal/modules/cache"
)

var ErrNoSession = errors.New("session id is required")

type Entry struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Note      string    `json:"note,omitempty"`
	Model     string    `json:"model"`
	MIMEType  string    `json:"mime_type"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	PNG       []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Gallery struct {
	cache      *cache.Manager[[]Entry]
	maxEntries int
	ttl        time.Duration
	mu         sync.Mutex
}

func New(maxEntries int, ttl time.Duration) *Gallery {
	if maxEntries <= 0 {
		maxEntries = 12
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Gallery{
		cache:      cache.NewManager[[]Entry](ttl, ttl),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

func key(sessionID string) string {
	return "gallery_" + sessionID
}

// Add appends e as the newest entry, dropping the oldest beyond the cap.
// ID and CreatedAt are filled when empty.
func (g *Gallery) Add(sessionID string, e Entry) (Entry, error) {
	if sessionID == "" {
		return Entry{}, ErrNoSession
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	entries, err := g.cache.GetValue(key(sessionID))
	if err != nil {
		return Entry{}, err
	}
	entries = append(entries, e)
	if len(entries) > g.maxEntries {
		entries = append([]Entry(nil), entries[len(entries)-g.maxEntries:]...)
	}
	if err := g.cache.SetWithExpiration(key(sessionID), entries, g.ttl); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// List returns copies of the session's entries, oldest first, and extends
// the session's lifetime.
func (g *Gallery) List(sessionID string) ([]Entry, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	entries, err := g.cache.GetValue(key(sessionID))
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	if err := g.cache.SetWithExpiration(key(sessionID), entries, g.ttl); err != nil {
		return nil, err
	}
	var out []Entry
	if err := copier.Copy(&out, &entries); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PNG = bytes.Clone(entries[i].PNG)
	}
	return out, nil
}

// Previous is every entry except the newest one.
func (g *Gallery) Previous(sessionID string) ([]Entry, error) {
	entries, err := g.List(sessionID)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return entries[:len(entries)-1], nil
}

func (g *Gallery) Get(sessionID, id string) (Entry, bool, error) {
	entries, err := g.List(sessionID)
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

func (g *Gallery) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cache.Delete(key(sessionID))
}

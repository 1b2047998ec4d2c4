// Package panel defines the structured payloads handed to the visual
// surface, and a small in-memory store the surface polls.
//
// Every tool result carries a short human-readable summary plus one
// Panel. The panel's Type field is the discriminant that selects how
// the payload is interpreted downstream; the renderer itself is an
// external collaborator and only this boundary is owned here.
package panel

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luminalabs/lumina-mcp/pkg/hypercube"
	"github.com/luminalabs/lumina-mcp/pkg/lineage"
)

// Type discriminates panel payloads.
type Type string

const (
	TypeItemList Type = "item-list"
	TypeDetail   Type = "detail"
	TypeLineage  Type = "lineage"
	TypeChart    Type = "chart"
	TypeError    Type = "error"
)

// Panel is one display-ready unit for the visual surface.
type Panel struct {
	ID        string    `json:"id"`
	Type      Type      `json:"panelType"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Payload   any       `json:"payload"`
}

// ItemListPayload carries a resource listing.
type ItemListPayload struct {
	Kind      string `json:"kind"` // resource kind, e.g. "space", "automation"
	Items     any    `json:"items"`
	Count     int    `json:"count"`
	Truncated bool   `json:"truncated"` // true when a pagination ceiling triggered
}

// DetailPayload carries a single resource.
type DetailPayload struct {
	Kind     string `json:"kind"`
	Resource any    `json:"resource"`
}

// LineagePayload carries a tier-classified lineage graph.
type LineagePayload struct {
	Classification lineage.Classification `json:"classification"`
	NodeCount      int                    `json:"nodeCount"`
	EdgeCount      int                    `json:"edgeCount"`
}

// ChartPayload carries a render-ready chart series. When the engine
// query failed, ErrorMessage is set and the series arrays are empty;
// the panel is still a valid chart panel so the surface can show the
// failure in place instead of dropping the response.
type ChartPayload struct {
	Geometry     hypercube.Geometry `json:"geometry"`
	Series       hypercube.Series   `json:"series"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

// ErrorPayload carries a tool-level failure.
type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// New builds a panel with a fresh id and timestamp.
func New(t Type, title string, payload any) Panel {
	return Panel{
		ID:        uuid.NewString(),
		Type:      t,
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}

// DefaultKeep is how many recent panels the store retains.
const DefaultKeep = 50

// Store holds the most recent panels in a bounded ring. It is safe for
// concurrent use. Nothing is persisted: the store exists so a local
// renderer can poll what the tools produced most recently.
type Store struct {
	mu     sync.RWMutex
	keep   int
	panels []Panel // newest last
}

// NewStore creates a store retaining up to keep panels.
// keep <= 0 means [DefaultKeep].
func NewStore(keep int) *Store {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Store{keep: keep}
}

// Add records a panel, evicting the oldest when full, and returns it.
func (s *Store) Add(p Panel) Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panels = append(s.panels, p)
	if len(s.panels) > s.keep {
		s.panels = s.panels[len(s.panels)-s.keep:]
	}
	return p
}

// List returns all retained panels, newest first.
func (s *Store) List() []Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Panel, len(s.panels))
	for i, p := range s.panels {
		out[len(s.panels)-1-i] = p
	}
	return out
}

// Get returns the panel with the given id, or false.
func (s *Store) Get(id string) (Panel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

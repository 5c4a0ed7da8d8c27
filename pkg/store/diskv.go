package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/actionmenu/pkg/state"
)

// stateKey is the single document key: the whole AppState lives in one file
// under the base path.
const stateKey = "state.json"

// Persistence is the gateway for the state document.
//
// Load never fails: a missing or unreadable document yields the documented
// cold-start defaults, silently discarding anything unparseable. Save
// serializes the full aggregate and overwrites the previous document; write
// failures propagate to the caller.
type Persistence interface {
	Load(ctx context.Context) *state.AppState
	Save(ctx context.Context, s *state.AppState) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A nil
// config falls back to LoadConfig.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) *state.AppState {
	raw, err := p.d.Read(stateKey)
	if err != nil {
		// Cold start: no document yet.
		return state.New()
	}
	s := state.New()
	if err := json.Unmarshal(raw, s); err != nil {
		// Corruption is non-fatal. The unreadable document is discarded and
		// replaced by defaults on the next save.
		return state.New()
	}
	s.Normalize()
	return s
}

func (p *persistence) Save(_ context.Context, s *state.AppState) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	// diskv creates the base path on first write.
	return p.d.Write(stateKey, data)
}

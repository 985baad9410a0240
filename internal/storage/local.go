package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	localObject   = "flappy"
	localProperty = "best"
)

// LocalStore keeps the best score in per-user save data. It has no run
// history; the window frontend uses it by default.
type LocalStore struct {
	m *gdata.Manager
}

// OpenLocal opens the save data for appName.
func OpenLocal(appName string) (*LocalStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &LocalStore{m: m}, nil
}

// LoadBest returns the saved best score. A malformed value is reported as
// ErrMalformedBest.
func (s *LocalStore) LoadBest() (int, bool, error) {
	if !s.m.ObjectPropExists(localObject, localProperty) {
		return 0, false, nil
	}
	data, err := s.m.LoadObjectProp(localObject, localProperty)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	best, err := ParseBest(string(data))
	if err != nil {
		return 0, false, err
	}
	return best, true, nil
}

// SaveBest writes the best score as decimal text.
func (s *LocalStore) SaveBest(best int) error {
	if err := s.m.SaveObjectProp(localObject, localProperty, []byte(FormatBest(best))); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

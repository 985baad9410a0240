package storage

// GameScores binds a Backend to one game. It satisfies the engine's
// ScoreStore and RunRecorder interfaces.
type GameScores struct {
	Backend Backend
	GameID  string
}

// NewGameScores returns a GameScores for gameID on b.
func NewGameScores(b Backend, gameID string) *GameScores {
	return &GameScores{Backend: b, GameID: gameID}
}

// LoadBest returns the stored best score. A malformed value is reported as
// ErrMalformedBest.
func (g *GameScores) LoadBest() (int, bool, error) {
	value, ok, err := g.Backend.BestValue(g.GameID)
	if err != nil || !ok {
		return 0, false, err
	}
	best, err := ParseBest(value)
	if err != nil {
		return 0, false, err
	}
	return best, true, nil
}

// SaveBest raises the stored best score to best.
func (g *GameScores) SaveBest(best int) error {
	return g.Backend.RaiseBest(g.GameID, best)
}

// RecordRun adds a finished run to the history.
func (g *GameScores) RecordRun(score int) error {
	_, err := g.Backend.SaveScore(g.GameID, score)
	return err
}

// Top returns the best runs, best first.
func (g *GameScores) Top(limit int) ([]ScoreEntry, error) {
	return g.Backend.TopScores(g.GameID, limit)
}

// Stats aggregates the run history.
func (g *GameScores) Stats() (*GameStats, error) {
	return g.Backend.Stats(g.GameID)
}

// Clear deletes the history and the best score.
func (g *GameScores) Clear() error {
	return g.Backend.ClearScores(g.GameID)
}

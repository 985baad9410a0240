package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures NewSSHServer.
type SSHServerConfig struct {
	Address     string        // host:port
	HostKeyPath string        // Empty means ~/.flappy/host_key, created on first start
	IdleTimeout time.Duration // Idle connections are closed after this long
	Params      flappy.Params // Every session plays with these
	TickRate    int           // Frames per second of every session
}

// DefaultSSHServerConfig listens on :23234 with the default game.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Params:      flappy.DefaultParams(),
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// sessionKey stores a session's engine in its ssh.Context.
type sessionKey struct{}

// SSHServer gives every SSH connection its own engine and Bubble Tea
// program. Sessions share the score backend, so a best set by one player is
// the best every later session starts from.
type SSHServer struct {
	cfg     SSHServerConfig
	server  *ssh.Server
	backend storage.Backend // nil keeps each session's best in memory
	logger  *log.Logger
	active  atomic.Int64
}

// NewSSHServer validates cfg and prepares the server; nothing listens until
// ListenAndServe.
func NewSSHServer(cfg SSHServerConfig, backend storage.Backend, logger *log.Logger) (*SSHServer, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	hostKey, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		cfg:     cfg,
		backend: backend,
		logger:  logger.WithPrefix("flappy-ssh"),
	}
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.trackSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists. wish generates the key itself when the file is missing.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return "", errors.New("cannot get home directory for host key")
		}
		path = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession starts a game for one connection. Connections without a PTY
// are refused.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	logger := s.logger.With("session", uuid.NewString(), "user", sess.User())
	opts := []flappy.Option{
		flappy.WithLogger(logger),
		flappy.WithSeed(time.Now().UnixNano()),
	}
	var scores ScoreSource
	if s.backend != nil {
		gs := storage.NewGameScores(s.backend, flappy.GameID)
		opts = append(opts, flappy.WithStore(gs))
		scores = gs
	}

	engine, err := flappy.NewEngine(s.cfg.Params, time.Now(), opts...)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		return nil, nil
	}
	sess.Context().SetValue(sessionKey{}, engine)

	model := NewModel(engine, scores, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// trackSession wraps every connection: it counts live sessions and, once
// the program has exited, stops the engine and logs how the session ended.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		began := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started", "active", s.active.Add(1))

		next(sess)

		fields := []any{"active", s.active.Add(-1), "duration", time.Since(began).Round(time.Second)}
		if engine, ok := sess.Context().Value(sessionKey{}).(*flappy.Engine); ok {
			engine.Stop()
			st := engine.Session()
			fields = append(fields, "best", st.Best)
			if err := engine.Err(); err != nil && !errors.Is(err, flappy.ErrStopped) {
				fields = append(fields, "error", err)
			}
		}
		logger.Info("session ended", fields...)
	}
}

// Sessions returns the number of connected players.
func (s *SSHServer) Sessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.Sessions())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to shutdownGrace for
// live sessions to end.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

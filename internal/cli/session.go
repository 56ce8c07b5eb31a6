package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/paths"
	"github.com/mesh-intelligence/flowtask/pkg/store"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// session is an attached store plus the loaded dashboard state.
type session struct {
	cfg   types.Config
	store types.Store
	app   *dashboard.App
	log   *logrus.Entry
}

// settings is the resolved configuration for one invocation.
type settings struct {
	configDir string
	store     types.Config
	// configBackend is the backend before --ephemeral is applied.
	configBackend string
	logLevel      string
	maxImage      int64
}

// resolve applies flag > config.yaml > env > default precedence.
func (e *env) resolve() (settings, *viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return settings{}, nil, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, nil, err
	}
	dataDir, err := paths.ResolveDataDir(e.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := v.GetString(cfgKeyBackend)
	if e.flags.backend != "" {
		backend = e.flags.backend
	}
	configBackend := strings.ToLower(backend)
	if e.flags.ephemeral {
		backend = types.BackendMemory
	}
	level := v.GetString(cfgKeyLogLevel)
	if e.flags.logLevel != "" {
		level = e.flags.logLevel
	}

	return settings{
		configDir:     configDir,
		store:         types.Config{Backend: strings.ToLower(backend), DataDir: dataDir},
		configBackend: configBackend,
		logLevel:      level,
		maxImage:      v.GetInt64(cfgKeyMaxImageBytes),
	}, v, nil
}

func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, usagef("invalid log level %q", level)
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

// attach resolves configuration and attaches the store without loading any
// documents. The caller must Detach the returned store.
func (e *env) attach(cmd *cobra.Command) (settings, types.Store, *logrus.Entry, error) {
	st, _, err := e.resolve()
	if err != nil {
		return settings{}, nil, nil, err
	}
	log, err := newLogger(cmd, st.logLevel)
	if err != nil {
		return settings{}, nil, nil, err
	}
	entry := log.WithField("backend", st.store.Backend)

	if err := st.store.Validate(); err != nil {
		return settings{}, nil, nil, usagef("backend %q: %w", st.store.Backend, err)
	}
	s, err := store.Open(st.store)
	if err != nil {
		return settings{}, nil, nil, err
	}
	entry.WithField("data_dir", st.store.DataDir).Debug("store attached")
	return st, s, entry, nil
}

// open attaches the store and loads the dashboard. The caller must close
// the session.
func (e *env) open(cmd *cobra.Command) (*session, error) {
	st, s, entry, err := e.attach(cmd)
	if err != nil {
		return nil, err
	}
	app := dashboard.New(s,
		dashboard.WithClock(e.now),
		dashboard.WithLogger(entry),
		dashboard.WithMaxImageBytes(st.maxImage),
	)
	if err := app.Load(); err != nil {
		detach(s, entry)
		return nil, err
	}
	return &session{cfg: st.store, store: s, app: app, log: entry}, nil
}

func (s *session) close() {
	detach(s.store, s.log)
}

func detach(s types.Store, log *logrus.Entry) {
	if err := s.Detach(); err != nil {
		log.WithError(err).Warn("detach store")
	}
}

// withSession runs fn with an open session and closes it afterwards.
func (e *env) withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := e.open(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

// run adapts a session-taking handler to cobra's RunE.
func (e *env) run(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return e.withSession(cmd, func(s *session) error { return fn(cmd, args, s) })
	}
}

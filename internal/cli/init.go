package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize flowtask configuration and storage",
		Long: "Create the configuration directory with a default config.yaml, then\n" +
			"attach the storage backend once so first-run defaults are written.",
		Args: usageArgs(cobra.NoArgs),
		RunE: e.runInit,
	}
}

type initResult struct {
	ConfigFile    string `json:"config_file"`
	ConfigWritten bool   `json:"config_written"`
	Backend       string `json:"backend"`
	DataDir       string `json:"data_dir"`
}

func (e *env) runInit(cmd *cobra.Command, _ []string) error {
	st, _, err := e.resolve()
	if err != nil {
		return err
	}

	dataDir := ""
	if e.flags.dataDir != "" {
		dataDir = st.store.DataDir
	}
	configPath := filepath.Join(st.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, configFile{
		Backend:       st.configBackend,
		DataDir:       dataDir,
		LogLevel:      st.logLevel,
		MaxImageBytes: st.maxImage,
	})
	if err != nil {
		return err
	}

	// Attaching and loading seeds the timeline and notes.
	if err := e.withSession(cmd, func(*session) error { return nil }); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	res := initResult{
		ConfigFile:    configPath,
		ConfigWritten: written,
		Backend:       st.store.Backend,
		DataDir:       st.store.DataDir,
	}
	return e.emit(cmd.OutOrStdout(), res,
		fmt.Sprintf("FlowTask initialized (%s backend, data in %s)", res.Backend, res.DataDir))
}

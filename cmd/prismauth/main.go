package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/prismworlds/prism-auth/pkg/accounts"
	"github.com/prismworlds/prism-auth/pkg/credentials"
	"github.com/prismworlds/prism-auth/pkg/logging"
	"github.com/prismworlds/prism-auth/pkg/session"
)

var (
	version = "dev" // Will be set during build
	cfgFile string
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "prismauth",
	Short:         "PrismWorlds account manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `PrismWorlds account manager (prismauth) - local account and session tool

Manages the locally persisted account directory and the saved session used
by the PrismWorlds front end. All state lives under data_dir; there is no
remote server.

Configuration file must be in JSON format with the following structure:
{
    "data_dir": "data",
    "password_scheme": "plaintext",
    "app_log_path": "log/prismauth.log",
    "debug": false
}`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (required)")
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, profileCmd)
}

// setup loads the config, initializes logging and builds a restored
// session manager
func setup() (*session.Manager, error) {
	if cfgFile == "" {
		return nil, fmt.Errorf("config file is required (use --config)")
	}
	if !filepath.IsAbs(cfgFile) {
		var err error
		cfgFile, err = filepath.Abs(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		}
	}

	var config Config
	if err := LoadConfig(cfgFile, &config); err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}

	level := logging.LogLevelInfo
	if config.Debug {
		level = logging.LogLevelDebug
	}
	if err := logging.Initialize(config.AppLogPath, level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %v", err)
	}

	osFs := afero.NewOsFs()
	directory, err := accounts.NewDirectory(accounts.NewFileSource(osFs, config.DirectoryPath()))
	if err != nil {
		return nil, fmt.Errorf("failed to create account directory: %v", err)
	}

	var scheme credentials.Scheme
	if config.PasswordScheme == SchemeUnixCrypt {
		scheme = credentials.NewUnixCrypt()
	} else {
		scheme = credentials.NewPlaintext()
	}

	// The durable store survives between invocations; the scoped store
	// lives on an in-memory filesystem and with it ends when this
	// process does.
	durable := session.NewFileStore(osFs, config.SessionPath())
	scoped := session.NewFileStore(afero.NewMemMapFs(), "session.json")

	manager, err := session.NewManager(directory, scheme, durable, scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to create session manager: %v", err)
	}
	manager.Restore()
	return manager, nil
}

// report prints a result's message and converts failures into command
// errors
func report(res session.Result) error {
	if !res.OK {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return nil
}

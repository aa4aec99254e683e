package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/cometbft/sigverify/config"
	"github.com/cometbft/sigverify/libs/cli"
	cmtflags "github.com/cometbft/sigverify/libs/cli/flags"
	"github.com/cometbft/sigverify/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewLogger(os.Stderr)
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", config.LogLevel, "log level")
	cmd.PersistentFlags().String("log_format", config.LogFormat, "log format (plain or json)")
}

// ParseConfig retrieves the default environment configuration, sets up the
// sigverify root, ensures that the root exists and loads the chains file.
func ParseConfig(*cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	// home is set by the --home flag or SIGVERIFY_HOME.
	conf.SetRoot(viper.GetString(cli.HomeFlag))
	cfg.EnsureRoot(conf.RootDir)

	chains, err := cfg.LoadChainsFile(conf.ChainsFilePath())
	if err != nil {
		return nil, err
	}
	conf.Chains = chains
	if err := conf.ValidateBasic(); err != nil {
		return nil, errors.Wrap(err, "error in config file")
	}
	return conf, nil
}

// RootCmd is the root command for sigverify.
var RootCmd = &cobra.Command{
	Use:   "sigverify",
	Short: "Verify Cosmos and Ethereum wallet signatures and derive addresses",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		config, err = ParseConfig(cmd)
		if err != nil {
			return err
		}

		if config.LogFormat == cfg.LogFormatJSON {
			logger = log.NewJSONLogger(os.Stderr)
		} else {
			logger = log.NewLoggerWithColor(os.Stderr, config.LogColors)
		}

		logger, err = cmtflags.ParseLogLevel(config.LogLevel, logger, cfg.DefaultLogLevel)
		if err != nil {
			return err
		}

		return nil
	},
}

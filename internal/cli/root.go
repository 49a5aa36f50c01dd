package cli

import (
	"fmt"

	"github.com/Domenick1991/airboard/config"
	"github.com/Domenick1991/airboard/internal/bootstrap"
	"github.com/Domenick1991/airboard/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigPath = "config.yaml"

// NewRootCommand builds the show-airport-board command. Config path comes
// from --config or CONFIG_PATH, the banner from MESSAGE.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "show-airport-board",
		Short:         "Show airport board with flight and total information.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetCount("verbose")
			logger.SetLogLevel(verbose)
			return bindConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := bootstrap.NewFlightService(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := []BoardOption{WithMessage(cfg.Board.Message)}
			if producer := bootstrap.NewProducer(cfg.Kafka); producer != nil {
				defer producer.Close()
				opts = append(opts, WithPublisher(producer, cfg.Kafka.BoardTopic))
			}

			if err := NewBoard(svc, cmd.OutOrStdout(), opts...).Show(ctx); err != nil {
				return fmt.Errorf("show airport board: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "path to the YAML config file (env CONFIG_PATH, default "+defaultConfigPath+")")
	cmd.PersistentFlags().CountP("verbose", "v", "increase logging verbosity, 1=warn, 2=info, 3=debug")

	return cmd
}

func bindConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		return err
	}
	if err := v.BindEnv("config", "CONFIG_PATH"); err != nil {
		return err
	}
	return v.BindEnv("message", "MESSAGE")
}

// loadConfig tolerates a missing file only at the default path.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := v.GetString("config"); path != "" {
		cfg, err = config.LoadConfig(path)
	} else {
		cfg, err = config.LoadOptional(defaultConfigPath)
	}
	if err != nil {
		return nil, err
	}

	if msg := v.GetString("message"); msg != "" {
		cfg.Board.Message = msg
	}

	l := logger.GetLogger()
	l.Debug().Str("source", cfg.Board.Source).Bool("banner", cfg.Board.Message != "").Msg("config loaded")
	return cfg, nil
}

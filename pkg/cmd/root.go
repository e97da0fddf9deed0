package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/newsalpha/newsplot/pkg/plot"
)

var RootCmd = &cobra.Command{
	Use:   "newsplot",
	Short: "news sentiment and stock charts",
	Long:  "newsplot renders stock, news publication, sentiment and technical indicator charts from CSV files",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(log.StandardLogger())

		dotenvFile := viper.GetString("dotenv")
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return err
			}
			log.Debugf("loaded dotenv file %s", dotenvFile)
		}

		return loadConfig(viper.GetString("config"))
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file to load before running a command")
	RootCmd.PersistentFlags().String("log-file", "", "also write the logs as JSON to this file")
	RootCmd.PersistentFlags().Int("log-max-size", 10, "size in megabytes before the log file is rotated")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	// For global flags, assign a flag as a persistent flag on the root.
	RootCmd.PersistentFlags().String("output-dir", "figures", "the directory the figures are written to")
	RootCmd.PersistentFlags().String("format", plot.FormatPNG, "figure format, png or svg")
	RootCmd.PersistentFlags().Float64("scale", 1.0, "scale of the figure size")
	RootCmd.PersistentFlags().Float64("dpi", 0, "figure dpi, the chart default when zero")
}

func Execute() {
	viper.SetEnvPrefix("newsplot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, e.g. NEWSPLOT_OUTPUT_DIR.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

// setupLogger applies the flags once cobra has parsed them.
func setupLogger(logger *log.Logger) {
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if logFile := viper.GetString("log-file"); logFile != "" {
		writer := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    viper.GetInt("log-max-size"),
			MaxBackups: 3,
		}

		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}

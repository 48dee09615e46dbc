package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "trackmap",
	Short:        "Place trip photos on a map along the recorded track",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .trackmap.yaml in the current or home directory)")

	rootCmd.PersistentFlags().StringP("trip-dir", "d", "", "Trip directory")
	mustBindPFlag(config.KeyTripDirectory, rootCmd.PersistentFlags().Lookup("trip-dir"))

	rootCmd.PersistentFlags().String("log-level", "", "Log level")
	mustBindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working and home directory with name ".trackmap" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".trackmap")
	}

	viper.SetEnvPrefix("trackmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}
}

// setup loads the validated settings and the logger configured by them.
func setup() (*config.Settings, zerolog.Logger, error) {
	settings, err := config.Current()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger, err := logging.New(settings.Log.Level, settings.Log.Pretty)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug().Str("file", used).Msg("using config file")
	}

	return settings, logger, nil
}

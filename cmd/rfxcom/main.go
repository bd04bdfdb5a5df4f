// Rfxcom receives 433MHz home automation traffic from an RFXCOM receiver and
// publishes the decoded messages.
//
// Usage:
//
//	rfxcom listen [flags]
//	rfxcom decode <bits> <hex> [<bits> <hex>...]
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/barnybug/gorfxcom/config"
)

var log = logrus.WithField("component", "main")

var (
	configPath string
	logLevel   string
	logFormat  string
	conf       *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rfxcom",
	Short: "RFXCOM 433MHz receiver",
	Long: `Receive and decode X10, HomeEasy, Oregon Scientific and Owl transmissions
from an RFXCOM USB receiver, publishing them to MQTT and graphite.

Configuration is read from ` + config.ConfigPath("rfxcom.yml") + ` by default.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath("rfxcom.yml"), "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides config")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json), overrides config")
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(decodeCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.Open(configPath)
	if err != nil {
		return errors.Wrapf(err, "loading %s", configPath)
	}
	if logLevel != "" {
		conf.Log.Level = logLevel
	}
	if logFormat != "" {
		conf.Log.Format = logFormat
	}
	return setupLogging(conf.Log)
}

func setupLogging(c config.LogConf) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	switch c.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("unknown log format %q", c.Format)
	}
	logrus.SetOutput(os.Stderr)
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/barnybug/gorfxcom/pubsub"
	"github.com/barnybug/gorfxcom/rfxcom"
	"github.com/barnybug/gorfxcom/transport"
)

var (
	device        string
	driver        string
	printMessages bool
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive and publish messages until interrupted",
	Example: `  # Listen on the configured device, printing messages
  rfxcom listen --print

  # Use the tarm driver on a specific port with wire dumps
  rfxcom listen --device /dev/ttyUSB0 --driver tarm --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringVar(&device, "device", "", "Serial device path or glob, overrides config")
	listenCmd.Flags().StringVar(&driver, "driver", "", "Serial driver (bugst, tarm), overrides config")
	listenCmd.Flags().BoolVar(&printMessages, "print", false, "Print messages to stdout")
}

func runListen(cmd *cobra.Command, args []string) error {
	opts := conf.TransportOptions()
	if device != "" {
		opts.Device = device
	}
	if driver != "" {
		opts.Driver = driver
	}

	var extra []pubsub.Publisher
	if printMessages {
		extra = append(extra, printer{cmd.OutOrStdout()})
	}
	pipe, err := newPipeline(conf, extra...)
	if err != nil {
		return err
	}
	defer pipe.Close()

	t, err := transport.Open(opts)
	if err != nil {
		return err
	}
	r := rfxcom.New(t, conf.ReceiverOptions())
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Run(ctx, pipe.Handle)
}

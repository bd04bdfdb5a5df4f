package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/barnybug/gorfxcom/rfxcom"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <bits> <hex> [<bits> <hex>...]",
	Short: "Decode captured frames",
	Long: `Decode frames given as a bit count and hex payload, as logged by
listen with --log-level debug. Frames pass through deduplication, drop rules
and device naming as they would when listening.`,
	Example: `  rfxcom decode 32 649b08f7
  rfxcom decode 34 "c7 e0 5d e0 00"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return errors.New("expected pairs of <bits> <hex>")
		}
		return nil
	},
	RunE: runDecode,
}

type frame struct {
	bits   byte
	packet []byte
}

func parseFrames(args []string) ([]frame, error) {
	var frames []frame
	for i := 0; i < len(args); i += 2 {
		bits, err := strconv.ParseUint(args[i], 0, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "bad bit count %q", args[i])
		}
		packet, err := hex.DecodeString(strings.Replace(args[i+1], " ", "", -1))
		if err != nil {
			return nil, errors.Wrapf(err, "bad payload %q", args[i+1])
		}
		frames = append(frames, frame{byte(bits), packet})
	}
	return frames, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	frames, err := parseFrames(args)
	if err != nil {
		return err
	}
	pipe, err := newPipeline(conf, printer{cmd.OutOrStdout()})
	if err != nil {
		return err
	}
	defer pipe.Close()

	r := rfxcom.New(nil, conf.ReceiverOptions())
	for _, f := range frames {
		if msg := r.Decode(f.bits, f.packet); msg != nil {
			pipe.Handle(msg)
		}
	}
	log.Infoln(r.Stats())
	return nil
}

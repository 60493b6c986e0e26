// Command rs59 encodes stdin into Reed-Solomon codewords over PF(59), or
// decodes and corrects them with -d.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"rs59/flags"
	"rs59/logging"
	"rs59/reedsolomon"
	"rs59/stream"
	"syscall"
)

func main() {
	log := logging.GetCLILogger("rs59")

	args, err := flags.GetApplicationArguments()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}

	coder, err := reedsolomon.Get(args.N, args.K)
	if err != nil {
		log.Error().Err(err).Msg("cannot build code")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := args.StreamConfig()
	log.Debug().
		Int("n", coder.N()).
		Int("k", coder.K()).
		Str("mode", conf.Mode.String()).
		Int("workers", conf.Workers).
		Msg("starting")

	stats, err := stream.NewDriver(coder, conf).Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		log.Error().Err(err).Int("blocks", stats.Blocks).Msg("stream failed")
		stop()
		os.Exit(1)
	}
	if conf.Mode == stream.Decode && stats.Corrected > 0 {
		log.Info().Int("blocks", stats.Blocks).Int("corrected", stats.Corrected).Msg("corrected errors")
	}
}

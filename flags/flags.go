package flags

import (
	"flag"
	"io"
	"os"
	"rs59/reedsolomon"
	"rs59/stream"
	"runtime"

	"golang.org/x/xerrors"
)

type ApplicationArguments struct {
	Decode, FixedWidth, Strict, Framed bool
	N, K, Workers                      int
}

// Params returns the code selected by the arguments
func (a ApplicationArguments) Params() reedsolomon.Params {
	return reedsolomon.Params{N: a.N, K: a.K}
}

// StreamConfig returns the configuration of the stream driver
func (a ApplicationArguments) StreamConfig() stream.Config {
	mode := stream.Encode
	if a.Decode {
		mode = stream.Decode
	}
	return stream.Config{
		Mode:          mode,
		PreserveWidth: a.FixedWidth,
		Strict:        a.Strict,
		Workers:       a.Workers,
		Framed:        a.Framed,
	}
}

func GetApplicationArguments() (ApplicationArguments, error) {
	return ParseArguments(os.Args[1:], os.Stderr)
}

// ParseArguments parses args, writing usage and parse errors to output
func ParseArguments(args []string, output io.Writer) (ApplicationArguments, error) {
	// Creating struct with default arguments
	arguments := ApplicationArguments{}

	fs := flag.NewFlagSet("rs59", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&arguments.Decode, "d", false,
		"Decode codewords read from stdin instead of encoding messages")
	fs.IntVar(&arguments.N, "n", 58, "Codeword length, at most 58")
	fs.IntVar(&arguments.K, "k", 46, "Message length, smaller than n")
	fs.BoolVar(&arguments.FixedWidth, "fixed", false,
		"Keep the leading zero symbols of decoded messages")
	fs.BoolVar(&arguments.Strict, "strict", false,
		"Verify corrected codewords and fail on uncorrectable blocks")
	fs.IntVar(&arguments.Workers, "workers", runtime.NumCPU(),
		"Number of blocks processed in parallel")
	fs.BoolVar(&arguments.Framed, "framed", false,
		"Write codewords, or read them when decoding, as length prefixed frames")

	err := fs.Parse(args)
	if err != nil {
		return ApplicationArguments{}, err
	}
	if fs.NArg() > 0 {
		return ApplicationArguments{}, xerrors.Errorf("unexpected arguments %v", fs.Args())
	}

	err = arguments.Params().Validate()
	if err != nil {
		return ApplicationArguments{}, err
	}
	return arguments, nil
}

// Package stream encodes or decodes a stream of symbols block by block.
package stream

import (
	"bufio"
	"context"
	"io"
	"rs59/logging"
	"rs59/marshalling"
	"rs59/reedsolomon"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// ErrShortBlock is returned when the input of the decoder ends in the middle
// of a codeword.
var ErrShortBlock = xerrors.New("input ends with an incomplete block")

// Mode selects the operation applied to each block
type Mode int

const (
	// Encode reads blocks of k symbols and writes codewords of n symbols
	Encode Mode = iota
	// Decode reads blocks of n symbols and writes the messages
	Decode
)

func (m Mode) String() string {
	if m == Decode {
		return "decode"
	}
	return "encode"
}

// Config is the configuration of a Driver
type Config struct {
	Mode Mode
	// PreserveWidth keeps the leading zero symbols of decoded messages
	PreserveWidth bool
	// Strict fails on blocks that are still invalid after correction
	Strict bool
	// Workers is the number of blocks processed in parallel, NumCPU if <= 0
	Workers int
	// Framed reads and writes codewords as length prefixed frames
	Framed bool
}

// Stats summarizes a run
type Stats struct {
	Blocks int
	// Corrected is the number of symbols fixed by the decoder
	Corrected int
}

// Driver applies a code to every block of a stream
type Driver struct {
	codes reedsolomon.Codes
	conf  Config
	log   zerolog.Logger
}

func NewDriver(codes reedsolomon.Codes, conf Config) *Driver {
	if conf.Workers <= 0 {
		conf.Workers = runtime.NumCPU()
	}
	return &Driver{
		codes: codes,
		conf:  conf,
		log:   logging.GetLogger("stream"),
	}
}

type job struct {
	block marshalling.Block
	res   chan result
}

type result struct {
	index     uint32
	payload   string
	corrected int
	err       error
}

// Run processes in until it is exhausted and writes the results to out in
// input order, each block as soon as it and the blocks before it are done.
// Blocks are processed concurrently, the first error stops the run.
func (d *Driver) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	stats := Stats{}
	jobs := make(chan job, d.conf.Workers)
	pending := make(chan chan result, d.conf.Workers)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		defer close(pending)
		return d.read(ctx, in, jobs, pending)
	})

	for i := 0; i < d.conf.Workers; i++ {
		g.Go(func() error {
			for j := range jobs {
				j.res <- d.process(j.block)
			}
			return nil
		})
	}

	// Every result in pending belongs to a job already sent to a worker, so
	// it is always filled, even after the reader failed.
	g.Go(func() error {
		for res := range pending {
			r := <-res
			if r.err != nil {
				d.log.Error().Err(r.err).Uint32("block", r.index).Msg("cannot process block")
				return r.err
			}
			err := d.write(out, r)
			if err != nil {
				return xerrors.Errorf("cannot write block %d: %w", r.index, err)
			}
			stats.Blocks++
			stats.Corrected += r.corrected
		}
		return nil
	})

	err := g.Wait()
	d.log.Info().
		Str("mode", d.conf.Mode.String()).
		Int("blocks", stats.Blocks).
		Int("corrected", stats.Corrected).
		Msg("stream done")
	return stats, err
}

// read splits in into blocks and queues them, in order, for the workers and
// the writer.
func (d *Driver) read(ctx context.Context, in io.Reader, jobs chan<- job, pending chan<- chan result) error {
	next := d.rawBlocks(in)
	if d.conf.Framed && d.conf.Mode == Decode {
		next = d.frames(in)
	}

	for {
		block, err := next()
		if xerrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		res := make(chan result, 1)
		select {
		case jobs <- job{block: block, res: res}:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case pending <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// rawBlocks returns an iterator over fixed size blocks of in
func (d *Driver) rawBlocks(in io.Reader) func() (marshalling.Block, error) {
	size := d.codes.K()
	if d.conf.Mode == Decode {
		size = d.codes.N()
	}

	r := newlineFilter{r: in}
	index := uint32(0)
	return func() (marshalling.Block, error) {
		if size == 0 {
			return marshalling.Block{}, xerrors.Errorf("blocks of the (%d, %d) code carry no symbols: %w",
				d.codes.N(), d.codes.K(), reedsolomon.ErrInvalidParameters)
		}

		buf := make([]byte, size)
		n, err := io.ReadFull(r, buf)
		switch {
		case xerrors.Is(err, io.EOF):
			return marshalling.Block{}, io.EOF
		case xerrors.Is(err, io.ErrUnexpectedEOF):
			if d.conf.Mode == Decode {
				return marshalling.Block{}, xerrors.Errorf("block %d has %d of %d symbols: %w",
					index, n, size, ErrShortBlock)
			}
		case err != nil:
			return marshalling.Block{}, err
		}

		b := marshalling.Block{Index: index, Payload: string(buf[:n])}
		index++
		return b, nil
	}
}

// frames returns an iterator over the frames of in
func (d *Driver) frames(in io.Reader) func() (marshalling.Block, error) {
	r := bufio.NewReader(in)
	return func() (marshalling.Block, error) {
		b, err := marshalling.ReadFrame(r)
		if err != nil {
			return marshalling.Block{}, err
		}
		return *b, nil
	}
}

func (d *Driver) process(b marshalling.Block) result {
	res := result{index: b.Index}

	switch d.conf.Mode {
	case Encode:
		res.payload, res.err = d.codes.Encode(b.Payload)
	case Decode:
		corr, err := d.codes.Correct(b.Payload)
		if err != nil {
			res.err = err
			break
		}
		if d.conf.Strict {
			ok, err := d.codes.Verify(corr.Codeword)
			if err == nil && !ok {
				err = reedsolomon.ErrUncorrectable
			}
			if err != nil {
				res.err = err
				break
			}
		}
		if len(corr.Errors) > 0 {
			d.log.Debug().Uint32("block", b.Index).Int("errors", len(corr.Errors)).Msg("corrected block")
		}
		res.payload = d.codes.Message(corr.Codeword, d.conf.PreserveWidth)
		res.corrected = len(corr.Errors)
	}

	if res.err != nil {
		res.err = xerrors.Errorf("block %d: %w", b.Index, res.err)
	}
	return res
}

func (d *Driver) write(w io.Writer, r result) error {
	if d.conf.Framed && d.conf.Mode == Encode {
		return marshalling.WriteFrame(w, &marshalling.Block{Index: r.index, Payload: r.payload})
	}
	_, err := io.WriteString(w, r.payload)
	return err
}

// newlineFilter drops line breaks so that wrapped text can be read in blocks
type newlineFilter struct {
	r io.Reader
}

func (f newlineFilter) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := f.r.Read(p)
		j := 0
		for _, c := range p[:n] {
			if c != '\n' && c != '\r' {
				p[j] = c
				j++
			}
		}
		if j > 0 || err != nil {
			return j, err
		}
	}
}

package marshalling

import (
	"bufio"
	"encoding/binary"
	"io"

	"go.dedis.ch/protobuf"
	"golang.org/x/xerrors"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxFrameSize bounds the size of a marshalled block
const MaxFrameSize = 1 << 16

// ErrFrameTooLarge is returned for frames above MaxFrameSize
var ErrFrameTooLarge = xerrors.New("frame is too large")

// Block is one block of a stream, a message or a codeword, with its position
// in the stream
type Block struct {
	Index   uint32
	Payload string
}

func MarshalBlock(b *Block) ([]byte, error) {
	return protobuf.Encode(b)
}

func UnmarshalBlock(bs []byte) (*Block, error) {
	b := &Block{}
	err := protobuf.Decode(bs, b)
	if err != nil {
		return nil, xerrors.Errorf("cannot decode block: %w", err)
	}
	return b, nil
}

// WriteFrame writes the block prefixed by its varint encoded length
func WriteFrame(w io.Writer, b *Block) error {
	bs, err := MarshalBlock(b)
	if err != nil {
		return err
	}
	if len(bs) > MaxFrameSize {
		return xerrors.Errorf("block %d is %d bytes: %w", b.Index, len(bs), ErrFrameTooLarge)
	}

	_, err = w.Write(protowire.AppendBytes(nil, bs))
	return err
}

// ReadFrame reads a block written by WriteFrame. It returns io.EOF when r
// ends cleanly before a frame, and io.ErrUnexpectedEOF inside a frame.
func ReadFrame(r *bufio.Reader) (*Block, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if size > MaxFrameSize {
		return nil, xerrors.Errorf("frame of %d bytes: %w", size, ErrFrameTooLarge)
	}

	bs := make([]byte, size)
	_, err = io.ReadFull(r, bs)
	if err != nil {
		if xerrors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return UnmarshalBlock(bs)
}

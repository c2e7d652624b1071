// Package sink implements the PractRand-compatible binary stdout batteries
// (stdout32, stdout64, stdout32v, stdout64v) — spec.md §6's "binary dumps to
// stdout for external processing." Grounded on prng_bits32_to_file and
// prng_bits64_to_file in original_source/testu01_mt.cpp: an unbounded loop
// filling a fixed-size native-endian word buffer from the generator and
// writing it whole to the sink, until the downstream reader stops reading
// (in this port, until the context is cancelled or the write fails, most
// commonly because the reader closed its end of the pipe).
package sink

import (
	"context"
	"encoding/binary"
	"errors"
	"io"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

// ScalarBlockWords is the block size prng_bits32_to_file/prng_bits64_to_file
// use: 256 words per fwrite.
const ScalarBlockWords = 256

// VectorBlockWords is the block size the vectorized (Array32/Array64-backed)
// sinks use, per spec.md §6's "256- or 1024-word blocks."
const VectorBlockWords = 1024

// Bits32 streams gen's 32-bit output to w in ScalarBlockWords-word blocks,
// native-endian, until ctx is cancelled or a write fails. The stdout32
// battery.
func Bits32(ctx context.Context, w io.Writer, gen prng.Generator) error {
	buf := make([]uint32, ScalarBlockWords)
	raw := make([]byte, ScalarBlockWords*4)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for i := range buf {
			buf[i] = gen.Bits32()
		}
		encodeUint32s(raw, buf)
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
}

// Bits64 is the 64-bit analogue of Bits32. The stdout64 battery.
func Bits64(ctx context.Context, w io.Writer, gen prng.Generator) error {
	b64, ok := gen.(prng.Bits64Provider)
	if !ok {
		return prng.ErrUnsupportedOutput
	}
	buf := make([]uint64, ScalarBlockWords)
	raw := make([]byte, ScalarBlockWords*8)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for i := range buf {
			buf[i] = b64.Bits64()
		}
		encodeUint64s(raw, buf)
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
}

// Array32 streams gen's 32-bit output to w in VectorBlockWords-word blocks,
// drawn via the generator's Array32Provider when available (falling back to
// successive Bits32 calls otherwise, per FillArray32). The stdout32v
// battery.
func Array32(ctx context.Context, w io.Writer, gen prng.Generator) error {
	buf := make([]uint32, VectorBlockWords)
	raw := make([]byte, VectorBlockWords*4)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		prng.FillArray32(gen, buf)
		encodeUint32s(raw, buf)
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
}

// Array64 is the 64-bit analogue of Array32. The stdout64v battery.
func Array64(ctx context.Context, w io.Writer, gen prng.Generator) error {
	buf := make([]uint64, VectorBlockWords)
	raw := make([]byte, VectorBlockWords*8)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := prng.FillArray64(gen, buf); err != nil {
			return err
		}
		encodeUint64s(raw, buf)
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
}

// IsBrokenPipe reports whether err reflects a downstream reader that
// stopped reading (io.ErrClosedPipe) or a cancelled context — the normal,
// expected ways these unbounded sinks end.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, io.ErrClosedPipe) || errors.Is(err, context.Canceled)
}

func encodeUint32s(dst []byte, src []uint32) {
	for i, v := range src {
		binary.NativeEndian.PutUint32(dst[i*4:], v)
	}
}

func encodeUint64s(dst []byte, src []uint64) {
	for i, v := range src {
		binary.NativeEndian.PutUint64(dst[i*8:], v)
	}
}

package sink

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

func TestBits32WritesScalarBlocksUntilCancelled(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(1)
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := Bits32(ctx, &buf, gen)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, buf.Len()%(ScalarBlockWords*4))
	require.NotZero(t, buf.Len())
}

func TestBits64ErrorsWithoutBits64Provider(t *testing.T) {
	gen := &noBits64Gen{}
	var buf bytes.Buffer
	err := Bits64(context.Background(), &buf, gen)
	require.ErrorIs(t, err, prng.ErrUnsupportedOutput)
}

func TestArray32FallsBackAndWritesVectorBlocks(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(2)
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := Array32(ctx, &buf, gen)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, buf.Len()%(VectorBlockWords*4))
	require.NotZero(t, buf.Len())
}

func TestBits32ProducesNativeEndianWords(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(3)
	expected := gen.Bits32()

	gen2 := prng.NewSplitMix64Seeded(3)
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_ = Bits32(ctx, &buf, gen2)

	require.GreaterOrEqual(t, buf.Len(), 4)
	got := binary.NativeEndian.Uint32(buf.Bytes()[:4])
	require.Equal(t, expected, got)
}

type noBits64Gen struct{}

func (noBits64Gen) Name() string   { return "no-bits64" }
func (noBits64Gen) U01() float64   { return 0.5 }
func (noBits64Gen) Bits32() uint32 { return 0 }

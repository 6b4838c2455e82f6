package rollup_test

import (
	"context"
	"testing"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/airchains-network/rollup-codec/internal/rolluptest"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	var (
		want   []*rollup.RollupProofData
		inputs []rollup.Input
	)
	for id := uint32(1); id <= 20; id++ {
		p, err := rolluptest.Rollup(id, 8, id%2 == 0, allKinds[:id%6+1]...)
		require.NoError(t, err)
		encoded, err := p.Encode()
		require.NoError(t, err)

		in := rollup.Input{ProofData: encoded}
		if id%2 == 0 {
			in.ViewingKeyData = p.ViewingKeyData()
		}
		want = append(want, p)
		inputs = append(inputs, in)
	}

	got, err := rollup.ParseAll(context.Background(), rollup.FormatSparse, inputs, 4)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "rollup %d", i)
	}

	// workers below one still make progress
	got, err = rollup.ParseAll(context.Background(), rollup.FormatSparse, inputs[:2], 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestParseAllFailure(t *testing.T) {
	p, err := rolluptest.Rollup(1, 2, false, innerproof.ProofIDSend)
	require.NoError(t, err)

	inputs := []rollup.Input{
		{ProofData: p.Bytes()},
		{ProofData: p.Bytes()[:100]},
		{ProofData: p.Bytes()},
	}
	got, err := rollup.ParseAll(context.Background(), rollup.FormatDense, inputs, 2)
	assert.ErrorIs(t, err, rollup.ErrMalformed)
	assert.Nil(t, got)
}

func TestParseAllCancelled(t *testing.T) {
	p, err := rolluptest.Rollup(1, 2, false, innerproof.ProofIDSend)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rollup.ParseAll(ctx, rollup.FormatDense, []rollup.Input{{ProofData: p.Bytes()}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

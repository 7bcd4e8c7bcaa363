package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENDefault(t *testing.T) {
	state, err := ParseFEN(InitialPositionFEN)
	require.NoError(t, err)

	want := DefaultBoardState()
	if diff := cmp.Diff(want, state, cmp.AllowUnexported(BoardState{}, BitBoards{})); diff != "" {
		t.Errorf("ParseFEN(initial) mismatch (-want +got):\n%s", diff)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		state, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, state.ToFEN(), fen)
	}
}

func TestParseFENRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFEN))
}

func TestParseFENRejectsBadColor(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadColor))
}

func TestParseFENRejectsBadHalfmoveClock(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 100 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadHalfmoveClock))
}

func TestParseFENRejectsBadFullmoveCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFullmoveCount))
}

func TestParseFENRejectsTwoWhiteKings(t *testing.T) {
	// Two white kings on the back rank.
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKKNR w KQkq - 0 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadKingCount) || errors.Is(err, ErrBadPosition))
}

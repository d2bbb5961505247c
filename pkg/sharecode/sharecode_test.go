package sharecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiverArcade/domain"
)

const testReplayKey = "0123456789abcdef" // 16 bytes, AES-128

func TestReplayRoundtrip(t *testing.T) {
	replay := Replay{ProductID: "protein-bar", LevelID: "level-2", Seed: 42}

	code, err := EncodeReplay(replay, testReplayKey)
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	decoded, err := DecodeReplay(code, testReplayKey)
	require.NoError(t, err)
	assert.Equal(t, replay, decoded)
}

func TestReplayCodesAreStablePerInput(t *testing.T) {
	replay := Replay{ProductID: "sofa", LevelID: "level-3-quiver", Seed: 4294967295}

	first, err := EncodeReplay(replay, testReplayKey)
	require.NoError(t, err)
	second, err := EncodeReplay(replay, testReplayKey)
	require.NoError(t, err)

	// Both must decode to the same replay regardless of ciphertext equality.
	a, err := DecodeReplay(first, testReplayKey)
	require.NoError(t, err)
	b, err := DecodeReplay(second, testReplayKey)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeReplayRejectsGarbage(t *testing.T) {
	for _, code := range []string{"", "not-a-code", "aGVsbG8gd29ybGQ="} {
		_, err := DecodeReplay(code, testReplayKey)
		assert.ErrorIs(t, err, ErrInvalidReplayCode, code)
	}
}

func TestDecodeReplayRejectsWrongKey(t *testing.T) {
	code, err := EncodeReplay(Replay{ProductID: "medicine", LevelID: "level-1", Seed: 7}, testReplayKey)
	require.NoError(t, err)

	_, err = DecodeReplay(code, "fedcba9876543210")
	assert.ErrorIs(t, err, ErrInvalidReplayCode)
}

func TestSignScoreRoundtrip(t *testing.T) {
	score := domain.LevelScore{
		LevelID:   "level-1",
		Grade:     domain.GradeA,
		Score:     812.5,
		TotalCost: 187.5,
	}

	token, err := SignScore("protein-bar", score, "signing-secret")
	require.NoError(t, err)

	claims, err := ParseScore(token, "signing-secret")
	require.NoError(t, err)
	assert.Equal(t, "protein-bar", claims.ProductID)
	assert.Equal(t, "level-1", claims.LevelID)
	assert.Equal(t, "A", claims.Grade)
	assert.Equal(t, 812.5, claims.Score)
	assert.Equal(t, 187.5, claims.TotalCost)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseScoreRejectsTampering(t *testing.T) {
	score := domain.LevelScore{LevelID: "level-1", Grade: domain.GradeC, Score: 100}
	token, err := SignScore("sofa", score, "signing-secret")
	require.NoError(t, err)

	_, err = ParseScore(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidClaim)

	_, err = ParseScore(token+"x", "signing-secret")
	assert.ErrorIs(t, err, ErrInvalidClaim)

	_, err = ParseScore("not.a.token", "signing-secret")
	assert.ErrorIs(t, err, ErrInvalidClaim)
}

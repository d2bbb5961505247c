// Package sharecode produces the opaque artifacts the marketing flow hands
// out: deterministic replay codes and signed score claims.
package sharecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pobyzaarif/goshortcute"
)

// Replay identifies a reproducible run: same product, level and seed always
// rebuild the identical scenario.
type Replay struct {
	ProductID string
	LevelID   string
	Seed      uint32
}

var ErrInvalidReplayCode = errors.New("invalid replay code")

// EncodeReplay wraps the replay parameters into an AES-CBC encrypted,
// base64-encoded code safe to paste into a URL.
func EncodeReplay(replay Replay, key string) (string, error) {
	plain := fmt.Sprintf("%v|%v|%v", replay.ProductID, replay.LevelID, replay.Seed)
	encrypted, err := goshortcute.AESCBCEncrypt([]byte(plain), []byte(key))
	if err != nil {
		return "", err
	}
	return goshortcute.StringtoBase64Encode(encrypted), nil
}

// DecodeReplay reverses EncodeReplay. Any malformed or tampered code yields
// ErrInvalidReplayCode.
func DecodeReplay(code, key string) (Replay, error) {
	decoded := goshortcute.StringtoBase64Decode(code)
	plain, err := goshortcute.AESCBCDecrypt([]byte(decoded), []byte(key))
	if err != nil {
		return Replay{}, ErrInvalidReplayCode
	}

	parts := strings.Split(plain, "|")
	if len(parts) != 3 {
		return Replay{}, ErrInvalidReplayCode
	}

	seed, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return Replay{}, ErrInvalidReplayCode
	}

	return Replay{
		ProductID: parts[0],
		LevelID:   parts[1],
		Seed:      uint32(seed),
	}, nil
}

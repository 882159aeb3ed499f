package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	req := require.New(t)

	s := Session{Id: "abc"}
	req.False(s.IsConnected())
	req.False(s.IsCorrectChain(137))

	s = Session{Id: "abc", Address: "0x5aeda56215b167893e80b4fe645ba6d5bab767de", ChainId: 137}
	req.True(s.IsConnected())
	req.True(s.IsCorrectChain(137))
	req.False(s.IsCorrectChain(1))
}

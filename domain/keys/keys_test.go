package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	req := require.New(t)
	req.Equal("nonce:0xabc", RedisKey(PfxNonce, "0xabc"))
	req.Equal("balance:137:0xabc", RedisKey(PfxBalance, "137", "0xabc"))
	req.Equal("", RedisKey())
}

func TestMD5(t *testing.T) {
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", MD5(""))
}

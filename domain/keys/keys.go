package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxNonce prefixes sign-in nonces
	PfxNonce = "nonce"
	// PfxBalance prefixes formatted wallet balances
	PfxBalance = "balance"
	// PfxHttpCache prefixes cached http responses
	PfxHttpCache = "httpCache"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// RedisKey joins key components with ':'
func RedisKey(components ...string) string {
	return strings.Join(components, ":")
}

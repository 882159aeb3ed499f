package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	ts.NoError(ts.im.Set(mockCtx, "balance", []byte("1.5000 MATIC"), 10*time.Second))

	v, ttl, err := ts.im.Get(mockCtx, "balance")
	ts.NoError(err)
	ts.Equal([]byte("1.5000 MATIC"), v)
	ts.True(ttl > 0 && ttl <= 10*time.Second)
}

func (ts *testsuite) TestExpire() {
	ts.NoError(ts.im.Set(mockCtx, "nonce", []byte("n"), time.Second))
	time.Sleep(1100 * time.Millisecond)

	_, _, err := ts.im.Get(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))

	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)

	// deleting a missing key is fine
	ts.NoError(ts.im.Del(mockCtx, "missing"))
}

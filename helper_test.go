package redisutils

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

var errDialRefused = fmt.Errorf("dial tcp 127.0.0.1:6379: connect: connection refused")

// newTestFacade runs an in-process miniredis and talks to it through the real
// go-redis backed RedisOp.
func newTestFacade(t *testing.T, opts Options) (*Facade, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	op := NewRedisOp(RedisProfile{Host: s.Host(), Port: uint(port)})
	t.Cleanup(func() {
		_ = op.Close()
	})

	return NewFacade(op, opts), s
}

func newMockFacade(opts Options) (*Facade, *MockRedisOp) {
	mock := NewMockRedisOp()
	return NewFacade(mock, opts), mock
}

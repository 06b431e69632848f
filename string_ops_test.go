package redisutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOps(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	strs := f.Strings

	t.Run("SetGet", func(t *testing.T) {
		assert.True(t, strs.Set("s_plain", "hello"))
		v, ok := strs.Get("s_plain")
		assert.True(t, ok)
		assert.Equal(t, "hello", v)

		assert.True(t, strs.Set("s_empty", ""))
		v, ok = strs.Get("s_empty")
		assert.True(t, ok)
		assert.Equal(t, "", v)

		_, ok = strs.Get("s_missing")
		assert.False(t, ok)
	})

	t.Run("SetWithExpiry", func(t *testing.T) {
		assert.True(t, strs.SetWithExpiry("s_ex", "v", "EX", 10))
		ttl := f.Keys.TTL("s_ex")
		assert.True(t, ttl > 0 && ttl <= 10)

		assert.True(t, strs.SetWithExpiry("s_px", "v", ExpiryModeMillis, 1500))
		pttl := f.Keys.PTTL("s_px")
		assert.True(t, pttl > 0 && pttl <= 1500)

		s.FastForward(11 * time.Second)
		assert.False(t, f.Keys.Exists("s_ex"))
		assert.False(t, f.Keys.Exists("s_px"))
	})

	t.Run("SetWithExpiryUnknownModeWritesNothing", func(t *testing.T) {
		assert.True(t, strs.SetWithExpiry("s_unknown", "v", "xx", 10))
		assert.False(t, f.Keys.Exists("s_unknown"))
	})

	t.Run("SetIf", func(t *testing.T) {
		assert.False(t, strs.SetIf("s_nx", "v1", KeyMustBePresent))
		assert.True(t, strs.SetIf("s_nx", "v1", KeyMustBeAbsent))
		assert.False(t, strs.SetIf("s_nx", "v2", KeyMustBeAbsent))
		assert.True(t, strs.SetIf("s_nx", "v3", KeyMustBePresent))

		v, _ := strs.Get("s_nx")
		assert.Equal(t, "v3", v)
	})

	t.Run("SetWithExpiryIf", func(t *testing.T) {
		assert.True(t, strs.SetWithExpiryIf("s_cond", "value", ExpiryModeSeconds, 20, KeyMustBeAbsent))
		v, _ := strs.Get("s_cond")
		assert.Equal(t, "value", v)
		ttl := f.Keys.TTL("s_cond")
		assert.True(t, ttl > 0 && ttl <= 20)

		// the second write loses and leaves the first value and expiry alone
		assert.False(t, strs.SetWithExpiryIf("s_cond", "other", ExpiryModeSeconds, 500, KeyMustBeAbsent))
		v, _ = strs.Get("s_cond")
		assert.Equal(t, "value", v)
		assert.True(t, f.Keys.TTL("s_cond") <= 20)

		assert.True(t, strs.SetWithExpiryIf("s_cond_plain", "v", "", 0, KeyMustBeAbsent))
		assert.Equal(t, int64(-1), f.Keys.TTL("s_cond_plain"))
	})

	t.Run("MSetMGet", func(t *testing.T) {
		assert.True(t, strs.MSet(map[string]string{"m:1": "a", "m:2": "b"}))
		got := strs.MGet("m:2", "m:missing", "m:1")
		assert.Equal(t, []NullString{
			{String: "b", Valid: true},
			{},
			{String: "a", Valid: true},
		}, got)

		assert.False(t, strs.MSetNX(map[string]string{"m:1": "x", "m:3": "c"}))
		assert.False(t, f.Keys.Exists("m:3"))
		assert.True(t, strs.MSetNX(map[string]string{"m:3": "c", "m:4": "d"}))
	})

	t.Run("Ranges", func(t *testing.T) {
		strs.Set("s_range", "Hello World")
		assert.Equal(t, "World", strs.GetRange("s_range", 6, -1))
		assert.Equal(t, int64(11), strs.SetRange("s_range", 6, "Redis"))
		v, _ := strs.Get("s_range")
		assert.Equal(t, "Hello Redis", v)
		assert.Equal(t, int64(11), strs.StrLen("s_range"))
		assert.Equal(t, int64(0), strs.StrLen("s_nothing"))
		assert.Equal(t, int64(13), strs.Append("s_range", "!!"))
	})

	t.Run("Counters", func(t *testing.T) {
		n, err := strs.Incr("s_counter")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = strs.IncrBy("s_counter", 9)
		require.NoError(t, err)
		assert.Equal(t, int64(10), n)

		n, err = strs.Decr("s_counter")
		require.NoError(t, err)
		assert.Equal(t, int64(9), n)

		n, err = strs.DecrBy("s_counter", 4)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		fl, err := strs.IncrByFloat("s_float", 1.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, fl, 1e-9)
	})

	t.Run("CountersOnText", func(t *testing.T) {
		strs.Set("s_text", "abc")

		_, err := strs.Incr("s_text")
		assert.ErrorIs(t, err, ErrNotANumber)

		_, err = strs.IncrBy("s_text", 3)
		assert.ErrorIs(t, err, ErrNotANumber)

		_, err = strs.IncrByFloat("s_text", 0.5)
		assert.ErrorIs(t, err, ErrNotANumber)

		v, _ := strs.Get("s_text")
		assert.Equal(t, "abc", v)
	})
}

func TestStringOpsCommands(t *testing.T) {
	t.Run("SetWithExpiryIfIsTwoCommands", func(t *testing.T) {
		f, mock := newMockFacade(Options{})
		mock.SetResponse("SET", "k", "OK", nil)
		mock.SetResponse("PEXPIRE", "k", int64(1), nil)

		assert.True(t, f.Strings.SetWithExpiryIf("k", "v", "PX", 250, KeyMustBePresent))
		history := mock.GetCallHistory()
		require.Len(t, history, 2)
		assert.Equal(t, []interface{}{"k", "v", "XX"}, history[0].Args)
		assert.Equal(t, "PEXPIRE", history[1].Command)
		assert.Equal(t, []interface{}{"k", int64(250)}, history[1].Args)
	})

	t.Run("SetWithExpirySendsOneSet", func(t *testing.T) {
		f, mock := newMockFacade(Options{})
		mock.SetResponse("SET", "k", "OK", nil)

		assert.True(t, f.Strings.SetWithExpiry("k", "v", "ex", 60))
		last := mock.GetLastCall()
		require.NotNil(t, last)
		assert.Equal(t, []interface{}{"k", "v", "EX", int64(60)}, last.Args)
		assert.Equal(t, 1, mock.TotalCallCount())
	})

	t.Run("CounterFailureIsReturned", func(t *testing.T) {
		f, mock := newMockFacade(Options{})
		mock.SetResponse("INCRBY", "k", nil, fmt.Errorf("ERR value is not an integer or out of range"))
		_, err := f.Strings.IncrBy("k", 1)
		assert.ErrorIs(t, err, ErrNotANumber)
	})
}


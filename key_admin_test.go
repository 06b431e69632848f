package redisutils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAdmin(t *testing.T) {
	f, s := newTestFacade(t, Options{})
	keys := f.Keys

	t.Run("ExpireAndTTL", func(t *testing.T) {
		f.Strings.Set("ka_ttl", "v")
		assert.Equal(t, int64(-1), keys.TTL("ka_ttl"))
		assert.True(t, keys.Expire("ka_ttl", 30))
		ttl := keys.TTL("ka_ttl")
		assert.True(t, ttl > 0 && ttl <= 30)
		assert.True(t, keys.PTTL("ka_ttl") > 0)

		s.FastForward(31 * time.Second)
		assert.False(t, keys.Exists("ka_ttl"))
	})

	t.Run("TTLOfMissingKey", func(t *testing.T) {
		assert.Equal(t, int64(-2), keys.TTL("ka_never"))
		assert.Equal(t, int64(-2), keys.TTL(""))
	})

	t.Run("TryExpireReportsCause", func(t *testing.T) {
		r := keys.TryExpire("ka_missing", 10)
		assert.False(t, r.Applied)
		assert.True(t, errors.Is(r.Err, RedisNotFound))

		r = keys.TryExpire("ka_missing", -5)
		assert.False(t, r.Applied)
		assert.ErrorIs(t, r.Err, ErrInvalidArgument)
	})

	t.Run("Persist", func(t *testing.T) {
		f.Strings.SetWithExpiry("ka_persist", "v", ExpiryModeSeconds, 100)
		assert.True(t, keys.Persist("ka_persist"))
		assert.Equal(t, int64(-1), keys.TTL("ka_persist"))
	})

	t.Run("ExistsAndType", func(t *testing.T) {
		f.Strings.Set("ka_str", "v")
		f.Lists.RPush("ka_list", "a")
		f.Hashes.HSet("ka_hash", "f", "v")
		f.Sets.SAdd("ka_set", "m")
		f.ZSets.ZAdd("ka_zset", map[string]float64{"m": 1})

		assert.True(t, keys.Exists("ka_str"))
		assert.False(t, keys.Exists("ka_nothing"))
		assert.Equal(t, DataTypeString, keys.Type("ka_str"))
		assert.Equal(t, DataTypeList, keys.Type("ka_list"))
		assert.Equal(t, DataTypeHash, keys.Type("ka_hash"))
		assert.Equal(t, DataTypeSet, keys.Type("ka_set"))
		assert.Equal(t, DataTypeZSet, keys.Type("ka_zset"))
		assert.Equal(t, DataTypeNone, keys.Type("ka_nothing"))
	})

	t.Run("AllKeys", func(t *testing.T) {
		f.Strings.Set("ak:1", "a")
		f.Strings.Set("ak:2", "b")
		assert.ElementsMatch(t, []string{"ak:1", "ak:2"}, keys.AllKeys("ak:*"))
		assert.Empty(t, keys.AllKeys("nomatch:*"))
	})

	t.Run("Move", func(t *testing.T) {
		f.Strings.Set("ka_move", "v")
		assert.True(t, keys.Move("ka_move", 1))
		assert.False(t, keys.Exists("ka_move"))
		moved, err := s.DB(1).Get("ka_move")
		require.NoError(t, err)
		assert.Equal(t, "v", moved)
		assert.False(t, keys.Move("ka_move", 1))
	})

	t.Run("Rename", func(t *testing.T) {
		f.Strings.Set("ka_old", "v")
		f.Strings.Set("ka_taken", "x")
		assert.False(t, keys.RenameNX("ka_old", "ka_taken"))
		assert.True(t, keys.Rename("ka_old", "ka_new"))
		v, _ := f.Strings.Get("ka_new")
		assert.Equal(t, "v", v)
		assert.False(t, keys.Rename("ka_old", "ka_other"))
	})

	t.Run("Delete", func(t *testing.T) {
		f.Strings.MSet(map[string]string{"del:1": "a", "del:2": "b", "del:3": "c"})
		assert.Equal(t, int64(1), keys.Delete("del:1"))
		assert.Equal(t, int64(0), keys.Delete("del:1"))
		assert.Equal(t, int64(2), keys.DeleteMany("del:2", "", "del:3", "del:missing"))
		assert.False(t, keys.Exists("del:2"))
	})
}

func TestKeyAdminExistenceCollapse(t *testing.T) {
	t.Run("Fixed", func(t *testing.T) {
		f, mock := newMockFacade(Options{})
		mock.SetResponse("EXISTS", "k", int64(0), nil)
		mock.SetResponse("MOVE", "k", int64(0), nil)
		assert.False(t, f.Keys.Exists("k"))
		assert.False(t, f.Keys.Move("k", 2))
	})

	t.Run("Legacy", func(t *testing.T) {
		f, mock := newMockFacade(Options{LegacyExistence: true})
		mock.SetResponse("EXISTS", "k", int64(0), nil)
		mock.SetResponse("MOVE", "k", int64(0), nil)
		assert.True(t, f.Keys.Exists("k"))
		assert.True(t, f.Keys.Move("k", 2))

		// no reply at all is still false
		assert.False(t, f.Keys.Exists("other"))
	})
}

func TestKeyAdminDeleteManyIsOneCommandPerKey(t *testing.T) {
	f, mock := newMockFacade(Options{})
	mock.SetResponse("DEL", "*", int64(1), nil)
	assert.Equal(t, int64(3), f.Keys.DeleteMany("a", "b", "c"))
	assert.Equal(t, 3, mock.GetCallCount("DEL"))
	for _, call := range mock.GetCallsByCommand("DEL") {
		assert.Len(t, call.Args, 1)
	}
}

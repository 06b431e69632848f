package redisutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyArgumentsNeverReachTheStore(t *testing.T) {
	f, mock := newMockFacade(Options{})

	cases := []struct {
		name string
		call func() interface{}
		want interface{}
	}{
		{"Expire", func() interface{} { return f.Keys.Expire("", 10) }, false},
		{"ExpireZeroTimeout", func() interface{} { return f.Keys.Expire("k", 0) }, false},
		{"TTL", func() interface{} { return f.Keys.TTL("") }, int64(-2)},
		{"PTTL", func() interface{} { return f.Keys.PTTL("") }, int64(-2)},
		{"Exists", func() interface{} { return f.Keys.Exists("") }, false},
		{"Type", func() interface{} { return f.Keys.Type("") }, DataType("")},
		{"Move", func() interface{} { return f.Keys.Move("", 1) }, false},
		{"MoveNegativeDB", func() interface{} { return f.Keys.Move("k", -1) }, false},
		{"Persist", func() interface{} { return f.Keys.Persist("") }, false},
		{"Rename", func() interface{} { return f.Keys.Rename("", "b") }, false},
		{"RenameNX", func() interface{} { return f.Keys.RenameNX("a", "") }, false},
		{"Delete", func() interface{} { return f.Keys.Delete("") }, int64(0)},
		{"DeleteMany", func() interface{} { return f.Keys.DeleteMany("", "") }, int64(0)},

		{"Set", func() interface{} { return f.Strings.Set("", "v") }, false},
		{"SetWithExpiry", func() interface{} { return f.Strings.SetWithExpiry("", "v", ExpiryModeSeconds, 10) }, false},
		{"SetWithExpiryNoMode", func() interface{} { return f.Strings.SetWithExpiry("k", "v", "", 10) }, false},
		{"SetWithExpiryNoTTL", func() interface{} { return f.Strings.SetWithExpiry("k", "v", ExpiryModeSeconds, 0) }, false},
		{"SetIf", func() interface{} { return f.Strings.SetIf("", "v", KeyMustBeAbsent) }, false},
		{"SetWithExpiryIf", func() interface{} {
			return f.Strings.SetWithExpiryIf("", "v", ExpiryModeSeconds, 10, KeyMustBeAbsent)
		}, false},
		{"MSet", func() interface{} { return f.Strings.MSet(nil) }, false},
		{"MSetEmptyKey", func() interface{} { return f.Strings.MSet(map[string]string{"": "v"}) }, false},
		{"MSetNX", func() interface{} { return f.Strings.MSetNX(map[string]string{}) }, false},
		{"Get", func() interface{} { _, ok := f.Strings.Get(""); return ok }, false},
		{"MGet", func() interface{} { return f.Strings.MGet() }, []NullString(nil)},
		{"MGetEmptyKey", func() interface{} { return f.Strings.MGet("a", "") }, []NullString(nil)},
		{"GetRange", func() interface{} { return f.Strings.GetRange("", 0, 1) }, ""},
		{"SetRange", func() interface{} { return f.Strings.SetRange("", 0, "v") }, int64(-1)},
		{"StrLen", func() interface{} { return f.Strings.StrLen("") }, int64(0)},
		{"Append", func() interface{} { return f.Strings.Append("", "v") }, int64(0)},
		{"Incr", func() interface{} { v, err := f.Strings.Incr(""); return fmt.Sprint(v, err) }, "0 <nil>"},
		{"DecrBy", func() interface{} { v, err := f.Strings.DecrBy("", 2); return fmt.Sprint(v, err) }, "0 <nil>"},

		{"LPush", func() interface{} { return f.Lists.LPush("", "v") }, int64(-1)},
		{"LPushMany", func() interface{} { return f.Lists.LPushMany("", "a", "b") }, int64(-1)},
		{"LPushAll", func() interface{} { return f.Lists.LPushAll("", []string{"a"}) }, int64(-1)},
		{"LPushX", func() interface{} { return f.Lists.LPushX("", "v") }, int64(-1)},
		{"RPush", func() interface{} { return f.Lists.RPush("", "v") }, int64(-1)},
		{"RPushMany", func() interface{} { return f.Lists.RPushMany("", "a") }, int64(-1)},
		{"LPop", func() interface{} { _, ok := f.Lists.LPop(""); return ok }, false},
		{"RPop", func() interface{} { _, ok := f.Lists.RPop(""); return ok }, false},
		{"LRange", func() interface{} { return f.Lists.LRange("", 0, -1) }, []string(nil)},
		{"RPopLPush", func() interface{} { _, ok := f.Lists.RPopLPush("src", ""); return ok }, false},
		{"LLen", func() interface{} { return f.Lists.LLen("") }, int64(0)},
		{"LRem", func() interface{} { return f.Lists.LRem("", 0, "v") }, int64(-1)},
		{"LTrim", func() interface{} { return f.Lists.LTrim("", 0, 1) }, false},
		{"LIndex", func() interface{} { _, ok := f.Lists.LIndex("", 0); return ok }, false},
		{"LInsert", func() interface{} { return f.Lists.LInsert("", "before", "p", "v") }, int64(-1)},
		{"LInsertBadKeyword", func() interface{} { return f.Lists.LInsert("k", "beside", "p", "v") }, int64(-1)},
		{"LSet", func() interface{} { return f.Lists.LSet("", 0, "v") }, false},

		{"HSet", func() interface{} { return f.Hashes.HSet("k", "", "v") }, false},
		{"HMSet", func() interface{} { return f.Hashes.HMSet("", map[string]string{"f": "v"}) }, false},
		{"HSetNX", func() interface{} { return f.Hashes.HSetNX("", "f", "v") }, false},
		{"HGet", func() interface{} { _, ok := f.Hashes.HGet("k", ""); return ok }, false},
		{"HMGet", func() interface{} { return f.Hashes.HMGet("", "f") }, []NullString(nil)},
		{"HGetAll", func() interface{} { return f.Hashes.HGetAll("") }, map[string]string(nil)},
		{"HExists", func() interface{} { return f.Hashes.HExists("", "f") }, false},
		{"HLen", func() interface{} { return f.Hashes.HLen("") }, int64(-1)},
		{"HStrLen", func() interface{} { return f.Hashes.HStrLen("k", "") }, int64(-1)},
		{"HIncrBy", func() interface{} { v, err := f.Hashes.HIncrBy("", "f", 1); return fmt.Sprint(v, err) }, "-1 <nil>"},
		{"HIncrByFloat", func() interface{} { v, err := f.Hashes.HIncrByFloat("k", "", 1); return fmt.Sprint(v, err) }, "-1 <nil>"},
		{"HKeys", func() interface{} { return f.Hashes.HKeys("") }, []string(nil)},
		{"HValues", func() interface{} { return f.Hashes.HValues("") }, []string(nil)},
		{"HDel", func() interface{} { return f.Hashes.HDel("k") }, int64(-1)},

		{"SAdd", func() interface{} { return f.Sets.SAdd("", "m") }, int64(-1)},
		{"SAddNoMembers", func() interface{} { return f.Sets.SAdd("k") }, int64(-1)},
		{"SMembers", func() interface{} { return f.Sets.SMembers("") }, []string(nil)},
		{"SIsMember", func() interface{} { return f.Sets.SIsMember("k", "") }, false},
		{"SCard", func() interface{} { return f.Sets.SCard("") }, int64(-1)},
		{"SRem", func() interface{} { return f.Sets.SRem("", "m") }, int64(-1)},
		{"SRandMember", func() interface{} { _, ok := f.Sets.SRandMember(""); return ok }, false},
		{"SRandMembers", func() interface{} { return f.Sets.SRandMembers("k", 0) }, []string(nil)},
		{"SPop", func() interface{} { return f.Sets.SPop("", 1) }, []string(nil)},
		{"SMove", func() interface{} { return f.Sets.SMove("", "d", "m") }, false},
		{"SDiff", func() interface{} { return f.Sets.SDiff("a", "") }, []string(nil)},
		{"SDiffMany", func() interface{} { return f.Sets.SDiffMany() }, []string(nil)},
		{"SInter", func() interface{} { return f.Sets.SInter("", "b") }, []string(nil)},
		{"SInterMany", func() interface{} { return f.Sets.SInterMany("a", "") }, []string(nil)},
		{"SUnion", func() interface{} { return f.Sets.SUnion("", "") }, []string(nil)},
		{"SUnionMany", func() interface{} { return f.Sets.SUnionMany() }, []string(nil)},

		{"ZAdd", func() interface{} { return f.ZSets.ZAdd("", map[string]float64{"m": 1}) }, int64(0)},
		{"ZAddEmptyMember", func() interface{} { return f.ZSets.ZAdd("k", map[string]float64{"": 1}) }, int64(0)},
		{"ZRange", func() interface{} { return f.ZSets.ZRange("", 0, -1) }, []string(nil)},
		{"ZRangeWithScores", func() interface{} { return f.ZSets.ZRangeWithScores("", 0, -1) }, []ScoreTuple(nil)},
		{"ZRevRange", func() interface{} { return f.ZSets.ZRevRange("", 0, -1) }, []string(nil)},
		{"ZRangeByScore", func() interface{} { return f.ZSets.ZRangeByScore("", 0, 1, nil) }, []string(nil)},
		{"ZRem", func() interface{} { return f.ZSets.ZRem("", "m") }, int64(0)},
		{"ZCard", func() interface{} { return f.ZSets.ZCard("") }, int64(0)},
		{"ZCount", func() interface{} { return f.ZSets.ZCount("", 0, 1) }, int64(0)},
		{"ZRank", func() interface{} { return f.ZSets.ZRank("", "m") }, int64(0)},
		{"ZRevRank", func() interface{} { return f.ZSets.ZRevRank("k", "") }, int64(0)},
		{"ZScore", func() interface{} { _, ok := f.ZSets.ZScore("", "m"); return ok }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.call())
			assert.Equal(t, 0, mock.TotalCallCount(), "no command may be sent")
		})
	}
}

func TestStoreFailuresBecomeSentinels(t *testing.T) {
	f, mock := newMockFacade(Options{})
	mock.SetDefaultError(errDialRefused)

	assert.False(t, f.Keys.Expire("k", 10))
	assert.Equal(t, int64(-2), f.Keys.TTL("k"))
	assert.False(t, f.Keys.Exists("k"))
	assert.Equal(t, DataType(""), f.Keys.Type("k"))
	assert.Nil(t, f.Keys.AllKeys("*"))
	assert.False(t, f.Strings.Set("k", "v"))
	_, ok := f.Strings.Get("k")
	assert.False(t, ok)
	assert.Equal(t, int64(0), f.Strings.StrLen("k"))
	assert.Equal(t, int64(-1), f.Lists.LPush("k", "v"))
	mock.ClearCallHistory()
	assert.Equal(t, int64(-1), f.Lists.LPushMany("k", "a", "b"))
	assert.Equal(t, 1, mock.GetCallCount("LPUSH"), "LPushMany stops at the first failure")
	assert.Nil(t, f.Hashes.HGetAll("k"))
	assert.Equal(t, int64(-1), f.Hashes.HLen("k"))
	assert.Equal(t, int64(-1), f.Sets.SCard("k"))
	assert.Equal(t, int64(0), f.ZSets.ZCard("k"))

	// counters are the exception: the failure reaches the caller
	_, err := f.Strings.Incr("k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotANumber)
}

func TestReplyCollapse(t *testing.T) {
	fixed := Options{}
	legacy := Options{LegacyExistence: true}

	assert.True(t, fixed.Bool(ReplyTrue))
	assert.False(t, fixed.Bool(ReplyFalse))
	assert.False(t, fixed.Bool(ReplyAbsent))

	assert.True(t, legacy.Bool(ReplyTrue))
	assert.True(t, legacy.Bool(ReplyFalse))
	assert.False(t, legacy.Bool(ReplyAbsent))

	assert.Equal(t, "absent", ReplyAbsent.String())
	assert.Equal(t, "false", ReplyFalse.String())
	assert.Equal(t, "true", ReplyTrue.String())
}

func TestFacadeSharesOneOperator(t *testing.T) {
	f, mock := newMockFacade(Options{})
	assert.Same(t, mock, f.Operator())
	assert.Equal(t, "mock", f.Operator().Profile().Host)
	assert.NoError(t, f.Close())
}

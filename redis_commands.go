package redisutils

import (
	"math"
	"sort"
	"strconv"
)

// redisCommands translates each RedisOperator method into one command line.
// RedisOp and MockRedisOp share it so both see identical arguments.
type redisCommands struct {
	do func(cmd string, args ...interface{}) *RedisResponse
}

func keyArgs(key []string) []interface{} {
	args := make([]interface{}, 0, len(key))
	for _, k := range key {
		args = append(args, k)
	}

	return args
}

func pairArgs(head []interface{}, pairs map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	args := head
	for _, k := range keys {
		args = append(args, k, pairs[k])
	}

	return args
}

// formatScore renders a score bound the way ZRANGEBYSCORE and ZCOUNT expect it.
func formatScore(score float64) string {
	switch {
	case math.IsInf(score, 1):
		return "+inf"
	case math.IsInf(score, -1):
		return "-inf"
	}

	return strconv.FormatFloat(score, 'f', -1, 64)
}

func (c redisCommands) Ping() *RedisResponse {
	return c.do("PING")
}

func (c redisCommands) FlushDB() *RedisResponse {
	return c.do("FLUSHDB")
}

// Key 系列指令
func (c redisCommands) Expire(key string, seconds int64) *RedisResponse {
	return c.do("EXPIRE", key, seconds)
}

func (c redisCommands) PExpire(key string, millis int64) *RedisResponse {
	return c.do("PEXPIRE", key, millis)
}

func (c redisCommands) TTL(key string) *RedisResponse {
	return c.do("TTL", key)
}

func (c redisCommands) PTTL(key string) *RedisResponse {
	return c.do("PTTL", key)
}

func (c redisCommands) Exists(key ...string) *RedisResponse {
	return c.do("EXISTS", keyArgs(key)...)
}

func (c redisCommands) Type(key string) *RedisResponse {
	return c.do("TYPE", key)
}

func (c redisCommands) Keys(pattern string) *RedisResponse {
	return c.do("KEYS", pattern)
}

func (c redisCommands) Move(key string, db int) *RedisResponse {
	return c.do("MOVE", key, db)
}

func (c redisCommands) Delete(key ...string) *RedisResponse {
	return c.do("DEL", keyArgs(key)...)
}

func (c redisCommands) Persist(key string) *RedisResponse {
	return c.do("PERSIST", key)
}

func (c redisCommands) Rename(oldKey, newKey string) *RedisResponse {
	return c.do("RENAME", oldKey, newKey)
}

func (c redisCommands) RenameNX(oldKey, newKey string) *RedisResponse {
	return c.do("RENAMENX", oldKey, newKey)
}

// String 系列指令
func (c redisCommands) Get(key string) *RedisResponse {
	return c.do("GET", key)
}

func (c redisCommands) Set(key string, val interface{}) *RedisResponse {
	return c.do("SET", key, val)
}

func (c redisCommands) SetEX(key string, val interface{}, seconds int64) *RedisResponse {
	return c.do("SET", key, val, "EX", seconds)
}

func (c redisCommands) PSetEX(key string, val interface{}, millis int64) *RedisResponse {
	return c.do("SET", key, val, "PX", millis)
}

func (c redisCommands) SetNX(key string, val interface{}) *RedisResponse {
	return c.do("SET", key, val, "NX")
}

func (c redisCommands) SetXX(key string, val interface{}) *RedisResponse {
	return c.do("SET", key, val, "XX")
}

func (c redisCommands) MSet(pairs map[string]interface{}) *RedisResponse {
	return c.do("MSET", pairArgs(nil, pairs)...)
}

func (c redisCommands) MSetNX(pairs map[string]interface{}) *RedisResponse {
	return c.do("MSETNX", pairArgs(nil, pairs)...)
}

func (c redisCommands) MGet(key ...string) *RedisResponse {
	return c.do("MGET", keyArgs(key)...)
}

func (c redisCommands) GetRange(key string, start, end int64) *RedisResponse {
	return c.do("GETRANGE", key, start, end)
}

func (c redisCommands) SetRange(key string, offset int64, val interface{}) *RedisResponse {
	return c.do("SETRANGE", key, offset, val)
}

func (c redisCommands) StrLen(key string) *RedisResponse {
	return c.do("STRLEN", key)
}

func (c redisCommands) Append(key string, val interface{}) *RedisResponse {
	return c.do("APPEND", key, val)
}

func (c redisCommands) Incr(key string) *RedisResponse {
	return c.do("INCR", key)
}

func (c redisCommands) IncrBy(key string, val int64) *RedisResponse {
	return c.do("INCRBY", key, val)
}

func (c redisCommands) IncrByFloat(key string, val float64) *RedisResponse {
	return c.do("INCRBYFLOAT", key, val)
}

func (c redisCommands) Decr(key string) *RedisResponse {
	return c.do("DECR", key)
}

func (c redisCommands) DecrBy(key string, val int64) *RedisResponse {
	return c.do("DECRBY", key, val)
}

// List 系列指令
func (c redisCommands) LPush(key string, val ...interface{}) *RedisResponse {
	return c.do("LPUSH", append([]interface{}{key}, val...)...)
}

func (c redisCommands) RPush(key string, val ...interface{}) *RedisResponse {
	return c.do("RPUSH", append([]interface{}{key}, val...)...)
}

func (c redisCommands) LPushX(key string, val ...interface{}) *RedisResponse {
	return c.do("LPUSHX", append([]interface{}{key}, val...)...)
}

func (c redisCommands) RPushX(key string, val ...interface{}) *RedisResponse {
	return c.do("RPUSHX", append([]interface{}{key}, val...)...)
}

func (c redisCommands) LPop(key string) *RedisResponse {
	return c.do("LPOP", key)
}

func (c redisCommands) RPop(key string) *RedisResponse {
	return c.do("RPOP", key)
}

func (c redisCommands) LRange(key string, start, stop int64) *RedisResponse {
	return c.do("LRANGE", key, start, stop)
}

func (c redisCommands) RPopLPush(source, destination string) *RedisResponse {
	return c.do("RPOPLPUSH", source, destination)
}

func (c redisCommands) LLen(key string) *RedisResponse {
	return c.do("LLEN", key)
}

func (c redisCommands) LRem(key string, count int64, element interface{}) *RedisResponse {
	return c.do("LREM", key, count, element)
}

func (c redisCommands) LTrim(key string, start, stop int64) *RedisResponse {
	return c.do("LTRIM", key, start, stop)
}

func (c redisCommands) LIndex(key string, index int64) *RedisResponse {
	return c.do("LINDEX", key, index)
}

func (c redisCommands) LInsert(key string, where string, pivot, element interface{}) *RedisResponse {
	return c.do("LINSERT", key, where, pivot, element)
}

func (c redisCommands) LSet(key string, index int64, element interface{}) *RedisResponse {
	return c.do("LSET", key, index, element)
}

// Hash 系列指令
func (c redisCommands) HSet(key, field string, val interface{}) *RedisResponse {
	return c.do("HSET", key, field, val)
}

func (c redisCommands) HMSet(key string, val map[string]interface{}) *RedisResponse {
	return c.do("HMSET", pairArgs([]interface{}{key}, val)...)
}

func (c redisCommands) HSetNX(key, field string, val interface{}) *RedisResponse {
	return c.do("HSETNX", key, field, val)
}

func (c redisCommands) HGet(key, field string) *RedisResponse {
	return c.do("HGET", key, field)
}

func (c redisCommands) HMGet(key string, field ...string) *RedisResponse {
	return c.do("HMGET", append([]interface{}{key}, keyArgs(field)...)...)
}

func (c redisCommands) HGetAll(key string) *RedisResponse {
	return c.do("HGETALL", key)
}

func (c redisCommands) HExists(key, field string) *RedisResponse {
	return c.do("HEXISTS", key, field)
}

func (c redisCommands) HLen(key string) *RedisResponse {
	return c.do("HLEN", key)
}

func (c redisCommands) HStrLen(key, field string) *RedisResponse {
	return c.do("HSTRLEN", key, field)
}

func (c redisCommands) HIncrBy(key, field string, val int64) *RedisResponse {
	return c.do("HINCRBY", key, field, val)
}

func (c redisCommands) HIncrByFloat(key, field string, val float64) *RedisResponse {
	return c.do("HINCRBYFLOAT", key, field, val)
}

func (c redisCommands) HKeys(key string) *RedisResponse {
	return c.do("HKEYS", key)
}

func (c redisCommands) HVals(key string) *RedisResponse {
	return c.do("HVALS", key)
}

func (c redisCommands) HDel(key string, field ...string) *RedisResponse {
	return c.do("HDEL", append([]interface{}{key}, keyArgs(field)...)...)
}

// Set 系列指令
func (c redisCommands) SAdd(key string, member ...interface{}) *RedisResponse {
	return c.do("SADD", append([]interface{}{key}, member...)...)
}

func (c redisCommands) SMembers(key string) *RedisResponse {
	return c.do("SMEMBERS", key)
}

func (c redisCommands) SIsMember(key string, member interface{}) *RedisResponse {
	return c.do("SISMEMBER", key, member)
}

func (c redisCommands) SCard(key string) *RedisResponse {
	return c.do("SCARD", key)
}

func (c redisCommands) SRem(key string, member ...interface{}) *RedisResponse {
	return c.do("SREM", append([]interface{}{key}, member...)...)
}

func (c redisCommands) SRandMember(key string) *RedisResponse {
	return c.do("SRANDMEMBER", key)
}

func (c redisCommands) SRandMemberN(key string, count int64) *RedisResponse {
	return c.do("SRANDMEMBER", key, count)
}

func (c redisCommands) SPopN(key string, count int64) *RedisResponse {
	return c.do("SPOP", key, count)
}

func (c redisCommands) SMove(source, destination string, member interface{}) *RedisResponse {
	return c.do("SMOVE", source, destination, member)
}

func (c redisCommands) SDiff(key ...string) *RedisResponse {
	return c.do("SDIFF", keyArgs(key)...)
}

func (c redisCommands) SInter(key ...string) *RedisResponse {
	return c.do("SINTER", keyArgs(key)...)
}

func (c redisCommands) SUnion(key ...string) *RedisResponse {
	return c.do("SUNION", keyArgs(key)...)
}

// Sorted Set 系列指令
func (c redisCommands) ZAdd(key string, member ...ScoreTuple) *RedisResponse {
	args := []interface{}{key}
	for _, m := range member {
		args = append(args, m.Score, m.Member)
	}

	return c.do("ZADD", args...)
}

func (c redisCommands) ZRange(key string, start, stop int64, withScores bool) *RedisResponse {
	args := []interface{}{key, start, stop}
	if withScores {
		args = append(args, "WITHSCORES")
	}

	return c.do("ZRANGE", args...)
}

func (c redisCommands) ZRevRange(key string, start, stop int64, withScores bool) *RedisResponse {
	args := []interface{}{key, start, stop}
	if withScores {
		args = append(args, "WITHSCORES")
	}

	return c.do("ZREVRANGE", args...)
}

func (c redisCommands) ZRangeByScore(key string, min, max string, withScores bool, limit *Limit) *RedisResponse {
	args := []interface{}{key, min, max}
	if withScores {
		args = append(args, "WITHSCORES")
	}

	if limit != nil {
		args = append(args, "LIMIT", limit.Offset, limit.Count)
	}

	return c.do("ZRANGEBYSCORE", args...)
}

func (c redisCommands) ZRem(key string, member ...interface{}) *RedisResponse {
	return c.do("ZREM", append([]interface{}{key}, member...)...)
}

func (c redisCommands) ZCard(key string) *RedisResponse {
	return c.do("ZCARD", key)
}

func (c redisCommands) ZCount(key string, min, max string) *RedisResponse {
	return c.do("ZCOUNT", key, min, max)
}

func (c redisCommands) ZRank(key string, member interface{}) *RedisResponse {
	return c.do("ZRANK", key, member)
}

func (c redisCommands) ZRevRank(key string, member interface{}) *RedisResponse {
	return c.do("ZREVRANK", key, member)
}

func (c redisCommands) ZScore(key string, member interface{}) *RedisResponse {
	return c.do("ZSCORE", key, member)
}

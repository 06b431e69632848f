package redisutils

// RedisOperator is the single store connection every sub-facade talks to.
// Each method issues exactly one command and hands back the raw reply; a nil
// reply is reported through RedisResponse.RecordNotFound. Both RedisOp and
// MockRedisOp implement it.
type RedisOperator interface {
	// Connection management
	Profile() RedisProfile
	ActiveCount() int
	IdleCount() int
	Close() error
	Ping() *RedisResponse
	FlushDB() *RedisResponse

	// Key operations
	Expire(key string, seconds int64) *RedisResponse
	PExpire(key string, millis int64) *RedisResponse
	TTL(key string) *RedisResponse
	PTTL(key string) *RedisResponse
	Exists(key ...string) *RedisResponse
	Type(key string) *RedisResponse
	Keys(pattern string) *RedisResponse
	Move(key string, db int) *RedisResponse
	Delete(key ...string) *RedisResponse
	Persist(key string) *RedisResponse
	Rename(oldKey, newKey string) *RedisResponse
	RenameNX(oldKey, newKey string) *RedisResponse

	// String operations
	Get(key string) *RedisResponse
	Set(key string, val interface{}) *RedisResponse
	SetEX(key string, val interface{}, seconds int64) *RedisResponse
	PSetEX(key string, val interface{}, millis int64) *RedisResponse
	SetNX(key string, val interface{}) *RedisResponse
	SetXX(key string, val interface{}) *RedisResponse
	MSet(pairs map[string]interface{}) *RedisResponse
	MSetNX(pairs map[string]interface{}) *RedisResponse
	MGet(key ...string) *RedisResponse
	GetRange(key string, start, end int64) *RedisResponse
	SetRange(key string, offset int64, val interface{}) *RedisResponse
	StrLen(key string) *RedisResponse
	Append(key string, val interface{}) *RedisResponse
	Incr(key string) *RedisResponse
	IncrBy(key string, val int64) *RedisResponse
	IncrByFloat(key string, val float64) *RedisResponse
	Decr(key string) *RedisResponse
	DecrBy(key string, val int64) *RedisResponse

	// List operations
	LPush(key string, val ...interface{}) *RedisResponse
	RPush(key string, val ...interface{}) *RedisResponse
	LPushX(key string, val ...interface{}) *RedisResponse
	RPushX(key string, val ...interface{}) *RedisResponse
	LPop(key string) *RedisResponse
	RPop(key string) *RedisResponse
	LRange(key string, start, stop int64) *RedisResponse
	RPopLPush(source, destination string) *RedisResponse
	LLen(key string) *RedisResponse
	LRem(key string, count int64, element interface{}) *RedisResponse
	LTrim(key string, start, stop int64) *RedisResponse
	LIndex(key string, index int64) *RedisResponse
	LInsert(key string, where string, pivot, element interface{}) *RedisResponse
	LSet(key string, index int64, element interface{}) *RedisResponse

	// Hash operations
	HSet(key, field string, val interface{}) *RedisResponse
	HMSet(key string, val map[string]interface{}) *RedisResponse
	HSetNX(key, field string, val interface{}) *RedisResponse
	HGet(key, field string) *RedisResponse
	HMGet(key string, field ...string) *RedisResponse
	HGetAll(key string) *RedisResponse
	HExists(key, field string) *RedisResponse
	HLen(key string) *RedisResponse
	HStrLen(key, field string) *RedisResponse
	HIncrBy(key, field string, val int64) *RedisResponse
	HIncrByFloat(key, field string, val float64) *RedisResponse
	HKeys(key string) *RedisResponse
	HVals(key string) *RedisResponse
	HDel(key string, field ...string) *RedisResponse

	// Set operations
	SAdd(key string, member ...interface{}) *RedisResponse
	SMembers(key string) *RedisResponse
	SIsMember(key string, member interface{}) *RedisResponse
	SCard(key string) *RedisResponse
	SRem(key string, member ...interface{}) *RedisResponse
	SRandMember(key string) *RedisResponse
	SRandMemberN(key string, count int64) *RedisResponse
	SPopN(key string, count int64) *RedisResponse
	SMove(source, destination string, member interface{}) *RedisResponse
	SDiff(key ...string) *RedisResponse
	SInter(key ...string) *RedisResponse
	SUnion(key ...string) *RedisResponse

	// Sorted Set operations
	ZAdd(key string, member ...ScoreTuple) *RedisResponse
	ZRange(key string, start, stop int64, withScores bool) *RedisResponse
	ZRevRange(key string, start, stop int64, withScores bool) *RedisResponse
	ZRangeByScore(key string, min, max string, withScores bool, limit *Limit) *RedisResponse
	ZRem(key string, member ...interface{}) *RedisResponse
	ZCard(key string) *RedisResponse
	ZCount(key string, min, max string) *RedisResponse
	ZRank(key string, member interface{}) *RedisResponse
	ZRevRank(key string, member interface{}) *RedisResponse
	ZScore(key string, member interface{}) *RedisResponse
}

package redisutils

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yetiz-org/goth-kklogger"
)

var DefaultRedisDialTimeout = 1000
var DefaultRedisReadTimeout = 3000
var DefaultRedisWriteTimeout = 3000
var DefaultRedisMaxIdle = 20
var DefaultRedisIdleTimeout = 60000
var DefaultRedisMaxConnLifetime = 0
var DefaultRedisMaxActive = 0

var RedisNotFound = fmt.Errorf("not_found")

// RedisOp is the go-redis backed RedisOperator. The client it wraps is safe
// for concurrent use, so one RedisOp is shared by every sub-facade.
type RedisOp struct {
	redisCommands
	profile RedisProfile
	client  redis.UniversalClient
}

func (o *RedisOp) Profile() RedisProfile {
	return o.profile
}

func (o *RedisOp) Client() redis.UniversalClient {
	return o.client
}

func (o *RedisOp) ActiveCount() int {
	if o.client == nil {
		return 0
	}

	stats := o.client.PoolStats()
	return int(stats.TotalConns - stats.IdleConns)
}

func (o *RedisOp) IdleCount() int {
	if o.client == nil {
		return 0
	}

	return int(o.client.PoolStats().IdleConns)
}

func (o *RedisOp) Close() error {
	if o.client != nil {
		return o.client.Close()
	}

	return nil
}

func (o *RedisOp) _Do(cmd string, args ...interface{}) *RedisResponse {
	cmdArgs := make([]interface{}, 0, len(args)+1)
	cmdArgs = append(cmdArgs, cmd)
	cmdArgs = append(cmdArgs, args...)
	r, err := o.client.Do(context.Background(), cmdArgs...).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &RedisResponse{Error: RedisNotFound}
		}

		return &RedisResponse{Error: err}
	}

	if r == nil {
		return &RedisResponse{Error: RedisNotFound}
	}

	return &RedisResponse{RedisResponseEntity: RedisResponseEntity{data: r}}
}

// NewRedis loads the named profile and connects to it. It returns nil when the
// profile cannot be loaded.
func NewRedis(profileName string) *RedisOp {
	profile, err := LoadRedisProfile(profileName)
	if err != nil {
		kklogger.ErrorJ("redisutils.NewRedis#Load", err.Error())
		return nil
	}

	return NewRedisOp(profile)
}

// NewRedisOp connects to the given profile without touching the filesystem.
func NewRedisOp(profile RedisProfile) *RedisOp {
	kklogger.DebugJ("redisutils.NewRedisOp", fmt.Sprintf("new client to %s", profile.Addr()))
	return NewRedisOpWithClient(profile, redis.NewClient(newRedisOptions(profile)))
}

// NewRedisOpWithClient wraps an existing go-redis client, e.g. a cluster or
// failover client configured elsewhere.
func NewRedisOpWithClient(profile RedisProfile, client redis.UniversalClient) *RedisOp {
	op := &RedisOp{
		profile: profile,
		client:  client,
	}

	op.redisCommands = redisCommands{do: op._Do}
	return op
}

func newRedisOptions(profile RedisProfile) *redis.Options {
	return &redis.Options{
		Addr:            profile.Addr(),
		Username:        profile.Username,
		Password:        profile.Password,
		DB:              profile.DB,
		Protocol:        2,
		DialTimeout:     time.Duration(DefaultRedisDialTimeout) * time.Millisecond,
		ReadTimeout:     time.Duration(DefaultRedisReadTimeout) * time.Millisecond,
		WriteTimeout:    time.Duration(DefaultRedisWriteTimeout) * time.Millisecond,
		PoolSize:        DefaultRedisMaxActive,
		MaxIdleConns:    DefaultRedisMaxIdle,
		ConnMaxIdleTime: time.Duration(DefaultRedisIdleTimeout) * time.Millisecond,
		ConnMaxLifetime: time.Duration(DefaultRedisMaxConnLifetime) * time.Millisecond,
	}
}

type RedisResponseEntity struct {
	data interface{}
}

func (k *RedisResponseEntity) IsNil() bool {
	return k.data == nil
}

func (k *RedisResponseEntity) GetInt64() int64 {
	switch v := k.data.(type) {
	case int64:
		return v
	case string:
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			return p
		}

		return 0
	case []byte:
		if p, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return p
		}

		return 0
	}

	return 0
}

func (k *RedisResponseEntity) GetFloat64() float64 {
	switch v := k.data.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			return p
		}
	case []byte:
		if p, err := strconv.ParseFloat(string(v), 64); err == nil {
			return p
		}
	}

	return 0
}

func (k *RedisResponseEntity) GetString() string {
	switch v := k.data.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return fmt.Sprintf("%d", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (k *RedisResponseEntity) GetBytes() []byte {
	switch v := k.data.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}

	return nil
}

// GetReply reads an integer or boolean reply as a tri-state.
func (k *RedisResponseEntity) GetReply() Reply {
	switch v := k.data.(type) {
	case int64:
		if v != 0 {
			return ReplyTrue
		}

		return ReplyFalse
	case bool:
		if v {
			return ReplyTrue
		}

		return ReplyFalse
	case string:
		if v == "OK" || v == "1" {
			return ReplyTrue
		}

		return ReplyFalse
	}

	return ReplyAbsent
}

func (k *RedisResponseEntity) GetSlice() []RedisResponseEntity {
	var entities []RedisResponseEntity
	switch v := k.data.(type) {
	case []interface{}:
		for _, entity := range v {
			entities = append(entities, RedisResponseEntity{data: entity})
		}
	}

	return entities
}

// GetStrings flattens an array reply, skipping nil elements.
func (k *RedisResponseEntity) GetStrings() []string {
	v, ok := k.data.([]interface{})
	if !ok {
		return nil
	}

	strs := make([]string, 0, len(v))
	for _, entity := range v {
		if entity == nil {
			continue
		}

		e := RedisResponseEntity{data: entity}
		strs = append(strs, e.GetString())
	}

	return strs
}

// GetNullStrings keeps the position of nil elements, as MGET and HMGET need.
func (k *RedisResponseEntity) GetNullStrings() []NullString {
	v, ok := k.data.([]interface{})
	if !ok {
		return nil
	}

	strs := make([]NullString, len(v))
	for i, entity := range v {
		if entity == nil {
			continue
		}

		e := RedisResponseEntity{data: entity}
		strs[i] = NullString{String: e.GetString(), Valid: true}
	}

	return strs
}

// GetStringMap reads a field/value reply, either a flat RESP2 array or a RESP3 map.
func (k *RedisResponseEntity) GetStringMap() map[string]string {
	switch v := k.data.(type) {
	case []interface{}:
		m := make(map[string]string, len(v)/2)
		for i := 0; i+1 < len(v); i += 2 {
			f, val := RedisResponseEntity{data: v[i]}, RedisResponseEntity{data: v[i+1]}
			m[f.GetString()] = val.GetString()
		}

		return m
	case map[interface{}]interface{}:
		m := make(map[string]string, len(v))
		for mk, mv := range v {
			f, val := RedisResponseEntity{data: mk}, RedisResponseEntity{data: mv}
			m[f.GetString()] = val.GetString()
		}

		return m
	}

	return nil
}

// GetScoreTuples reads a WITHSCORES reply: member, score, member, score...
func (k *RedisResponseEntity) GetScoreTuples() []ScoreTuple {
	v, ok := k.data.([]interface{})
	if !ok {
		return nil
	}

	tuples := make([]ScoreTuple, 0, len(v)/2)
	for i := 0; i+1 < len(v); i += 2 {
		m, s := RedisResponseEntity{data: v[i]}, RedisResponseEntity{data: v[i+1]}
		tuples = append(tuples, ScoreTuple{Member: m.GetString(), Score: s.GetFloat64()})
	}

	return tuples
}

type RedisResponse struct {
	RedisResponseEntity
	Error error
}

func (k *RedisResponse) RecordNotFound() bool {
	return errors.Is(k.Error, RedisNotFound)
}

// Failed reports a store-side or transport error. A nil reply is not a failure.
func (k *RedisResponse) Failed() bool {
	return k.Error != nil && !k.RecordNotFound()
}

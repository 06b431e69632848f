package redisutils

import (
	"strings"
)

// ExpiryMode selects the unit of a TTL given with a write. Matching is
// case-insensitive; any other value is accepted and ignored.
type ExpiryMode string

const (
	ExpiryModeSeconds ExpiryMode = "ex"
	ExpiryModeMillis  ExpiryMode = "px"
)

func (m ExpiryMode) seconds() bool {
	return strings.EqualFold(string(m), string(ExpiryModeSeconds))
}

func (m ExpiryMode) millis() bool {
	return strings.EqualFold(string(m), string(ExpiryModeMillis))
}

type SetCondition int

const (
	KeyMustBeAbsent SetCondition = iota
	KeyMustBePresent
)

// StringOps covers scalar values.
type StringOps struct {
	ops
}

func NewStringOps(op RedisOperator, opts Options) *StringOps {
	return &StringOps{ops{op: op, opts: opts, name: "StringOps"}}
}

func (s *StringOps) Set(key, value string) bool {
	if key == "" {
		return false
	}

	return s.okOf("Set", s.op.Set(key, value))
}

// SetWithExpiry writes value with a TTL in one command. An unrecognised mode
// writes nothing and still reports true.
func (s *StringOps) SetWithExpiry(key, value string, mode ExpiryMode, ttl int64) bool {
	if key == "" || mode == "" || ttl <= 0 {
		return false
	}

	switch {
	case mode.seconds():
		return s.okOf("SetWithExpiry", s.op.SetEX(key, value, ttl))
	case mode.millis():
		return s.okOf("SetWithExpiry", s.op.PSetEX(key, value, ttl))
	}

	return true
}

// SetIf writes only when the key is absent (NX) or present (XX) and reports
// whether the write happened.
func (s *StringOps) SetIf(key, value string, cond SetCondition) bool {
	if key == "" {
		return false
	}

	switch cond {
	case KeyMustBeAbsent:
		return s.okOf("SetIf", s.op.SetNX(key, value))
	case KeyMustBePresent:
		return s.okOf("SetIf", s.op.SetXX(key, value))
	}

	return false
}

// SetWithExpiryIf is SetIf followed by an expiry on the same key. These are
// two commands; the expiry is skipped when the conditional write did not
// happen. An empty mode degrades to a plain SetIf.
func (s *StringOps) SetWithExpiryIf(key, value string, mode ExpiryMode, ttl int64, cond SetCondition) bool {
	if mode == "" {
		return s.SetIf(key, value, cond)
	}

	if key == "" || ttl <= 0 {
		return false
	}

	if !s.SetIf(key, value, cond) {
		return false
	}

	switch {
	case mode.seconds():
		return s.okOf("SetWithExpiryIf", s.op.Expire(key, ttl))
	case mode.millis():
		return s.okOf("SetWithExpiryIf", s.op.PExpire(key, ttl))
	}

	return true
}

func (s *StringOps) pairs(values map[string]string) map[string]interface{} {
	if len(values) == 0 {
		return nil
	}

	pairs := make(map[string]interface{}, len(values))
	for k, v := range values {
		if k == "" {
			return nil
		}

		pairs[k] = v
	}

	return pairs
}

// MSet writes every pair with one MSET; atomicity is whatever the store gives.
func (s *StringOps) MSet(values map[string]string) bool {
	pairs := s.pairs(values)
	if pairs == nil {
		return false
	}

	return s.okOf("MSet", s.op.MSet(pairs))
}

// MSetNX writes the batch only when none of the keys exist.
func (s *StringOps) MSetNX(values map[string]string) bool {
	pairs := s.pairs(values)
	if pairs == nil {
		return false
	}

	return s.okOf("MSetNX", s.op.MSetNX(pairs))
}

func (s *StringOps) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	return s.stringOf("Get", s.op.Get(key))
}

// MGet returns one slot per key, in the order given.
func (s *StringOps) MGet(keys ...string) []NullString {
	if len(keys) == 0 || hasEmpty(keys) {
		return nil
	}

	resp := s.op.MGet(keys...)
	if !s.check("MGet", resp) {
		return nil
	}

	return resp.GetNullStrings()
}

// GetRange returns the substring between the inclusive offsets start and stop.
func (s *StringOps) GetRange(key string, start, stop int64) string {
	if key == "" {
		return ""
	}

	v, _ := s.stringOf("GetRange", s.op.GetRange(key, start, stop))
	return v
}

// SetRange overwrites from offset on and returns the new length, -1 on failure.
func (s *StringOps) SetRange(key string, offset int64, value string) int64 {
	if key == "" || offset < 0 {
		return -1
	}

	return s.int64Or("SetRange", s.op.SetRange(key, offset, value), -1)
}

func (s *StringOps) StrLen(key string) int64 {
	if key == "" {
		return 0
	}

	return s.int64Or("StrLen", s.op.StrLen(key), 0)
}

// Append returns the length after appending.
func (s *StringOps) Append(key, suffix string) int64 {
	if key == "" {
		return 0
	}

	return s.int64Or("Append", s.op.Append(key, suffix), 0)
}

func (s *StringOps) counter(method string, resp *RedisResponse) (int64, error) {
	if err := s.numeric(method, resp); err != nil {
		return 0, err
	}

	return resp.GetInt64(), nil
}

// Incr and the rest of the counter family fail with ErrNotANumber when the
// stored value is not an integer. An empty key yields 0 without a call.
func (s *StringOps) Incr(key string) (int64, error) {
	if key == "" {
		return 0, nil
	}

	return s.counter("Incr", s.op.Incr(key))
}

func (s *StringOps) IncrBy(key string, delta int64) (int64, error) {
	if key == "" {
		return 0, nil
	}

	return s.counter("IncrBy", s.op.IncrBy(key, delta))
}

func (s *StringOps) Decr(key string) (int64, error) {
	if key == "" {
		return 0, nil
	}

	return s.counter("Decr", s.op.Decr(key))
}

func (s *StringOps) DecrBy(key string, delta int64) (int64, error) {
	if key == "" {
		return 0, nil
	}

	return s.counter("DecrBy", s.op.DecrBy(key, delta))
}

func (s *StringOps) IncrByFloat(key string, delta float64) (float64, error) {
	if key == "" {
		return 0, nil
	}

	resp := s.op.IncrByFloat(key, delta)
	if err := s.numeric("IncrByFloat", resp); err != nil {
		return 0, err
	}

	return resp.GetFloat64(), nil
}

package redisutils

import (
	"strings"
)

// ListOps covers double-ended lists.
type ListOps struct {
	ops
}

func NewListOps(op RedisOperator, opts Options) *ListOps {
	return &ListOps{ops{op: op, opts: opts, name: "ListOps"}}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// LPush pushes one value onto the head and returns the list length, -1 on failure.
func (l *ListOps) LPush(key, value string) int64 {
	if key == "" {
		return -1
	}

	return l.int64Or("LPush", l.op.LPush(key, value), -1)
}

// LPushMany pushes the values one command at a time and stops at the first
// failure with -1. On success it returns how many values were given, not the
// resulting list length.
func (l *ListOps) LPushMany(key string, values ...string) int64 {
	if key == "" {
		return -1
	}

	for _, v := range values {
		if l.LPush(key, v) == -1 {
			return -1
		}
	}

	return int64(len(values))
}

// LPushAll pushes the whole batch with one command and returns the list length,
// 0 when the store gives no reply.
func (l *ListOps) LPushAll(key string, values []string) int64 {
	if key == "" {
		return -1
	}

	if len(values) == 0 {
		return 0
	}

	return l.batchPush("LPushAll", l.op.LPush(key, toArgs(values)...))
}

// batchPush reads a batch push reply: 0 when the store answered nothing, -1
// when the call failed.
func (l *ListOps) batchPush(method string, resp *RedisResponse) int64 {
	if resp.RecordNotFound() {
		return 0
	}

	return l.int64Or(method, resp, -1)
}

// LPushX pushes only onto an existing list; the store answers 0 otherwise.
func (l *ListOps) LPushX(key, value string) int64 {
	if key == "" {
		return -1
	}

	return l.int64Or("LPushX", l.op.LPushX(key, value), -1)
}

func (l *ListOps) RPush(key, value string) int64 {
	if key == "" {
		return -1
	}

	return l.int64Or("RPush", l.op.RPush(key, value), -1)
}

// RPushMany mirrors LPushMany for the tail.
func (l *ListOps) RPushMany(key string, values ...string) int64 {
	if key == "" {
		return -1
	}

	for _, v := range values {
		if l.RPush(key, v) == -1 {
			return -1
		}
	}

	return int64(len(values))
}

func (l *ListOps) RPushAll(key string, values []string) int64 {
	if key == "" {
		return -1
	}

	if len(values) == 0 {
		return 0
	}

	return l.batchPush("RPushAll", l.op.RPush(key, toArgs(values)...))
}

func (l *ListOps) RPushX(key, value string) int64 {
	if key == "" {
		return -1
	}

	return l.int64Or("RPushX", l.op.RPushX(key, value), -1)
}

func (l *ListOps) LPop(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	return l.stringOf("LPop", l.op.LPop(key))
}

func (l *ListOps) RPop(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	return l.stringOf("RPop", l.op.RPop(key))
}

// LRange returns elements start..stop inclusive; negative indexes count from the tail.
func (l *ListOps) LRange(key string, start, stop int64) []string {
	if key == "" {
		return nil
	}

	return l.stringsOf("LRange", l.op.LRange(key, start, stop))
}

// RPopLPush moves the tail of src onto the head of dest in one command.
func (l *ListOps) RPopLPush(src, dest string) (string, bool) {
	if src == "" || dest == "" {
		return "", false
	}

	return l.stringOf("RPopLPush", l.op.RPopLPush(src, dest))
}

func (l *ListOps) LLen(key string) int64 {
	if key == "" {
		return 0
	}

	return l.int64Or("LLen", l.op.LLen(key), 0)
}

// LRem removes up to |count| occurrences of value, from the head when count is
// positive, from the tail when negative, all of them when zero.
func (l *ListOps) LRem(key string, count int64, value string) int64 {
	if key == "" {
		return -1
	}

	return l.int64Or("LRem", l.op.LRem(key, count, value), -1)
}

func (l *ListOps) LTrim(key string, start, stop int64) bool {
	if key == "" {
		return false
	}

	return l.okOf("LTrim", l.op.LTrim(key, start, stop))
}

// LIndex reads one element. An index whose magnitude exceeds the current
// length is rejected without asking for the element; |index| == length is
// still sent and comes back absent. Length and read are separate commands.
func (l *ListOps) LIndex(key string, index int64) (string, bool) {
	if key == "" || abs(index) > l.LLen(key) {
		return "", false
	}

	return l.stringOf("LIndex", l.op.LIndex(key, index))
}

// LInsert puts value before or after the first pivot. where is matched
// case-insensitively; anything else returns -1 without a call. The store
// answers -1 when pivot is missing and 0 when the key is.
func (l *ListOps) LInsert(key, where, pivot, value string) int64 {
	if key == "" {
		return -1
	}

	switch {
	case strings.EqualFold(where, "before"):
		return l.int64Or("LInsert", l.op.LInsert(key, "BEFORE", pivot, value), -1)
	case strings.EqualFold(where, "after"):
		return l.int64Or("LInsert", l.op.LInsert(key, "AFTER", pivot, value), -1)
	}

	return -1
}

// LSet overwrites one element after checking the index against the current
// length; out of range, including any index into an empty or missing list, is
// a silent no-op.
func (l *ListOps) LSet(key string, index int64, value string) bool {
	if key == "" {
		return false
	}

	size := l.LLen(key)
	if size == 0 || (index > 0 && index >= size) || (index < 0 && abs(index) >= size+1) {
		return false
	}

	return l.okOf("LSet", l.op.LSet(key, index, value))
}

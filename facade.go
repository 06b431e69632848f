package redisutils

import (
	"fmt"
	"strings"

	"github.com/yetiz-org/goth-kklogger"
)

var ErrInvalidArgument = fmt.Errorf("invalid_argument")
var ErrNotANumber = fmt.Errorf("not_a_number")

// Reply is the three-valued answer of a boolean command: the store said yes,
// said no, or said nothing at all (nil reply or failure).
type Reply int

const (
	ReplyAbsent Reply = iota
	ReplyFalse
	ReplyTrue
)

func (r Reply) String() string {
	switch r {
	case ReplyTrue:
		return "true"
	case ReplyFalse:
		return "false"
	}

	return "absent"
}

// Options tunes how the facade collapses store replies.
type Options struct {
	// LegacyExistence makes every non-absent boolean reply count as true, so a
	// store "0" still reports existence. Affects Exists, Move, HExists, HSetNX,
	// SIsMember and SMove.
	LegacyExistence bool
	// LegacySetAlgebra makes SInterMany and SUnionMany run the command and
	// then return nil.
	LegacySetAlgebra bool
}

// Bool collapses a tri-state reply into the public boolean.
func (o Options) Bool(r Reply) bool {
	if o.LegacyExistence {
		return r != ReplyAbsent
	}

	return r == ReplyTrue
}

type DataType string

const (
	DataTypeNone   DataType = "none"
	DataTypeString DataType = "string"
	DataTypeList   DataType = "list"
	DataTypeHash   DataType = "hash"
	DataTypeSet    DataType = "set"
	DataTypeZSet   DataType = "zset"
	DataTypeStream DataType = "stream"
)

// NullString is one slot of a multi-get; Valid is false where the store had nothing.
type NullString struct {
	String string
	Valid  bool
}

// ScoreTuple is a sorted-set member with its score.
type ScoreTuple struct {
	Member string
	Score  float64
}

// Limit pages a score range: skip Offset matches, return at most Count.
type Limit struct {
	Offset int64
	Count  int64
}

// Facade groups the per-type operations over one shared connection.
type Facade struct {
	op      RedisOperator
	Keys    *KeyAdmin
	Strings *StringOps
	Lists   *ListOps
	Hashes  *HashOps
	Sets    *SetOps
	ZSets   *SortedSetOps
}

func NewFacade(op RedisOperator, opts Options) *Facade {
	return &Facade{
		op:      op,
		Keys:    NewKeyAdmin(op, opts),
		Strings: NewStringOps(op, opts),
		Lists:   NewListOps(op, opts),
		Hashes:  NewHashOps(op, opts),
		Sets:    NewSetOps(op, opts),
		ZSets:   NewSortedSetOps(op, opts),
	}
}

func (f *Facade) Operator() RedisOperator {
	return f.op
}

func (f *Facade) Close() error {
	return f.op.Close()
}

// ops is embedded by every sub-facade.
type ops struct {
	op   RedisOperator
	opts Options
	name string
}

// check logs a store failure and reports whether the reply is usable. A nil
// reply is not logged; it is the ordinary "absent" answer.
func (o *ops) check(method string, resp *RedisResponse) bool {
	if resp.Error == nil {
		return true
	}

	if !resp.RecordNotFound() {
		kklogger.WarnJ(fmt.Sprintf("redisutils:%s.%s", o.name, method), resp.Error.Error())
	}

	return false
}

func (o *ops) int64Or(method string, resp *RedisResponse, fallback int64) int64 {
	if !o.check(method, resp) {
		return fallback
	}

	return resp.GetInt64()
}

func (o *ops) stringOf(method string, resp *RedisResponse) (string, bool) {
	if !o.check(method, resp) {
		return "", false
	}

	return resp.GetString(), true
}

func (o *ops) stringsOf(method string, resp *RedisResponse) []string {
	if !o.check(method, resp) {
		return nil
	}

	return resp.GetStrings()
}

func (o *ops) replyOf(method string, resp *RedisResponse) Reply {
	if !o.check(method, resp) {
		return ReplyAbsent
	}

	return resp.GetReply()
}

func (o *ops) okOf(method string, resp *RedisResponse) bool {
	return o.replyOf(method, resp) == ReplyTrue
}

// numeric is the one place store errors are returned instead of swallowed.
func (o *ops) numeric(method string, resp *RedisResponse) error {
	if resp.Error == nil || resp.RecordNotFound() {
		return nil
	}

	kklogger.WarnJ(fmt.Sprintf("redisutils:%s.%s", o.name, method), resp.Error.Error())
	if isNotANumber(resp.Error) {
		return fmt.Errorf("%s: %s: %w", method, resp.Error.Error(), ErrNotANumber)
	}

	return resp.Error
}

func isNotANumber(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not an integer") ||
		strings.Contains(msg, "not a valid float") ||
		strings.Contains(msg, "not a float")
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}

	return args
}

func hasEmpty(values []string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}

	return false
}

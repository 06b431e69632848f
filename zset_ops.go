package redisutils

import (
	"sort"
)

// SortedSetOps covers score-ordered sets.
type SortedSetOps struct {
	ops
}

func NewSortedSetOps(op RedisOperator, opts Options) *SortedSetOps {
	return &SortedSetOps{ops{op: op, opts: opts, name: "SortedSetOps"}}
}

// ZAdd adds or re-scores members and returns how many were new. Re-adding a
// member moves it to the position its new score dictates.
func (z *SortedSetOps) ZAdd(key string, members map[string]float64) int64 {
	if key == "" || len(members) == 0 {
		return 0
	}

	tuples := make([]ScoreTuple, 0, len(members))
	for m, score := range members {
		if m == "" {
			return 0
		}

		tuples = append(tuples, ScoreTuple{Member: m, Score: score})
	}

	sort.Slice(tuples, func(i, j int) bool { return tuples[i].Member < tuples[j].Member })
	return z.int64Or("ZAdd", z.op.ZAdd(key, tuples...), 0)
}

func (z *SortedSetOps) ZRange(key string, start, end int64) []string {
	if key == "" {
		return nil
	}

	return z.stringsOf("ZRange", z.op.ZRange(key, start, end, false))
}

func (z *SortedSetOps) ZRangeWithScores(key string, start, end int64) []ScoreTuple {
	if key == "" {
		return nil
	}

	return z.tuplesOf("ZRangeWithScores", z.op.ZRange(key, start, end, true))
}

func (z *SortedSetOps) ZRevRange(key string, start, end int64) []string {
	if key == "" {
		return nil
	}

	return z.stringsOf("ZRevRange", z.op.ZRevRange(key, start, end, false))
}

func (z *SortedSetOps) ZRevRangeWithScores(key string, start, end int64) []ScoreTuple {
	if key == "" {
		return nil
	}

	return z.tuplesOf("ZRevRangeWithScores", z.op.ZRevRange(key, start, end, true))
}

// ZRangeByScore returns members with min <= score <= max in ascending order.
// A non-nil limit pages the result.
func (z *SortedSetOps) ZRangeByScore(key string, min, max float64, limit *Limit) []string {
	if key == "" {
		return nil
	}

	return z.stringsOf("ZRangeByScore", z.op.ZRangeByScore(key, formatScore(min), formatScore(max), false, limit))
}

func (z *SortedSetOps) ZRangeByScoreWithScores(key string, min, max float64, limit *Limit) []ScoreTuple {
	if key == "" {
		return nil
	}

	return z.tuplesOf("ZRangeByScoreWithScores", z.op.ZRangeByScore(key, formatScore(min), formatScore(max), true, limit))
}

func (z *SortedSetOps) tuplesOf(method string, resp *RedisResponse) []ScoreTuple {
	if !z.check(method, resp) {
		return nil
	}

	return resp.GetScoreTuples()
}

// ZRem returns how many members were removed.
func (z *SortedSetOps) ZRem(key string, members ...string) int64 {
	if key == "" || len(members) == 0 || hasEmpty(members) {
		return 0
	}

	return z.int64Or("ZRem", z.op.ZRem(key, toArgs(members)...), 0)
}

func (z *SortedSetOps) ZCard(key string) int64 {
	if key == "" {
		return 0
	}

	return z.int64Or("ZCard", z.op.ZCard(key), 0)
}

// ZCount counts members with min <= score <= max.
func (z *SortedSetOps) ZCount(key string, min, max float64) int64 {
	if key == "" {
		return 0
	}

	return z.int64Or("ZCount", z.op.ZCount(key, formatScore(min), formatScore(max)), 0)
}

// ZRank returns the ascending rank, 0 when the member or key is missing.
// Use ZRankOf to tell rank 0 apart from absence.
func (z *SortedSetOps) ZRank(key, member string) int64 {
	rank, _ := z.ZRankOf(key, member)
	return rank
}

func (z *SortedSetOps) ZRankOf(key, member string) (int64, bool) {
	if key == "" || member == "" {
		return 0, false
	}

	resp := z.op.ZRank(key, member)
	if !z.check("ZRank", resp) {
		return 0, false
	}

	return resp.GetInt64(), true
}

func (z *SortedSetOps) ZRevRank(key, member string) int64 {
	rank, _ := z.ZRevRankOf(key, member)
	return rank
}

func (z *SortedSetOps) ZRevRankOf(key, member string) (int64, bool) {
	if key == "" || member == "" {
		return 0, false
	}

	resp := z.op.ZRevRank(key, member)
	if !z.check("ZRevRank", resp) {
		return 0, false
	}

	return resp.GetInt64(), true
}

func (z *SortedSetOps) ZScore(key, member string) (float64, bool) {
	if key == "" || member == "" {
		return 0, false
	}

	resp := z.op.ZScore(key, member)
	if !z.check("ZScore", resp) {
		return 0, false
	}

	return resp.GetFloat64(), true
}

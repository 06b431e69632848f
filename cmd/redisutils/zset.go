package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func zsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zset",
		Short: "Sorted set operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "zadd <key> <score> <member> [score member...]",
		Short: "Add members with scores",
		Args:  cobra.MinimumNArgs(3),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			pairs := args[1:]
			if len(pairs)%2 != 0 {
				return fmt.Errorf("scores and members must come in pairs")
			}

			members := make(map[string]float64, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				score, err := parseScore(pairs[i])
				if err != nil {
					return err
				}

				members[pairs[i+1]] = score
			}

			printInt(f.ZSets.ZAdd(args[0], members))
			return nil
		}),
	})

	cmd.AddCommand(zsetRangeCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "zrangebyscore <key> <min> <max>",
		Short: "Get members within a score range",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			lo, err := parseScore(args[1])
			if err != nil {
				return err
			}

			hi, err := parseScore(args[2])
			if err != nil {
				return err
			}

			printList(f.ZSets.ZRangeByScore(args[0], lo, hi, nil))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "zscore <key> <member>",
		Short: "Get the score of a member",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			score, ok := f.ZSets.ZScore(args[0], args[1])
			printValue(strconv.FormatFloat(score, 'f', -1, 64), ok)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "zrank <key> <member>",
		Short: "Get the ascending rank of a member",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			rank, ok := f.ZSets.ZRankOf(args[0], args[1])
			if !ok {
				fmt.Fprintln(out, "(nil)")
				return nil
			}

			printInt(rank)
			return nil
		}),
	})

	return cmd
}

func zsetRangeCmd() *cobra.Command {
	var withScores, reverse bool

	cmd := &cobra.Command{
		Use:   "zrange <key> <start> <stop>",
		Short: "Get members by rank",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			stop, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}

			if !withScores {
				if reverse {
					printList(f.ZSets.ZRevRange(args[0], start, stop))
				} else {
					printList(f.ZSets.ZRange(args[0], start, stop))
				}

				return nil
			}

			var tuples []redisutils.ScoreTuple
			if reverse {
				tuples = f.ZSets.ZRevRangeWithScores(args[0], start, stop)
			} else {
				tuples = f.ZSets.ZRangeWithScores(args[0], start, stop)
			}

			for i, tuple := range tuples {
				fmt.Fprintf(out, "%d) %q %s\n", i+1, tuple.Member, strconv.FormatFloat(tuple.Score, 'f', -1, 64))
			}

			return nil
		}),
	}

	cmd.Flags().BoolVar(&withScores, "withscores", false, "Print scores next to members")
	cmd.Flags().BoolVar(&reverse, "rev", false, "Order from the highest score down")

	return cmd
}

func parseScore(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "+inf", "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}

	return strconv.ParseFloat(s, 64)
}

package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "hset <key> <field> <value>",
		Short: "Set a hash field",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printBool(f.Hashes.HSet(args[0], args[1], args[2]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hget <key> <field>",
		Short: "Get a hash field",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printValue(f.Hashes.HGet(args[0], args[1]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hgetall <key>",
		Short: "Get every field and value of a hash",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			all := f.Hashes.HGetAll(args[0])
			if len(all) == 0 {
				fmt.Fprintln(out, "(empty hash)")
				return nil
			}

			fields := make([]string, 0, len(all))
			for field := range all {
				fields = append(fields, field)
			}

			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(out, "%s: %q\n", field, all[field])
			}

			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hincrby <key> <field> <delta>",
		Short: "Increment the integer value of a hash field",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			delta, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}

			n, err := f.Hashes.HIncrBy(args[0], args[1], delta)
			if err != nil {
				return err
			}

			printInt(n)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hdel <key> <field> [field...]",
		Short: "Delete hash fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Hashes.HDel(args[0], args[1:]...))
			return nil
		}),
	})

	return cmd
}

package main

import (
	"strconv"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "lpush <key> <value> [value...]",
		Short: "Prepend values to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Lists.LPushAll(args[0], args[1:]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rpush <key> <value> [value...]",
		Short: "Append values to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Lists.RPushAll(args[0], args[1:]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lpop <key>",
		Short: "Remove and get the first element",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printValue(f.Lists.LPop(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rpop <key>",
		Short: "Remove and get the last element",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printValue(f.Lists.RPop(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lrange <key> <start> <stop>",
		Short: "Get a range of elements",
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

			printList(f.Lists.LRange(args[0], start, stop))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lindex <key> <index>",
		Short: "Get an element by index",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			printValue(f.Lists.LIndex(args[0], index))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "llen <key>",
		Short: "Get the length of a list",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Lists.LLen(args[0]))
			return nil
		}),
	})

	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key operations",
		Long:  "Inspect and manage key lifetime, type and existence",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "expire <key> <seconds>",
		Short: "Set a key's time to live in seconds",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			seconds, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			r := f.Keys.TryExpire(args[0], seconds)
			if r.Err != nil && !r.Applied {
				fmt.Fprintf(out, "(integer) 0 (%v)\n", r.Err)
				return nil
			}

			printBool(r.Applied)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ttl <key>",
		Short: "Get the time to live of a key in seconds",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Keys.TTL(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "persist <key>",
		Short: "Remove the expiration from a key",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printBool(f.Keys.Persist(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "exists <key>",
		Short: "Check if a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printBool(f.Keys.Exists(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "type <key>",
		Short: "Get the data type stored at key",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			fmt.Fprintln(out, f.Keys.Type(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "keys <pattern>",
		Short: "List keys matching a glob pattern",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printList(f.Keys.AllKeys(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move <key> <db>",
		Short: "Move a key to another database",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			db, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			printBool(f.Keys.Move(args[0], db))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <key> <newkey>",
		Short: "Rename a key",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printOK(f.Keys.Rename(args[0], args[1]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "del <key> [key...]",
		Short: "Delete one or more keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Keys.DeleteMany(args...))
			return nil
		}),
	})

	return cmd
}

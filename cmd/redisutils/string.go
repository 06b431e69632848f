package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func stringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string",
		Short: "String operations",
	}

	cmd.AddCommand(stringSetCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printValue(f.Strings.Get(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mget <key> [key...]",
		Short: "Get the values of several keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			for i, v := range f.Strings.MGet(args...) {
				if !v.Valid {
					fmt.Fprintf(out, "%d) (nil)\n", i+1)
					continue
				}

				fmt.Fprintf(out, "%d) %q\n", i+1, v.String)
			}

			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "append <key> <value>",
		Short: "Append a value to a key",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Strings.Append(args[0], args[1]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "strlen <key>",
		Short: "Get the length of a value",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Strings.StrLen(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "incrby <key> <delta>",
		Short: "Increment the integer value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			delta, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			n, err := f.Strings.IncrBy(args[0], delta)
			if err != nil {
				return err
			}

			printInt(n)
			return nil
		}),
	})

	return cmd
}

func stringSetCmd() *cobra.Command {
	var ttl int64
	var mode string
	var nx, xx bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			if nx && xx {
				return fmt.Errorf("--nx and --xx are mutually exclusive")
			}

			key, value := args[0], args[1]
			expiry := redisutils.ExpiryMode(mode)
			if ttl <= 0 {
				expiry = ""
			}

			switch {
			case nx:
				printOK(f.Strings.SetWithExpiryIf(key, value, expiry, ttl, redisutils.KeyMustBeAbsent))
			case xx:
				printOK(f.Strings.SetWithExpiryIf(key, value, expiry, ttl, redisutils.KeyMustBePresent))
			case expiry != "":
				printOK(f.Strings.SetWithExpiry(key, value, expiry, ttl))
			default:
				printOK(f.Strings.Set(key, value))
			}

			return nil
		}),
	}

	cmd.Flags().Int64Var(&ttl, "ttl", 0, "Time to live, in units of --mode")
	cmd.Flags().StringVar(&mode, "mode", string(redisutils.ExpiryModeSeconds), "Expiry unit: ex (seconds) or px (milliseconds)")
	cmd.Flags().BoolVar(&nx, "nx", false, "Only set if the key does not exist")
	cmd.Flags().BoolVar(&xx, "xx", false, "Only set if the key exists")

	return cmd
}

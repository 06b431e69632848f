package main

import (
	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sadd <key> <member> [member...]",
		Short: "Add members to a set",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printInt(f.Sets.SAdd(args[0], args[1:]...))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "smembers <key>",
		Short: "Get every member of a set",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printList(f.Sets.SMembers(args[0]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sismember <key> <member>",
		Short: "Check set membership",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printBool(f.Sets.SIsMember(args[0], args[1]))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sinter <key> [key...]",
		Short: "Intersect sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printList(f.Sets.SInterMany(args...))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sunion <key> [key...]",
		Short: "Union sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printList(f.Sets.SUnionMany(args...))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sdiff <key> [key...]",
		Short: "Subtract sets from the first one",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(f *redisutils.Facade, args []string) error {
			printList(f.Sets.SDiffMany(args...))
			return nil
		}),
	})

	return cmd
}

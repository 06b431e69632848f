package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	redisutils "github.com/yetiz-org/goth-redisutils"
)

var (
	profileName      string
	profilePath      string
	legacyExistence  bool
	legacySetAlgebra bool

	// out is where results go; commands point it at their own writer.
	out io.Writer = os.Stdout
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "redisutils",
		Short: "redisutils - null-safe Redis command line",
		Long:  `redisutils runs single Redis commands through the redisutils facade, using a named connection profile`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "Connection profile name")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile-path", redisutils.ProfilePath, "Directory holding redis/<profile> files")
	rootCmd.PersistentFlags().BoolVar(&legacyExistence, "legacy-existence", false, "Treat any non-nil boolean reply as true")
	rootCmd.PersistentFlags().BoolVar(&legacySetAlgebra, "legacy-set-algebra", false, "Discard multi-key SINTER/SUNION results")

	// Add subcommands
	rootCmd.AddCommand(keyCmd())
	rootCmd.AddCommand(stringCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(hashCmd())
	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(zsetCmd())

	return rootCmd
}

func openFacade() (*redisutils.Facade, error) {
	redisutils.ProfilePath = profilePath
	op := redisutils.NewRedis(profileName)
	if op == nil {
		return nil, fmt.Errorf("can't load profile %q from %s", profileName, profilePath)
	}

	return redisutils.NewFacade(op, redisutils.Options{
		LegacyExistence:  legacyExistence,
		LegacySetAlgebra: legacySetAlgebra,
	}), nil
}

// run opens a facade for the duration of one command.
func run(fn func(f *redisutils.Facade, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		out = cmd.OutOrStdout()
		f, err := openFacade()
		if err != nil {
			return err
		}
		defer f.Close()

		return fn(f, args)
	}
}

func printValue(v string, ok bool) {
	if !ok {
		fmt.Fprintln(out, "(nil)")
		return
	}

	fmt.Fprintf(out, "%q\n", v)
}

func printList(values []string) {
	if len(values) == 0 {
		fmt.Fprintln(out, "(empty list or set)")
		return
	}

	for i, v := range values {
		fmt.Fprintf(out, "%d) %q\n", i+1, v)
	}
}

func printInt(n int64) {
	fmt.Fprintf(out, "(integer) %d\n", n)
}

func printBool(b bool) {
	if b {
		printInt(1)
		return
	}

	printInt(0)
}

func printOK(b bool) {
	if b {
		fmt.Fprintln(out, "OK")
		return
	}

	fmt.Fprintln(out, "(nil)")
}

// Copyright (c) 2026 PASS // FAIL Team
// PASS // FAIL - password hash verification tool
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for passfail using the
// Cobra library. It defines the root command, the verify, wordlists,
// algorithms and version subcommands, and the configuration plumbing
// shared by all of them.

package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmark5466-dev/pass-fail/buildvars"
	"github.com/mmark5466-dev/pass-fail/internal/config"
	"github.com/mmark5466-dev/pass-fail/internal/hashalg"
	"github.com/mmark5466-dev/pass-fail/internal/i18n"
	"github.com/mmark5466-dev/pass-fail/internal/logging"
	"github.com/mmark5466-dev/pass-fail/internal/report"
	"github.com/mmark5466-dev/pass-fail/internal/verifier"
	"github.com/mmark5466-dev/pass-fail/internal/wordlist"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config

	// verify flags
	selectedLists []string
	allLists      bool
	quiet         bool
)

// configDefaults are used when neither config file, environment nor
// flags provide a value.
var configDefaults = map[string]any{
	"wordlists.dir":         "./wordlists",
	"language":              "en",
	"verify.progress_every": 1000,
}

// Execute runs the root command. It is the entry point called by main.
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the layered configuration and initializes i18n and
// logging. It runs before every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var explicit *string
	if cfgFile != "" {
		explicit = &cfgFile
	}

	var err error
	appConfig, err = config.LoadConfig[config.Config](cmd, configDefaults, explicit)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error loading config: %w", err)
		}
		// First run, or the config file was deleted. Persist the
		// defaults so subsequent runs have a file to inspect.
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose)
	return nil
}

// newRootCmd creates and configures a new root cobra command. This
// function is used for the real application as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passfail",
		Short: "PASS // FAIL checks password hashes against common wordlists.",
		Long: `PASS // FAIL is a dictionary-attack engine for assessing password
strength. Given one or more hex digests it infers the candidate
algorithms from the digest length, hashes every word of the selected
wordlists and reports which digests belong to known words.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default passfail.yaml in config dir or cwd)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().String("language", "", "interface language (en, de)")
	cmd.PersistentFlags().String("wordlists.dir", "", "directory containing wordlist files")

	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newWordlistsCmd())
	cmd.AddCommand(newAlgorithmsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// appendOnly filters a status sink down to appended lines, dropping the
// replaceable progress lines for quiet operation.
type appendOnly struct {
	inner report.StatusSink
}

func (a appendOnly) Append(segs ...report.Segment)      { a.inner.Append(segs...) }
func (a appendOnly) ReplaceLast(segs ...report.Segment) {}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <digest|digests.txt>",
		Short: "Check digests against the selected wordlists",
		Long: `Verify takes a single hex digest or a path to a .txt file with one
digest per line, and checks it against the selected wordlists. Press
Ctrl-C to stop a running verification; matches found so far are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
	cmd.Flags().StringArrayVarP(&selectedLists, "wordlist", "w", nil, "wordlist to check (repeatable)")
	cmd.Flags().BoolVar(&allLists, "all", false, "check every wordlist in the store")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress status lines")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	store := wordlist.NewStore(appConfig.Wordlists.Dir)

	lists := selectedLists
	if allLists {
		infos, err := store.List()
		if err != nil {
			return err
		}
		lists = nil
		for _, info := range infos {
			lists = append(lists, info.Name)
		}
	}
	if len(lists) == 0 {
		return errors.New(i18n.T("cli.no_wordlists_selected"))
	}

	var status report.StatusSink = report.NewConsole(os.Stdout)
	if quiet {
		status = appendOnly{inner: status}
	}
	async := report.NewAsync(status, nil, 256)

	table := verifier.DefaultTable()
	if len(appConfig.Lengths) > 0 {
		table = table.Extend(appConfig.Lengths)
	}

	eng := verifier.New(store)
	eng.Table = table
	eng.Status = async
	eng.Progress = async
	eng.ProgressEvery = appConfig.Verify.ProgressEvery

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// The engine runs on a worker goroutine; this goroutine stays free
	// to service the signal context and let the async sink drain.
	outCh := make(chan error, 1)
	go func() {
		out, err := eng.Verify(ctx, args[0], lists)
		if err == nil {
			logging.Debugf("verification finished: success=%v stopped_early=%v matches=%d",
				out.Success, out.StoppedEarly, len(out.Matches))
		}
		outCh <- err
	}()

	err := <-outCh
	// The deferred stop has not run yet, so ctx.Err() is non-nil only
	// when the run was actually interrupted.
	if ctx.Err() != nil {
		logging.Infof("%s", i18n.T("cli.interrupt"))
	}
	async.Close()

	if errors.Is(err, verifier.ErrInputNotFound) {
		return errors.New(i18n.T("cli.error_input_not_found", args[0]))
	}
	return err
}

func newWordlistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordlists",
		Short: "List the wordlists available in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wordlist.NewStore(appConfig.Wordlists.Dir)
			infos, err := store.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println(i18n.T("cli.no_wordlists_found", appConfig.Wordlists.Dir))
				return nil
			}
			fmt.Println(i18n.T("cli.wordlists_header", appConfig.Wordlists.Dir))
			for _, info := range infos {
				fmt.Printf("  %s\n", info)
			}
			return nil
		},
	}
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms and digest length coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(i18n.T("cli.algorithms_header"))
			for _, name := range hashalg.Default().Names() {
				fmt.Printf("  %s\n", name)
			}

			table := verifier.DefaultTable()
			if len(appConfig.Lengths) > 0 {
				table = table.Extend(appConfig.Lengths)
			}
			fmt.Println(i18n.T("cli.lengths_header"))
			for _, length := range table.Lengths() {
				fmt.Printf("  %3d: %v\n", length, table[length])
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passfail version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("passfail %s\n", buildvars.VersionOrDefault("dev"))
		},
	}
}


package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/pkg/config"
	"github.com/goliatone/go-wordnet-cache/pkg/di"
	"github.com/goliatone/go-wordnet-cache/wordnet"
)

type lookupFunc func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error)

// app holds the persistent flags shared by every subcommand.
type app struct {
	cfgFile   string
	dbPath    string
	showStats bool
}

type statsEnvelope struct {
	Result any                    `json:"result"`
	Stats  map[string]cache.Stats `json:"stats"`
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wnlookup",
		Short: "Cached lookups over a WordNet SQLite database",
		Long: `wnlookup opens a WordNet database through the shared statement store,
runs one lookup family through the record caches and prints the records as JSON.

Settings come from defaults, an optional config file and WORDNET_ environment
variables (WORDNET_DATABASE_PATH, WORDNET_CACHE_MAX_ENTRIES, ...).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "database path, overrides database.path")
	rootCmd.PersistentFlags().BoolVar(&a.showStats, "stats", false, "include cache statistics in the output")

	rootCmd.AddCommand(
		a.wordsCmd(),
		a.sensesCmd(),
		a.synsetCmd(),
		a.definitionCmd(),
		a.linksCmd(),
	)
	return rootCmd
}

// run opens the container, runs fn and prints its result.
func (a *app) run(fn lookupFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		if a.dbPath != "" {
			cfg.Database.Path = a.dbPath
		}

		logger, err := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		container, err := di.NewContainer(ctx, cfg, di.WithLogger(logger))
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := fn(ctx, container.Repositories(), args)
		if err != nil {
			return err
		}

		if a.showStats {
			result = statsEnvelope{Result: result, Stats: container.Stats()}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}

func (a *app) wordsCmd() *cobra.Command {
	var pos string
	var id int64

	cmd := &cobra.Command{
		Use:   "words [lemma...]",
		Short: "Find words by lemma, lemma and part of speech, or id",
		RunE: a.run(func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error) {
			if id != 0 {
				return repos.Words.FindByID(ctx, id)
			}
			if len(args) == 0 {
				return nil, fmt.Errorf("words: a lemma or --id is required")
			}

			out := make(map[string][]wordnet.Word, len(args))
			for _, lemma := range args {
				var words []wordnet.Word
				var err error
				if pos != "" {
					p, perr := wordnet.ParsePOS(pos)
					if perr != nil {
						return nil, perr
					}
					words, err = repos.Words.FindByLemmaAndPOS(ctx, lemma, p)
				} else {
					words, err = repos.Words.FindByLemma(ctx, lemma)
				}
				if err != nil {
					return nil, err
				}
				out[lemma] = words
			}
			return out, nil
		}),
	}

	cmd.Flags().StringVar(&pos, "pos", "", "part of speech (n, v, a, r)")
	cmd.Flags().Int64Var(&id, "id", 0, "word id")
	return cmd
}

func (a *app) sensesCmd() *cobra.Command {
	var lang string
	var wordID int64

	cmd := &cobra.Command{
		Use:   "senses [synset]",
		Short: "Find senses of a synset or of a word",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error) {
			if wordID != 0 {
				return repos.Senses.FindByWordID(ctx, wordID)
			}
			if len(args) == 0 {
				return nil, fmt.Errorf("senses: a synset id or --word-id is required")
			}
			if lang != "" {
				l, err := wordnet.ParseLang(lang)
				if err != nil {
					return nil, err
				}
				return repos.Senses.FindBySynsetAndLang(ctx, args[0], l)
			}
			return repos.Senses.FindBySynset(ctx, args[0])
		}),
	}

	cmd.Flags().StringVar(&lang, "lang", "", "restrict to a language (eng, jpn)")
	cmd.Flags().Int64Var(&wordID, "word-id", 0, "list the senses of this word instead")
	return cmd
}

func (a *app) synsetCmd() *cobra.Command {
	var name, pos string

	cmd := &cobra.Command{
		Use:   "synset [id]",
		Short: "Find a synset by id, or synsets by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error) {
			if name == "" {
				if len(args) == 0 {
					return nil, fmt.Errorf("synset: an id or --name is required")
				}
				return repos.Synsets.FindByID(ctx, args[0])
			}
			if pos != "" {
				p, err := wordnet.ParsePOS(pos)
				if err != nil {
					return nil, err
				}
				return repos.Synsets.FindByNameAndPOS(ctx, name, p)
			}
			return repos.Synsets.FindByName(ctx, name)
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "synset name")
	cmd.Flags().StringVar(&pos, "pos", "", "part of speech used with --name")
	return cmd
}

func (a *app) definitionCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "definition <synset>",
		Short: "Show the definition of a synset",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error) {
			l, err := wordnet.ParseLang(lang)
			if err != nil {
				return nil, err
			}
			return repos.Definitions.FindBySynsetAndLang(ctx, args[0], l)
		}),
	}

	cmd.Flags().StringVar(&lang, "lang", string(wordnet.LangEnglish), "definition language (eng, jpn)")
	return cmd
}

func (a *app) linksCmd() *cobra.Command {
	var relation string

	cmd := &cobra.Command{
		Use:   "links <synset>",
		Short: "List the links of a synset",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, repos *wordnet.Repositories, args []string) (any, error) {
			if relation == "" {
				return repos.Links.FindBySynset(ctx, args[0])
			}
			link, err := wordnet.ParseLink(relation)
			if err != nil {
				return nil, err
			}
			return repos.Links.FindBySynsetAndRelation(ctx, args[0], link)
		}),
	}

	cmd.Flags().StringVar(&relation, "relation", "", "link type, e.g. hype or hypo")
	return cmd
}

// Command id3dump prints, edits and strips ID3 tags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/simonhull/id3tag"
)

var exampleUsage = strings.TrimSpace(`
  id3dump song.mp3
  id3dump --scope v2 --toml *.mp3
  id3dump set -f title="New Title" -f track=3/12 song.mp3
  id3dump strip --scope v1 song.mp3
  id3dump --config $HOME/.id3dump/config.toml genres
`)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		log := newLogger(false)
		log.Error().Err(err).Msg("id3dump failed")
		os.Exit(1)
	}
}

// app carries the resolved configuration to every subcommand.
type app struct {
	cfg     Config
	cfgPath string
	log     zerolog.Logger
	out     io.Writer
}

func (a *app) openOptions() []id3tag.Option {
	return []id3tag.Option{
		id3tag.WithLogger(a.log),
		id3tag.WithPadding(a.cfg.Padding),
	}
}

func (a *app) commitOptions() []id3tag.CommitOption {
	opts := []id3tag.CommitOption{id3tag.WithPreserveModTime()}
	if a.cfg.Backup != "" {
		opts = append(opts, id3tag.WithBackup(a.cfg.Backup))
	}
	return opts
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), out: out, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "id3dump [files...]",
		Short:         "Print the ID3 frames of audio files",
		Example:       exampleUsage,
		Version:       id3tag.GetBuildInfo().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := a.cfgPath
			if cfgFile == "" {
				cfgFile = DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && FileExists(cfgFile) {
				fc, err := LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				ApplyFileConfig(&a.cfg, fc, changed)
			}
			if err := ApplyEnvConfig(&a.cfg, changed); err != nil {
				return err
			}

			if _, err := a.cfg.ParsedScope(); err != nil {
				return err
			}

			a.log = newLogger(a.cfg.Verbose)
			a.log.Debug().Interface("config", a.cfg).Msg("configuration")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.dump(cmd.Context(), args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to TOML config (default $HOME/.id3dump/config.toml)")
	pf.StringVar(&a.cfg.Scope, "scope", a.cfg.Scope, "tag versions to use: v1, v2, both or all")
	pf.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "log skipped frames and commit details")
	pf.BoolVar(&a.cfg.Padding, "padding", a.cfg.Padding, "reserve free space after ID3v2 frames when writing")
	pf.StringVar(&a.cfg.Backup, "backup", a.cfg.Backup, "suffix for a backup copy made before writing (e.g. .bak)")
	root.Flags().BoolVar(&a.cfg.TOML, "toml", a.cfg.TOML, "print frames as TOML")

	root.AddCommand(a.setCommand(), a.stripCommand(), a.genresCommand(), a.framesCommand())
	return root
}

func (a *app) dump(ctx context.Context, paths []string) error {
	scope, _ := a.cfg.ParsedScope()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tags, err := id3tag.OpenManyWith(ctx, scope, paths, a.openOptions())
	if err != nil {
		return err
	}

	for _, t := range tags {
		for _, w := range t.Warnings {
			a.log.Warn().Str("path", t.Path()).Msg(w.String())
		}
	}

	if a.cfg.TOML {
		return writeTOML(a.out, tags)
	}

	for i, t := range tags {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintf(a.out, "%s: %s\n", t.Path(), foundVersions(t))
		for f := range t.All() {
			fmt.Fprintf(a.out, "  %s\n", f)
		}
	}
	return nil
}

// foundVersions reports which tag versions the file carries.
func foundVersions(t *id3tag.Tag) id3tag.Scope {
	found := id3tag.VNone
	for _, v := range []id3tag.Scope{id3tag.V1, id3tag.V2} {
		if t.HasTagType(v) {
			found |= v
		}
	}
	return found
}

func (a *app) setCommand() *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:   "set -f name=value [-f name=value...] files...",
		Short: "Set frames by accessor name or frame id and commit",
		Long: strings.TrimSpace(`
Set frames by accessor name (title, artist, track, ...) or 4-letter frame id.
An empty value removes the frame. Track and disc accept "N" or "N/M".`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(assignments) == 0 {
				return fmt.Errorf("nothing to set: use -f name=value")
			}
			scope, _ := a.cfg.ParsedScope()

			for _, path := range args {
				t, err := id3tag.Open(path, scope, a.openOptions()...)
				if err != nil {
					return err
				}
				for _, kv := range assignments {
					if err := applyAssignment(t, kv); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				}
				written, err := t.Commit(a.commitOptions()...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: wrote %s\n", path, written)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&assignments, "field", "f", nil, "name=value to set (repeatable)")
	return cmd
}

// applyAssignment applies one name=value pair to t.
func applyAssignment(t *id3tag.Tag, kv string) error {
	name, value, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return fmt.Errorf("invalid assignment %q: want name=value", kv)
	}

	if value == "" {
		t.RemoveFrame(name)
		return nil
	}

	switch strings.ToLower(name) {
	case "comment":
		return t.SetComment(value)
	}

	if _, ok := id3tag.LookupFrame(name); ok {
		return t.SetText(name, value)
	}
	return t.SetValue(name, value)
}

func (a *app) stripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip files...",
		Short: "Remove tags of the selected versions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, _ := a.cfg.ParsedScope()
			for _, path := range args {
				removed, err := id3tag.Strip(path, scope, a.openOptions()...)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s: removed %s\n", path, removed)
			}
			return nil
		},
	}
}

func (a *app) genresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the ID3v1 genre table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range id3tag.Genres() {
				fmt.Fprintf(a.out, "%3d %s\n", i, name)
			}
			return nil
		},
	}
}

func (a *app) framesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "List the registered frame kinds and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for def := range id3tag.FrameDefs() {
				fmt.Fprintf(a.out, "%s  %-40s %s\n", def.ID, def.Description, strings.Join(def.FieldIDs(), ","))
			}
			fmt.Fprintf(a.out, "\naccessors: %s\n", strings.Join(id3tag.AccessorNames(), ", "))
			return nil
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	loader "github.com/0xalexb/hjarta-loader"
)

var errNoRoot = errors.New("no root: pass --root or set loader.root in --config")

type getFlags struct {
	root  string
	text  bool
	stat  bool
	limit int
}

type fetched struct {
	target string
	data   []byte
	text   string
}

func newGetCommand(global *globalFlags) *cobra.Command {
	flags := &getFlags{}

	cmd := &cobra.Command{
		Use:   "get <path>...",
		Short: "Fetch assets relative to a root",
		Long: `Get fetches each path relative to the root and writes the payloads to
stdout in argument order. Paths are fetched concurrently.

Examples:
  tilefetch get --root https://example.test/tiles/ tileset.json
  tilefetch get --root ./tiles --stat 0/0.b3dm 0/1.b3dm
  tilefetch get -c settings.yaml manifest.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, global, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.root, "root", "r", "", "Root location the paths are relative to")
	cmd.Flags().BoolVar(&flags.text, "text", false, "Decode payloads as text")
	cmd.Flags().BoolVar(&flags.stat, "stat", false, "Print each target and its size instead of the payload")
	cmd.Flags().IntVar(&flags.limit, "concurrency", 4, "Maximum fetches in flight")

	return cmd
}

func runGet(cmd *cobra.Command, global *globalFlags, flags *getFlags, paths []string) error {
	settings, err := global.settings(cmd, flags.root)
	if err != nil {
		return err
	}

	if settings.Root == "" {
		return errNoRoot
	}

	factory, err := settings.NewFactory()
	if err != nil {
		return err //nolint:wrapcheck // transport errors are already descriptive
	}

	results := make([]fetched, len(paths))

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(max(flags.limit, 1))

	for i, path := range paths {
		group.Go(func() error {
			ldr := factory(settings.Root)
			results[i].target = loader.Join(ldr.Root(), path)

			var (
				task *loader.Task
				err  error
			)

			if flags.text {
				task, err = ldr.FetchText(ctx, ldr.Root(), path, func(text string, _ error) {
					results[i].text = text
					results[i].data = []byte(text)
				})
			} else {
				task, err = ldr.FetchBytes(ctx, ldr.Root(), path, func(data []byte, _ error) {
					results[i].data = data
				})
			}

			if err != nil {
				return err //nolint:wrapcheck // loader errors are already descriptive
			}

			return task.Wait(ctx) //nolint:wrapcheck // loader errors are already descriptive
		})
	}

	err = group.Wait()
	if err != nil {
		return err //nolint:wrapcheck // loader errors are already descriptive
	}

	return writeResults(cmd.OutOrStdout(), results, flags)
}

func writeResults(out io.Writer, results []fetched, flags *getFlags) error {
	for _, res := range results {
		var err error

		switch {
		case flags.stat:
			_, err = fmt.Fprintf(out, "%s\t%s\n", res.target, humanize.Bytes(uint64(len(res.data))))
		case flags.text:
			_, err = io.WriteString(out, res.text)
		default:
			_, err = out.Write(res.data)
		}

		if err != nil {
			return fmt.Errorf("writing %s: %w", res.target, err)
		}
	}

	return nil
}

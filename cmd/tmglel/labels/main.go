package labels

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tmglel/pkg/catalog"
	"github.com/walteh/tmglel/pkg/config"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs         afero.Fs
	out        io.Writer
	configPath string
	lang       string
}

func NewLabelsCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "labels [host-language]",
		Short: "list the label table, or the labels a host language is configured for",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().StringVar(&me.configPath, "config", config.DefaultPath, "the label support set (.toml, .yaml or .hcl)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			me.lang = args[0]
		}
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	labels := catalog.Labels()

	if me.lang != "" {
		if _, ok := catalog.LanguageByID(me.lang); !ok {
			return errors.Errorf("unknown host language %q", me.lang)
		}

		support, err := config.Load(ctx, me.fs, me.configPath)
		if err != nil {
			return err
		}

		supported := labels[:0]
		for _, label := range labels {
			if support.Supports(me.lang, label.ID) {
				supported = append(supported, label)
			}
		}
		labels = supported
	}

	w := tabwriter.NewWriter(me.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCOPE\tLIST")
	for _, label := range labels {
		fmt.Fprintf(w, "%s\t%s\t%s\n", label.ID, label.Scope, label.List)
	}
	return w.Flush()
}

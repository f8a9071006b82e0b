package generate

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/tmglel/pkg/config"
	grammargen "github.com/walteh/tmglel/pkg/generate"
)

type Handler struct {
	fs         afero.Fs
	configPath string
	opts       grammargen.Options
}

func NewGenerateCommand() *cobra.Command {
	return newCommand(&Handler{fs: afero.NewOsFs()})
}

func newCommand(me *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "write a grammar per host language and the extension manifest",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringVar(&me.configPath, "config", config.DefaultPath, "the label support set (.toml, .yaml or .hcl)")
	cmd.Flags().StringVar(&me.opts.OutDir, "out", ".", "the directory syntaxes/ and package.json are written to")
	cmd.Flags().BoolVar(&me.opts.SaveTOML, "toml", false, "also write the intermediate TOML documents")
	cmd.Flags().StringSliceVar(&me.opts.Only, "only", nil, "glob patterns of host language ids to generate")
	cmd.Flags().BoolVar(&me.opts.Strict, "strict", false, "fail on unknown host language or label ids")
	cmd.Flags().BoolVar(&me.opts.EditorConfig, "editorconfig", false, "format JSON output per .editorconfig")
	cmd.Flags().BoolVar(&me.opts.Check, "check", false, "fail if the files on disk are not up to date instead of writing")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	support, err := config.Load(ctx, me.fs, me.configPath)
	if err != nil {
		return err
	}

	_, err = grammargen.New(me.fs, me.opts).Run(ctx, support)
	return err
}

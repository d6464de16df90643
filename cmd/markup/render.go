package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/tree"
)

func renderCmd(a *app) *cobra.Command {
	var (
		out      string
		doctype  bool
		fragment bool
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a tree document to HTML",
		Long: `Render a YAML or JSON tree document to HTML.

Use "-" to read the document from stdin. Output goes to stdout unless
--out is given.

Examples:
  markup render page.yaml
  markup render page.yaml --out page.html
  markup render --fragment --max-depth=32 - < card.yaml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fragment && cmd.Flags().Changed("doctype") && doctype {
				return argsError("--doctype and --fragment cannot be combined")
			}

			root, err := readTree(cmd, args[0])
			if err != nil {
				return err
			}

			withDoctype := a.cfg.Render.Doctype
			if cmd.Flags().Changed("doctype") {
				withDoctype = doctype
			}
			if fragment {
				withDoctype = false
			}
			prefix := ""
			if withDoctype {
				prefix = render.Doctype
			}

			var buf bytes.Buffer
			stats, err := a.renderer(maxDepth).Render(cmd.Context(), &buf, root, prefix)
			if err != nil {
				return err
			}

			if out == "" {
				buf.WriteByte('\n')
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return errors.New("M013").WithDetail("Could not write " + out).Wrap(err)
			}
			success(cmd.ErrOrStderr(), "Rendered %d elements (%d bytes) to %s", stats.Elements, stats.Bytes, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&doctype, "doctype", true, "Prefix the output with <!DOCTYPE html> (default from markup.json)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Render without a doctype")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "Maximum tree depth, 0 for unlimited (default from markup.json)")

	return cmd
}

// readTree decodes the tree document at path, or stdin for "-".
func readTree(cmd *cobra.Command, path string) (*element.Element, error) {
	if path == "-" {
		return tree.Decode(cmd.InOrStdin())
	}
	return tree.DecodeFile(path)
}

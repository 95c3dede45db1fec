package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"whatif-server/internal"
)

func newGenerateCmd(a *app, kind internal.Kind) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     string(kind) + " <prompt>",
		Short:   fmt.Sprintf("Generate a %s from a what-if prompt", kind),
		Example: fmt.Sprintf("  whatif %s \"What if Harry Potter was sorted into Slytherin?\"", kind),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				return fmt.Errorf("%w: prompt is required", internal.ErrInvalidInput)
			}

			result := a.generator.Generate(cmd.Context(), prompt, kind)

			out := cmd.OutOrStdout()
			if kind == internal.KindComic && page > 0 {
				cursor := internal.NewPageCursor(result.Text)
				cursor.Seek(page)
				fmt.Fprintf(out, "Page %d of %d\n%s\n", cursor.Current(), cursor.Total(), strings.TrimSpace(cursor.Page()))
				return nil
			}

			fmt.Fprintln(out, result.Text)
			return nil
		},
	}

	if kind == internal.KindComic {
		cmd.Flags().IntVar(&page, "page", 0, "Only print this page of the comic")
	}
	return cmd
}

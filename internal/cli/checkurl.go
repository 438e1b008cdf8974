package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"amply/internal/intake/models"
)

// NewCheckURLCmd creates the "check-url" subcommand, the CLI form of the
// immediate URL indicator.
func NewCheckURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-url <url>",
		Short: "Validate a URL the way the form's URL field does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			r := eng.EvaluateField(commandContext(cmd), string(models.FieldURL), args[0])
			fb := models.FeedbackFor(r)
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]\n", fb.Message, fb.Class)
			if !r.Valid {
				return exitError(exitInvalid, "invalid url (%s)", r.Kind)
			}
			return nil
		},
	}
}

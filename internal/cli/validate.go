package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"amply/internal/intake/models"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a draft record stored as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	format, _ := cmd.Flags().GetString("format")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return exitError(exitFileNotFound, "file not found: %s", filePath)
		}
		return fmt.Errorf("reading file: %w", err)
	}
	draft, err := parseDraft(data, filePath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filePath, err)
	}

	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	ev := eng.Evaluate(commandContext(cmd), draft)

	if err := printEvaluation(cmd.OutOrStdout(), ev, format); err != nil {
		return err
	}
	if !ev.AllValid {
		return exitError(exitInvalid, "%d invalid field(s)", len(ev.Invalid()))
	}
	return nil
}

// parseDraft decodes a JSON object, or YAML when the file extension says so.
func parseDraft(data []byte, path string) (models.Draft, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLDraft(data)
	default:
		var draft models.Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			return nil, err
		}
		if draft == nil {
			return nil, errors.New("draft must be an object")
		}
		return draft, nil
	}
}

// parseYAMLDraft keeps scalars as the user wrote them. Dates and other
// timestamps stay strings; numbers become float64 as they would in JSON.
func parseYAMLDraft(data []byte) (models.Draft, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	if nodes == nil {
		return nil, errors.New("draft must be a mapping")
	}
	draft := make(models.Draft, len(nodes))
	for key, node := range nodes {
		v, err := scalarValue(&node)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		draft[key] = v
	}
	return draft, nil
}

func scalarValue(node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		var v any
		err := node.Decode(&v)
		return v, err
	}
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int", "!!float":
		var f float64
		err := node.Decode(&f)
		return f, err
	default:
		return node.Value, nil
	}
}

type validateOutput struct {
	Valid   bool                      `json:"valid"`
	Results []models.ValidationResult `json:"results"`
}

func printEvaluation(w io.Writer, ev models.Evaluation, format string) error {
	results := make([]models.ValidationResult, 0, len(ev.Results))
	for _, f := range models.RequiredFields() {
		results = append(results, ev.Results[f])
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(validateOutput{Valid: ev.AllValid, Results: results})
	}

	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "ok       %-9s %s\n", r.Field, r.Message)
			continue
		}
		fmt.Fprintf(w, "invalid  %-9s %s (%s)\n", r.Field, r.Message, r.Kind)
	}
	if ev.AllValid {
		fmt.Fprintln(w, "record is valid")
	} else {
		fmt.Fprintf(w, "record is invalid: %d field(s) rejected\n", len(ev.Invalid()))
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fncomp/internal/abi"
	"fncomp/internal/project"
)

var contractCmd = &cobra.Command{
	Use:   "contract [dir]",
	Short: "Print the runtime contract used for code generation",
	Long: `Contract prints the provider trait, wrapper and output type that expanded
code refers to. They come from the [runtime] section of the nearest
fncomp.toml, or the built-in yew_functional defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContract,
}

func init() {
	contractCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type contractPayload struct {
	abi.Contract
	Fingerprint string `json:"fingerprint"`
	Manifest    string `json:"manifest,omitempty"`
}

func runContract(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	manifest, _, err := project.Load(dir)
	if err != nil {
		return err
	}
	payload := contractPayload{
		Contract:    manifest.Config.Contract(),
		Fingerprint: manifest.Config.Contract().Fingerprint(),
		Manifest:    manifest.Path,
	}

	switch format {
	case "pretty":
		renderContractPretty(cmd.OutOrStdout(), payload)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func renderContractPretty(out io.Writer, p contractPayload) {
	source := p.Manifest
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(out, "source:      %s\n", source)
	fmt.Fprintf(out, "version:     %d\n", p.Version)
	fmt.Fprintf(out, "provider:    %s\n", p.ProviderTrait)
	fmt.Fprintf(out, "props:       %s\n", p.PropsAssoc)
	fmt.Fprintf(out, "operation:   %s/%d\n", p.Operation, p.OperationArity)
	fmt.Fprintf(out, "wrapper:     %s/%d\n", p.Wrapper, p.WrapperArity)
	fmt.Fprintf(out, "output:      %s\n", p.OutputType)
	fmt.Fprintf(out, "fingerprint: %s\n", p.Fingerprint)
}

package generate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"voice2site/internal/api/v1/dto"
	"voice2site/internal/app"
	"voice2site/internal/app/pipeline"
	"voice2site/internal/config"
)

var (
	text      string
	audioPath string
	outPath   string
	asJSON    bool
)

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "description of the business")
	Cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "WAV recording describing the business")
	Cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "print the JSON envelope instead of the HTML document")

	Cmd.MarkFlagsOneRequired("text", "audio")
	Cmd.MarkFlagsMutuallyExclusive("text", "audio")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one website from a description or a WAV recording",
	Example: `  v2s generate --text "Sunrise Clinic, a modern hospital offering cardiology" --out site.html
  v2s generate --audio pitch.wav --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		in := pipeline.Input{Text: text}
		if audioPath != "" {
			data, err := os.ReadFile(audioPath)
			if err != nil {
				return fmt.Errorf("failed to read audio: %w", err)
			}
			in = pipeline.Input{Audio: data, Filename: filepath.Base(audioPath)}
		}

		p, err := app.InitializePipeline(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize pipeline: %w", err)
		}

		result, err := p.GenerateSite(cmd.Context(), in)
		if err != nil {
			return err
		}

		if outPath == "" {
			return write(cmd.OutOrStdout(), result)
		}
		return writeFile(outPath, result)
	},
}

func writeFile(path string, result *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f, result); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func write(w io.Writer, result *pipeline.Result) error {
	if !asJSON {
		_, err := io.WriteString(w, result.HTML)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(dto.NewSiteResponse(result.Spec, result.HTML, result.Transcript))
}

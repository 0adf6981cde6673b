package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/modules/storage/local"
	"github.com/reusedev/imagen-studio/internal/modules/studio"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/response"
	"github.com/reusedev/imagen-studio/tools"
	"github.com/spf13/cobra"
)

const cliSession = "cli"

func newGenerateCmd() *cobra.Command {
	var (
		prompt  string
		output  string
		backend string
		model   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one image and save it as PNG",
		Example: `imagen-studio generate --prompt "a red circle on white" --output circle.png
imagen-studio generate --prompt "a lighthouse at dusk" --backend sdk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(prompt) == "" {
				return errors.New("--prompt is required")
			}
			if backend != "" {
				config.GConfig.Gemini.Backend = backend
			}
			if model != "" {
				config.GConfig.Gemini.Model = model
			}
			if err := config.GConfig.Verify(); err != nil {
				return err
			}
			s, err := newStudio(cmd.Context())
			if err != nil {
				return err
			}
			result, err := s.Generate(cmd.Context(), cliSession, prompt)
			var failure *studio.UpstreamFailure
			if errors.As(err, &failure) {
				fmt.Fprintln(cmd.ErrOrStderr(), failure.Hint.Message)
				return failure.Err
			}
			if err != nil {
				return err
			}
			summary, err := response.NewGenerateImage(result, false).Marsh()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			if result.Hint != nil {
				return errors.New(result.Hint.Message)
			}
			if output == "" {
				output = tools.DownloadFileName(prompt, "png")
			}
			if err := local.SaveFile(bytes.NewReader(result.Entry.PNG), output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "text prompt (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG output path, derived from the prompt when empty")
	cmd.Flags().StringVar(&backend, "backend", "", "rest or sdk, overrides gemini.backend")
	cmd.Flags().StringVar(&model, "model", "", "overrides gemini.model")
	return cmd
}

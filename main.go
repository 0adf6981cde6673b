package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusedev/imagen-studio/config"
	"github.com/reusedev/imagen-studio/internal/components/mysql"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image/gemini"
	"github.com/reusedev/imagen-studio/internal/modules/dao"
	"github.com/reusedev/imagen-studio/internal/modules/gallery"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/modules/model"
	"github.com/reusedev/imagen-studio/internal/modules/observer"
	"github.com/reusedev/imagen-studio/internal/modules/studio"
	"github.com/reusedev/imagen-studio/internal/service/http"
	"github.com/reusedev/imagen-studio/tools"
	"github.com/spf13/cobra"
)

var (
	httpPort   string
	configPath string

	rootCmd = &cobra.Command{
		Use:           "imagen-studio",
		Short:         "Generate images from text prompts with Gemini",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Init(tools.PanicOnError(tools.ReadOptionalFile(configPath)))
			logs.InitLogger()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the studio over HTTP",
		RunE:  runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "config file path")
	serveCmd.Flags().StringVar(&httpPort, "http-port", ":80", "listen http port")
	rootCmd.AddCommand(serveCmd, newGenerateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var newGenerator = func(ctx context.Context) (gemini.Generator, error) {
	return gemini.NewGenerator(ctx, config.GConfig.Gemini)
}

func newStudio(ctx context.Context) (*studio.Studio, error) {
	generator, err := newGenerator(ctx)
	if err != nil {
		return nil, err
	}
	s := studio.New(generator, gallery.New(config.GConfig.Gallery.MaxEntries, config.GConfig.Gallery.TTL()))
	s.AddObserver(observer.LogObserver{})
	return s, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	s, err := newStudio(ctx)
	if err != nil {
		return err
	}
	if config.GConfig.HistoryEnabled {
		mysql.InitMySQL(config.GConfig.MySQL)
		if err := mysql.DB.AutoMigrate(&model.GenerationHistory{}); err != nil {
			return err
		}
		s.AddObserver(observer.NewHistoryRecorder(dao.CreateHistory))
	}
	logs.Logger.Info().
		Str("backend", config.GConfig.Gemini.Backend).
		Str("model", config.GConfig.Gemini.Model).
		Bool("history", config.GConfig.HistoryEnabled).
		Msg("imagen studio starting")
	return http.Serve(ctx, httpPort, s, config.GConfig.HistoryEnabled)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/modules/studio"
	"github.com/reusedev/imagen-studio/internal/service/http/handler"
	"github.com/reusedev/imagen-studio/internal/service/http/middleware"
)

// Serve blocks until ctx is cancelled or the listener fails.
func Serve(ctx context.Context, port string, s *studio.Studio, historyEnabled bool) error {
	srv := &http.Server{
		Addr:    port,
		Handler: NewRouter(s, historyEnabled),
	}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", port).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(s *studio.Studio, historyEnabled bool) *gin.Engine {
	handler.Init(s)
	e := gin.New()
	initRouter(e, historyEnabled)
	return e
}

func initRouter(e *gin.Engine, historyEnabled bool) {
	e.Use(middleware.RequestLogger(), gin.Recovery())
	v1 := e.Group("/v1", middleware.Session())
	images := v1.Group("/images")
	{
		images.POST("/generations", handler.GenerateImage)
		images.GET("/:id/download", handler.DownloadImage)
	}
	gallery := v1.Group("/gallery")
	{
		gallery.GET("", handler.ListGallery)
		gallery.DELETE("", handler.ClearGallery)
	}
	if historyEnabled {
		v1.GET("/history", handler.ListHistory)
	}
}

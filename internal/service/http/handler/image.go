package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/modules/studio"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/request"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/response"
	"github.com/reusedev/imagen-studio/internal/service/http/middleware"
	"github.com/reusedev/imagen-studio/tools"
)

func GenerateImage(c *gin.Context) {
	form := request.GenerateImage{}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	result, err := imageStudio.Generate(c.Request.Context(), middleware.SessionID(c), form.Prompt)
	if err != nil {
		var failure *studio.UpstreamFailure
		switch {
		case errors.Is(err, studio.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		case errors.As(err, &failure):
			c.JSON(http.StatusBadGateway, response.UpstreamError(failure.Err.Error(), failure.Hint))
		default:
			logs.Logger.Error().Err(err).Str("task_id", result.TaskID).Msg("generate image failed")
			c.JSON(http.StatusInternalServerError, response.InternalError)
		}
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(response.NewGenerateImage(result, true)))
}

func DownloadImage(c *gin.Context) {
	entry, ok, err := imageStudio.Gallery().Get(middleware.SessionID(c), c.Param("id"))
	if err != nil {
		logs.Logger.Error().Err(err).Msg("get gallery entry failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.NotFound)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tools.DownloadFileName(entry.Prompt, "png")))
	c.Data(http.StatusOK, "image/png", entry.PNG)
}

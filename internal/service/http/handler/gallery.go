package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/gallery"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/request"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/response"
	"github.com/reusedev/imagen-studio/internal/service/http/middleware"
)

func ListGallery(c *gin.Context) {
	form := request.ListGallery{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	var (
		entries []gallery.Entry
		err     error
	)
	if form.ExcludeLatest {
		entries, err = imageStudio.Gallery().Previous(middleware.SessionID(c))
	} else {
		entries, err = imageStudio.Gallery().List(middleware.SessionID(c))
	}
	if err != nil {
		logs.Logger.Error().Err(err).Msg("list gallery failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	ret := make([]*response.ImageEntry, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, response.NewImageEntry(e, false))
	}
	c.JSON(http.StatusOK, response.SuccessWithData(ret))
}

func ClearGallery(c *gin.Context) {
	if err := imageStudio.Gallery().Clear(middleware.SessionID(c)); err != nil {
		logs.Logger.Error().Err(err).Msg("clear gallery failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(nil))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/dao"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/request"
	"github.com/reusedev/imagen-studio/internal/service/http/handler/response"
	"github.com/reusedev/imagen-studio/internal/service/http/middleware"
)

func ListHistory(c *gin.Context) {
	form := request.ListHistory{}
	if err := c.ShouldBindQuery(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	form.FullWithDefault()
	records, err := dao.HistoryBySession(middleware.SessionID(c), form.Limit)
	if err != nil {
		logs.Logger.Error().Err(err).Msg("query generation history failed")
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(records))
}

package response

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/ai/image"
)

var (
	ParamError            = gin.H{"code": 10001, "message": "param error"}
	ParamErrorWithMessage = func(message string) gin.H {
		return gin.H{"code": 10001, "message": message}
	}

	InternalError = gin.H{"code": 10002, "message": "internal error"}

	UpstreamError = func(message string, hint image.Hint) gin.H {
		return gin.H{"code": 10003, "message": message, "hint": hint}
	}

	NotFound = gin.H{"code": 10004, "message": "not found"}

	SuccessWithData = func(data interface{}) gin.H {
		return gin.H{"code": 0, "data": data}
	}
)

package common

import (
	"net/http"
	"time"

	"knowmap-backend/logging"

	"github.com/gin-gonic/gin"
)

const RequestContextKeyUser = "request_user"

type UserInfo struct {
	Email string
}

// LogRequest logs every request with latency and status.
func LogRequest(ctx *gin.Context) {
	start := time.Now()

	ctx.Next()

	logging.Default().Infof("%s %s [%d] cost=%s",
		ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
}

/*
SetUserInfo resolves the caller identity from the X-User-Email header and puts
it into the request context. In debug mode a missing header falls back to a
fixed test user so local requests need no auth setup.
*/
func SetUserInfo(debugMode bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.GetHeader("X-User-Email")

		if email == "" && debugMode {
			email = "knowmap_test@163.com"
		}

		if email != "" {
			ctx.Set(RequestContextKeyUser, &UserInfo{Email: email})
		}

		ctx.Next()
	}
}

// RejectNotLogin aborts requests that carry no user identity. Debug mode lets
// everything through because SetUserInfo already injected the test user.
func RejectNotLogin(debugMode bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if debugMode {
			ctx.Next()
			return
		}

		if _, exist := ctx.Get(RequestContextKeyUser); !exist {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, MakeUnknownErrorResp())
			return
		}

		ctx.Next()
	}
}

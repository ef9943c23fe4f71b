package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// liveness probe with a joke attached
func coffeeHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusTeapot, gin.H{"message": "I'm a teapot"})
}

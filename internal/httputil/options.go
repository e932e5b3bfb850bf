package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func options(c *gin.Context, methods string) {
	c.Header("allow", methods)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	options(c, "OPTIONS, GET")
}

func OptionsPost(c *gin.Context) {
	options(c, "OPTIONS, POST")
}

func OptionsDelete(c *gin.Context) {
	options(c, "OPTIONS, DELETE")
}

func OptionsGetPost(c *gin.Context) {
	options(c, "OPTIONS, GET, POST")
}

func OptionsPatchDelete(c *gin.Context) {
	options(c, "OPTIONS, PATCH, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, PATCH, PUT, DELETE")
}

func OptionsPatch(c *gin.Context) {
	options(c, "OPTIONS, PATCH")
}

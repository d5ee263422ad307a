package handlers

import (
	"github.com/gin-gonic/gin"
)

// fail writes the error envelope every handler uses. Internal detail stays
// out of message unless the caller put it there deliberately.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

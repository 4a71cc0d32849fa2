// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// Every API response uses the same envelope: {success, data} on success,
// {success, error, code} on failure.

// RespondWithData writes a success envelope
func RespondWithData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondWithError writes an error envelope with a machine-readable code
func RespondWithError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

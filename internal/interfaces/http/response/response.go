package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// SuccessWithMeta sends a paginated success response
func SuccessWithMeta(c *gin.Context, status int, data interface{}, meta *utils.PaginationMeta) {
	c.JSON(status, gin.H{"data": data, "meta": meta})
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		// Default to Internal Server Error if not an AppError
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ValidationError sends a 400 for request binding failures
func ValidationError(c *gin.Context, err error) {
	c.JSON(400, gin.H{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

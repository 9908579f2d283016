package httpresp

import "github.com/gin-gonic/gin"

// Success envelope: {success:true, message?, <key>: entity}. The key names
// the entity ("record", "request", "history") so existing clients keep
// working.

func OK(c *gin.Context, key string, v any) {
	c.JSON(200, gin.H{
		"success": true,
		key:       v,
	})
}

func OKMessage(c *gin.Context, message string) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
	})
}

func Created(c *gin.Context, key string, v any, message string) {
	c.JSON(201, gin.H{
		"success": true,
		"message": message,
		key:       v,
	})
}

func List(c *gin.Context, key string, items any, total int64, page, limit int) {
	c.JSON(200, gin.H{
		"success": true,
		"page":    page,
		"limit":   limit,
		"total":   total,
		key:       items,
	})
}

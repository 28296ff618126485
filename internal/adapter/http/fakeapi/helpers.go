package fakeapi

import (
	"net/http"
	"strconv"
	"strings"

	"sklad/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abort(c, errInvalidPayload)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// bind decodes and validates a JSON body. Validation failures are answered
// in the backend's list-of-errors shape.
func bind(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		abort(c, errInvalidPayload)
		return false
	}
	if err := request.Validate(payload); err != nil {
		msg := strings.TrimSuffix(err.Error(), ": "+request.ErrInvalidPayload.Error())
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"detail": []gin.H{{"loc": []string{"body"}, "msg": msg, "type": "value_error"}},
		})
		return false
	}
	return true
}

func paginate[T any](c *gin.Context, items []T, defSize int) gin.H {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", defSize)
	total := len(items)
	from := (page - 1) * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}
	return gin.H{"items": items[from:to], "total": total}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func itoa64(n int64) string {
	return strconv.FormatInt(n, 10)
}

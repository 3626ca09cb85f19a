package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MustParseUint converts a string to an unsigned integer, returning 0 on
// parse failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// OrgID resolves the organization context from the X-Org-ID header set by
// the upstream gateway. Session and org resolution live outside this
// service; 0 means no org context was supplied.
func OrgID(c *gin.Context) uint {
	return MustParseUint(c.GetHeader("X-Org-ID"))
}

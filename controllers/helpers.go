package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/middleware"
	"github.com/steadysteps/steadysteps/progression"
)

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// today returns the current calendar day key in the server's local zone.
func today() string {
	return time.Now().In(time.Local).Format(progression.DateLayout)
}

// rowFound splits a First() lookup error into "row absent" and real failures.
// Folding the two together would turn a dropped connection into a create on
// top of an existing row.
func rowFound(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"restaurant-menu-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// bindJSON binds the request body into req and writes a 400 response itself
// when binding fails. Validation failures keep per-field granularity: each
// failed field contributes one human-readable message to "details".
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": validationDetails(verrs),
		})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	return false
}

func validationDetails(verrs validator.ValidationErrors) []string {
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldMessage(fe))
	}
	return details
}

// fieldMessage renders one validation failure as a sentence, e.g.
// "Description must be at least 10 characters".
func fieldMessage(fe validator.FieldError) string {
	field := humanFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return field + " cannot be negative"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v is not a valid %s", fe.Value(), strings.ToLower(field))
	}
	return field + " is invalid"
}

// humanFieldName turns a struct field name like "MenuItemID" into "Menu item".
func humanFieldName(name string) string {
	name = strings.TrimSuffix(name, "ID")
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// internalError logs the underlying failure with the request ID and returns
// a 500. The details are only echoed to the client outside release mode;
// production callers get the message alone.
func internalError(c *gin.Context, msg string, err error) {
	log.Printf("[%s] %s: %v", middleware.GetRequestID(c), msg, err)
	resp := gin.H{"error": msg}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		resp["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// parseID parses a numeric path parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// isDuplicateErr reports whether a write failed on a unique index. The
// indexes (user email, review (user, menu_item) pair) are the authoritative
// duplicate guard; concurrent check-then-insert races end up here.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

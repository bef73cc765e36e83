package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
)

// respondError maps a service error onto the response taxonomy: validation
// 400, missing movie 404, anything else a logged 500.
func respondError(c *gin.Context, err error, message string) {
	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.SendValidationError(c, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrMovieNotFound):
		utils.SendNotFound(c, "Movie not found")
	default:
		utils.SendInternalError(c, message, err)
	}
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.SendValidationError(c, "Invalid movie ID", map[string]string{"id": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into req. A body that does not decode
// answers 400 with a message per offending field.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	utils.SendValidationError(c, "Invalid request data", bindErrorFields(err))
	return false
}

func bindErrorFields(err error) map[string]string {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return map[string]string{ute.Field: typeMessage(ute.Field, ute.Type)}
	}
	if errors.As(err, &ute) {
		return map[string]string{"body": "request body must be a JSON object"}
	}
	return map[string]string{"body": "request body must be valid JSON"}
}

func typeMessage(field string, t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%s must be an integer", field)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%s must be a positive integer", field)
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%s must be a number", field)
	case reflect.String:
		return fmt.Sprintf("%s must be a string", field)
	case reflect.Bool:
		return fmt.Sprintf("%s must be true or false", field)
	default:
		return fmt.Sprintf("%s has the wrong type", field)
	}
}

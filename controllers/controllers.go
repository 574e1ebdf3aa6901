// Package controllers exposes the insert and read operations over HTTP.
// Request bodies go through the schema decoders; storage goes through the
// repository package.
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/repository"
	"github.com/yeremiapane/restaurant-ordering/schema"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// respondFailure maps err onto the response envelope.
func respondFailure(c *gin.Context, err error) {
	var verr *schema.ValidationError
	var cverr *repository.ConstraintViolationError
	switch {
	case errors.As(err, &verr):
		utils.RespondErrorData(c, http.StatusBadRequest, err, gin.H{"fields": verr.Fields})
	case errors.As(err, &cverr):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

// paramID parses the uint path parameter name. A malformed id is a
// validation failure on that parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &schema.ValidationError{Fields: []schema.FieldError{
			{Field: name, Reason: fmt.Sprintf("must be a positive integer, got %q", raw)},
		}}
	}
	return uint(id), nil
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &schema.ValidationError{Fields: []schema.FieldError{
				{Reason: fmt.Sprintf("body must be at most %d bytes", tooLarge.Limit)},
			}}
		}
		return nil, &schema.ValidationError{Fields: []schema.FieldError{{Reason: "unreadable request body"}}}
	}
	return body, nil
}

func invalidField(field, reason string) error {
	return &schema.ValidationError{Fields: []schema.FieldError{{Field: field, Reason: reason}}}
}

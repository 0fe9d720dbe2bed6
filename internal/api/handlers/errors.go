package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"github.com/linskybing/grant-tracker/pkg/response"
	"github.com/linskybing/grant-tracker/pkg/utils"
	"go.uber.org/zap"
)

func init() {
	// Report json names instead of Go field names in validation errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	}
}

// respondError writes the status and envelope matching a service error.
func respondError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: "Invalid input", Fields: verr.Fields})
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, application.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		logger.FromContext(c).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	}
}

// bindError turns a binding failure into per-field messages for the frontend.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	fields := make(map[string]string, len(verr))
	for _, fe := range verr {
		name := fieldPath(fe)
		lbl := strings.ReplaceAll(fe.Field(), "_", " ")

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "datetime":
			msg = fmt.Sprintf("%s must be a date like 2024-01-31", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		fields[name] = msg
	}
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: "Invalid input", Fields: fields})
}

// fieldPath drops the root struct name: CreateTicketDTO.expeditures[0].amount
// becomes expeditures[0].amount.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func parseID(c *gin.Context, param, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, param)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + what + " id"})
		return 0, false
	}
	return id, true
}

package httperr

import (
	"errors"
	"net/http"

	"boat-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError preserves the original error on the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

// StatusOf maps a domain error kind to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindState:
		return http.StatusUnprocessableEntity
	case errs.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithDomainError answers with the status and message that belong to err's kind.
// Internal errors never leak their message.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		var domainErr *errs.DomainError
		if errors.As(err, &domainErr) {
			msg = domainErr.Error()
		}
	}
	abort(c, status, err, string(errs.KindOf(err)), msg, nil)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

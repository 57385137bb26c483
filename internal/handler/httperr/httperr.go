package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

type Option func(*Response)

// WithReason attaches the machine-stable rejection reason.
func WithReason(reason string) Option {
	return func(r *Response) { r.Reason = reason }
}

func WithMessage(msg string) Option {
	return func(r *Response) { r.Message = msg }
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, opts ...Option) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}
	for _, opt := range opts {
		opt(&resp)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

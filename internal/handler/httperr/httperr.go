package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error body. Valid is only set by promo validation and
// Available only by capacity rejections.
type Response struct {
	Status    int    `json:"-"`
	Valid     *bool  `json:"valid,omitempty"`
	Error     string `json:"error"`
	Available *int32 `json:"available,omitempty"`
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

type Option func(*Response)

func WithValid(valid bool) Option {
	return func(r *Response) {
		r.Valid = &valid
	}
}

func WithAvailable(available int32) Option {
	return func(r *Response) {
		r.Available = &available
	}
}

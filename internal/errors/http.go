package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response is the JSON body rendered for a failed request
type Response struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ToResponse converts any error into a renderable response body. Errors that
// are not *Error render as Internal without leaking the raw error text.
func ToResponse(err error) *Response {
	if err == nil {
		return nil
	}

	var customErr *Error
	if As(err, &customErr) {
		return &Response{
			Code:    customErr.Code.String(),
			Message: customErr.Message,
			Meta:    customErr.Meta,
		}
	}

	return &Response{
		Code:    CodeInternal.String(),
		Message: "internal error",
	}
}

// Render writes the error to the response with the status mapped from its
// code. A nil error renders nothing.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	render.Status(r, GetCode(err).HTTPStatus())
	render.JSON(w, r, ToResponse(err))
}

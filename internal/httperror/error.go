package httperror

import "fmt"

// Error is the body of all error responses.
type Error struct {
	Message string `json:"error" example:"there is no month matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func Newf(format string, args ...any) Error {
	return Error{
		Message: fmt.Sprintf(format, args...),
	}
}

package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a {"message": ...} JSON body. Unexpected
// errors become a 500 and are logged with their cause; handlers never leak a
// raw stack to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}

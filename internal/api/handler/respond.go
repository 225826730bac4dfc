package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform success wrapper. The error path renders the same
// shape through the central HTTP error handler.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data, Error: ""})
}

package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// errStatus overrides the caller's status for well known domain errors
var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrWalletNotConnected, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrInvalidSignature, http.StatusForbidden},
	{domain.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
}

// StatusOf returns the http status for err, or fallback when err is not a known domain error
func StatusOf(err error, fallback int) int {
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

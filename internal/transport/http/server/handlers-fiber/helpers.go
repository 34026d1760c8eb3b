package handlers_fiber

import (
	"errors"
	"net/http"

	"jpashop/internal/entities"
	"jpashop/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors returned past the handlers, including
// parameter binding failures of the generated wrapper, as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return writeError(c, err)
	}

	code := oapi.INVALIDARGUMENT
	switch {
	case fe.Code == http.StatusNotFound:
		code = oapi.NOTFOUND
	case fe.Code >= http.StatusInternalServerError:
		code = oapi.INTERNAL
	}
	return c.Status(fe.Code).JSON(errorResponse(code, fe.Message))
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := oapi.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = oapi.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound), errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrItemNotFound), errors.Is(err, entities.ErrOrderNotFound):
		status = http.StatusNotFound
		code = oapi.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = oapi.MEMBEREXISTS
		msg = "member name already exists"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = oapi.TEAMEXISTS
		msg = "team name already exists"
	case errors.Is(err, entities.ErrNotEnoughStock):
		status = http.StatusConflict
		code = oapi.NOTENOUGHSTOCK
		msg = "need more stock"
	case errors.Is(err, entities.ErrAlreadyDelivered):
		status = http.StatusConflict
		code = oapi.ALREADYDELIVERED
		msg = "delivered orders cannot be canceled"
	case errors.Is(err, entities.ErrOrderCanceled):
		status = http.StatusConflict
		code = oapi.ORDERCANCELED
		msg = "order is already canceled"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code oapi.ErrorResponseErrorCode, msg string) oapi.ErrorResponse {
	var res oapi.ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(oapi.INVALIDARGUMENT, msg))
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

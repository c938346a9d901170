package apperrors

import (
	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/logger"
)

// JSON writes the uniform error envelope for a failed operation. Internal
// causes are logged here and never leak to the response body.
func JSON(c echo.Context, err error) error {
	status := HTTPStatus(err)
	reason := Reason(err)
	if KindOf(err) == KindInternal {
		logger.Error("internal error", "path", c.Path(), "err", err)
	}
	return c.JSON(status, echo.Map{"success": false, "error": reason})
}

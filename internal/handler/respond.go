package handler

import (
	"context"
	"io"
	"net/http"

	"swadwala/internal/middleware"
	"swadwala/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// writeError maps usecase HTTPErrors onto the response; anything else is a
// plain 500 with no internal detail.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "server error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	return id, ok && id > 0
}

// ImageUploader pushes an uploaded file to the image host and returns its
// URL. Satisfied by the Cloudinary client.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

// resolveImage prefers an uploaded multipart file over an imageUrl form
// field. Returns "" when the request carries neither.
func resolveImage(c echo.Context, uploader ImageUploader, folder string) (string, error) {
	fh, err := c.FormFile("image")
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		return uploader.UploadImage(c.Request().Context(), f, folder)
	}
	return c.FormValue("imageUrl"), nil
}

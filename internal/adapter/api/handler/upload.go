package handler

import (
	"github.com/labstack/echo/v4"

	"mapmarket/pkg/errors"
)

// uploadedImage stores the optional "image" multipart file and returns its
// URL. An absent file is not an error; the caller gets an empty ref.
func uploadedImage(c echo.Context, uploader ImageUploader, folder string) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.BadRequest("Unable to read uploaded image", err)
	}
	defer src.Close()

	url, err := uploader.UploadImage(c.Request().Context(), src, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		return "", errors.Internal("Failed to store uploaded image", err)
	}
	return url, nil
}

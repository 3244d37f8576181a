// Package handler holds the echo handlers of the public API.
package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseID(c echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(param)
	}

	return id, nil
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return n
}

// bind decodes the request and runs the struct validation rules.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "body", Message: "malformed request body"})
	}

	return c.Validate(req)
}

// uploads writes multipart files to the temp dir and removes whatever the media
// storage did not consume once the handler returns.
type uploads struct {
	dir   string
	paths []string
}

func newUploads(dir string) *uploads {
	return &uploads{dir: dir}
}

// save returns "" when the request carries no file under field.
func (u *uploads) save(c echo.Context, field string) (string, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", field)
	}

	src, err := header.Open()
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", field)
	}
	defer src.Close()

	if err := os.MkdirAll(u.dir, 0o750); err != nil {
		return "", errors.Wrap(err, "failed to create upload dir")
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(header.Filename)))
	dst, err := os.CreateTemp(u.dir, "upload-*"+ext)
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	u.paths = append(u.paths, dst.Name())

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()

		return "", errors.Wrapf(err, "failed to store %s", field)
	}
	if err := dst.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to store %s", field)
	}

	return dst.Name(), nil
}

func (u *uploads) cleanup() {
	for _, path := range u.paths {
		_ = os.Remove(path)
	}
}

package api

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/landagri/backend/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and defers everything else to the
// default echo binder.
type Binder struct {
	fallback *echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{fallback: &echo.DefaultBinder{}}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	contentType := req.Header.Get(echo.HeaderContentType)
	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.ErrInvalidPayload
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return constants.ErrInvalidPayload
		}
		return nil
	}

	return b.fallback.Bind(i, ctx)
}

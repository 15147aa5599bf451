package http

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromGoogle(id)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if v == nil {
		return fallback, nil
	}
	return *v, nil
}

func queryString(c echo.Context, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// optionalUUID parses a body field that may be absent.
func optionalUUID(name string, s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a uuid", *s))
	}
	return &id, nil
}

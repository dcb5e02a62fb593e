// Package handler contains the HTTP handlers of the purchase flow API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"insureflow/internal/delivery/api/response"
	"insureflow/internal/domain/entity"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the insurance package catalog.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPackages handles GET /packages?type=&featured=
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	filter := usecase.PackageFilter{
		Type: entity.InsuranceType(c.QueryParam("type")),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "featured must be a boolean")
		}
		filter.FeaturedOnly = featured
	}

	packages, err := h.uc.ListPackages(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, packages)
}

// GetPackage handles GET /packages/:id
func (h *CatalogHandler) GetPackage(c echo.Context) error {
	pkg, err := h.uc.GetPackage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg)
}

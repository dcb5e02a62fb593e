package impl

import (
	"context"

	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/usecase"
)

type catalogService struct{}

// NewCatalogService creates a new catalog service instance
func NewCatalogService() usecase.CatalogUsecase {
	return &catalogService{}
}

// ListPackages returns the catalog, optionally narrowed by type and featured flag
func (s *catalogService) ListPackages(_ context.Context, filter usecase.PackageFilter) ([]*usecase.PackageView, error) {
	var packages []*entity.InsurancePackage

	switch {
	case filter.Type != "":
		if !filter.Type.IsValid() {
			return nil, domainerrors.ErrInvalidInsuranceType.WithDetails(filter.Type.String())
		}
		packages = catalog.GetPackagesByType(filter.Type)
	case filter.FeaturedOnly:
		packages = catalog.GetFeaturedPackages()
	default:
		packages = catalog.All()
	}

	views := make([]*usecase.PackageView, 0, len(packages))
	for _, p := range packages {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		views = append(views, newPackageView(p))
	}

	return views, nil
}

// GetPackage returns one package by id
func (s *catalogService) GetPackage(_ context.Context, packageID string) (*usecase.PackageView, error) {
	p, ok := catalog.GetPackageByID(packageID)
	if !ok {
		return nil, domainerrors.ErrPackageNotFound.WithDetails(packageID)
	}

	return newPackageView(p), nil
}

func newPackageView(p *entity.InsurancePackage) *usecase.PackageView {
	return &usecase.PackageView{
		InsurancePackage: p,
		FormattedPrice:   catalog.FormatPrice(p.Price),
	}
}

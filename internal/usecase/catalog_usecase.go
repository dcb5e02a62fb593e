package usecase

import (
	"context"

	"insureflow/internal/domain/entity"
)

// PackageFilter narrows a package listing.
type PackageFilter struct {
	Type         entity.InsuranceType
	FeaturedOnly bool
}

// PackageView is a catalog package with its display price.
type PackageView struct {
	*entity.InsurancePackage
	FormattedPrice string `json:"formatted_price"`
}

// CatalogUsecase defines the package catalog queries
type CatalogUsecase interface {
	ListPackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error)
	GetPackage(ctx context.Context, packageID string) (*PackageView, error)
}

// Package catalog holds the static insurance package catalog and its lookup helpers.
package catalog

import (
	"insureflow/internal/domain/entity"

	"github.com/Rhymond/go-money"
)

var byID = indexPackages(packages)

func indexPackages(list []*entity.InsurancePackage) map[string]*entity.InsurancePackage {
	index := make(map[string]*entity.InsurancePackage, len(list))
	for _, p := range list {
		index[p.ID] = p
	}

	return index
}

// All returns every package in catalog order.
func All() []*entity.InsurancePackage {
	out := make([]*entity.InsurancePackage, len(packages))
	copy(out, packages)

	return out
}

// GetPackageByID returns the package with the given id.
func GetPackageByID(id string) (*entity.InsurancePackage, bool) {
	p, ok := byID[id]

	return p, ok
}

// GetPackagesByType returns the packages of one insurance type in catalog order.
func GetPackagesByType(t entity.InsuranceType) []*entity.InsurancePackage {
	out := []*entity.InsurancePackage{}
	for _, p := range packages {
		if p.Type == t {
			out = append(out, p)
		}
	}

	return out
}

// GetFeaturedPackages returns the featured packages in catalog order.
func GetFeaturedPackages() []*entity.InsurancePackage {
	out := []*entity.InsurancePackage{}
	for _, p := range packages {
		if p.Featured {
			out = append(out, p)
		}
	}

	return out
}

// vnd formats whole dong amounts the way vi-VN locales print them: "500.000 ₫".
var vnd = money.NewFormatter(0, ",", ".", "₫", "1 $")

// FormatPrice formats a price in whole VND.
func FormatPrice(price int64) string {
	return vnd.Format(price)
}

package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage factory function.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage")

// Package is a value object describing what is being shipped: weight in kg,
// number of identical pieces, declared value for insurance, the free-text
// service-type label, and an optional description.
//
// Zero weight and zero declared value are valid. Upstream numeric coercion
// turns unparseable input into zero, and a zero-cost order is the documented
// outcome of that, so the domain does not reject zeros. Negative values are
// rejected.
type Package struct {
	weight        float64
	quantity      int
	declaredValue float64
	serviceType   string
	description   string

	guard guard.ConstructorGuard
}

// NewPackage creates a Package. Weight and declared value must be non-negative;
// quantity must be at least 1; the service-type label is required.
func NewPackage(weight float64, quantity int, declaredValue float64, serviceType, description string) (Package, error) {
	if weight < 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is negative", weight))
	}
	if quantity < 1 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if declaredValue < 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("declaredValue", fmt.Errorf("%v is negative", declaredValue))
	}
	if serviceType == "" {
		return Package{}, errs.NewValueIsRequiredError("serviceType")
	}

	return Package{
		weight:        weight,
		quantity:      quantity,
		declaredValue: declaredValue,
		serviceType:   serviceType,
		description:   description,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Weight returns the package weight in kilograms.
func (p Package) Weight() float64 {
	return p.weight
}

// Quantity returns the number of identical pieces in the shipment.
func (p Package) Quantity() int {
	return p.quantity
}

// DeclaredValue returns the declared value used for insurance.
func (p Package) DeclaredValue() float64 {
	return p.declaredValue
}

// ServiceType returns the free-text service-type label.
func (p Package) ServiceType() string {
	return p.serviceType
}

// Description returns the free-text contents description.
func (p Package) Description() string {
	return p.description
}

// Validate checks if the Package was properly constructed.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

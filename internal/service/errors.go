package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes: *NotFound → 404, *InUse / duplicate → 409, anything else → 400/500.
var (
	ErrProducerNotFound       = errors.New("producer not found")
	ErrSoilTypeNotFound       = errors.New("soil type not found")
	ErrIrrigationTypeNotFound = errors.New("irrigation type not found")
	ErrAreaNotFound           = errors.New("area not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrVarietyNotFound        = errors.New("variety not found")
	ErrHarvestNotFound        = errors.New("harvest not found")
	ErrPlantingNotFound       = errors.New("planting not found")

	ErrProducerHasAreas    = errors.New("producer still has areas")
	ErrHarvestHasPlantings = errors.New("harvest still has plantings")
	ErrSoilTypeInUse       = errors.New("soil type is referenced by areas")
	ErrIrrigationTypeInUse = errors.New("irrigation type is referenced by areas")
	ErrDuplicateName       = errors.New("name already in use")
	ErrDuplicateDocument   = errors.New("document already registered")
)

// IsNotFound reports whether err is any of the resource-missing sentinels.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrProducerNotFound, ErrSoilTypeNotFound, ErrIrrigationTypeNotFound,
		ErrAreaNotFound, ErrProductNotFound, ErrVarietyNotFound,
		ErrHarvestNotFound, ErrPlantingNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a uniqueness or referenced-row conflict.
func IsConflict(err error) bool {
	for _, target := range []error{
		ErrProducerHasAreas, ErrHarvestHasPlantings, ErrSoilTypeInUse, ErrIrrigationTypeInUse,
		ErrDuplicateName, ErrDuplicateDocument,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

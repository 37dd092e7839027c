package service

import (
	"context"
	"errors"
	"math"

	"agrofield/internal/dto"
	"agrofield/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AreaService enforces cross-entity invariants before any area mutation and
// shapes repository records into the external response contract.
type AreaService interface {
	Create(ctx context.Context, req dto.CreateAreaRequest) (*dto.AreaResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.AreaResponse, error)
	FindByProducer(ctx context.Context, producerID uint) ([]dto.AreaResponse, error)
	FindAll(ctx context.Context) ([]dto.AreaResponse, error)
	UpdateStatus(ctx context.Context, id uint, active bool) (*dto.AreaResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateAreaRequest) (*dto.AreaResponse, error)
}

type areaService struct {
	areas       repository.AreaRepository
	producers   repository.ProducerRepository
	soilTypes   repository.SoilTypeRepository
	irrigations repository.IrrigationTypeRepository
}

func NewAreaService(
	areas repository.AreaRepository,
	producers repository.ProducerRepository,
	soilTypes repository.SoilTypeRepository,
	irrigations repository.IrrigationTypeRepository,
) AreaService {
	return &areaService{
		areas:       areas,
		producers:   producers,
		soilTypes:   soilTypes,
		irrigations: irrigations,
	}
}

// mapArea converts a repository record to the response DTO. The hectare
// figure derives from the geodesic polygon surface: m² / 10,000, rounded to
// two decimals.
func mapArea(rec *repository.AreaRecord) *dto.AreaResponse {
	return &dto.AreaResponse{
		ID:         rec.ID,
		Name:       rec.Name,
		Polygon:    rec.Polygon,
		Color:      rec.Color,
		Active:     rec.Active,
		AreaM2:     rec.AreaM2,
		AreaHa:     math.Round(rec.SizeM2/10_000*100) / 100,
		ProducerID: rec.ProducerID,
		SoilType: dto.ReferenceSummary{
			ID:   rec.SoilTypeID,
			Name: rec.SoilTypeName,
		},
		IrrigationType: dto.ReferenceSummary{
			ID:   rec.IrrigationTypeID,
			Name: rec.IrrigationTypeName,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// Create verifies the referenced producer, soil type and irrigation type — in
// that order, short-circuiting on the first miss — before persisting. The
// checks are not wrapped in a transaction with the insert; a concurrent
// delete between check and insert surfaces as a constraint error.
func (s *areaService) Create(ctx context.Context, req dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	if _, err := s.producers.FindByID(ctx, req.ProducerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, err
	}
	if _, err := s.soilTypes.FindByID(ctx, req.SoilTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSoilTypeNotFound
		}
		return nil, err
	}
	if _, err := s.irrigations.FindByID(ctx, req.IrrigationTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIrrigationTypeNotFound
		}
		return nil, err
	}

	rec, err := s.areas.Create(ctx, repository.CreateAreaInput{
		Name:             req.Name,
		Polygon:          req.Polygon,
		Color:            req.Color,
		AreaM2:           decimal.NewFromFloat(req.AreaM2),
		ProducerID:       req.ProducerID,
		SoilTypeID:       req.SoilTypeID,
		IrrigationTypeID: req.IrrigationTypeID,
	})
	if err != nil {
		return nil, err
	}
	return mapArea(rec), nil
}

func (s *areaService) FindOne(ctx context.Context, id uint) (*dto.AreaResponse, error) {
	rec, err := s.areas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrAreaNotFound
	}
	return mapArea(rec), nil
}

func (s *areaService) FindByProducer(ctx context.Context, producerID uint) ([]dto.AreaResponse, error) {
	if _, err := s.producers.FindByID(ctx, producerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, err
	}
	recs, err := s.areas.FindByProducerID(ctx, producerID)
	if err != nil {
		return nil, err
	}
	return mapAreas(recs), nil
}

func (s *areaService) FindAll(ctx context.Context) ([]dto.AreaResponse, error) {
	recs, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAreas(recs), nil
}

func mapAreas(recs []repository.AreaRecord) []dto.AreaResponse {
	result := make([]dto.AreaResponse, 0, len(recs))
	for i := range recs {
		result = append(result, *mapArea(&recs[i]))
	}
	return result
}

// UpdateStatus is idempotent by short-circuit: when the area is already in
// the desired state it is returned as-is, with no mutating call and no
// updated_at bump.
func (s *areaService) UpdateStatus(ctx context.Context, id uint, active bool) (*dto.AreaResponse, error) {
	rec, err := s.areas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrAreaNotFound
	}
	if rec.Active == active {
		return mapArea(rec), nil
	}

	updated, err := s.areas.UpdateStatus(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrAreaNotFound
	}
	return mapArea(updated), nil
}

// Update applies only the fields present in the request. Explicit zero/false
// values are applied; an incoming measurement is coerced to the exact-decimal
// column type to avoid floating-point drift in stored values.
func (s *areaService) Update(ctx context.Context, id uint, req dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
	rec, err := s.areas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrAreaNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SoilTypeID != nil {
		fields["soil_type_id"] = *req.SoilTypeID
	}
	if req.IrrigationTypeID != nil {
		fields["irrigation_type_id"] = *req.IrrigationTypeID
	}
	if req.AreaM2 != nil {
		fields["area_m2"] = decimal.NewFromFloat(*req.AreaM2).Round(2)
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	updated, err := s.areas.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrAreaNotFound
	}
	return mapArea(updated), nil
}

package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"gorm.io/gorm"
)

// PlantingService validates every foreign reference of a planting before it
// is persisted: harvest, product, optional variety, and each linked area.
type PlantingService interface {
	Create(ctx context.Context, req dto.CreatePlantingRequest) (*dto.PlantingResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.PlantingResponse, error)
	FindAll(ctx context.Context) ([]dto.PlantingResponse, error)
	Delete(ctx context.Context, id uint) error
}

type plantingService struct {
	plantings repository.PlantingRepository
	harvests  repository.HarvestRepository
	products  repository.ProductRepository
	areas     repository.AreaRepository
}

func NewPlantingService(
	plantings repository.PlantingRepository,
	harvests repository.HarvestRepository,
	products repository.ProductRepository,
	areas repository.AreaRepository,
) PlantingService {
	return &plantingService{plantings: plantings, harvests: harvests, products: products, areas: areas}
}

func mapPlanting(p *model.Planting) *dto.PlantingResponse {
	areaIDs := make([]uint, 0, len(p.Areas))
	for _, a := range p.Areas {
		areaIDs = append(areaIDs, a.ID)
	}
	return &dto.PlantingResponse{
		ID:        p.ID,
		HarvestID: p.HarvestID,
		ProductID: p.ProductID,
		VarietyID: p.VarietyID,
		PlantedAt: p.PlantedAt,
		AreaIDs:   areaIDs,
	}
}

func (s *plantingService) Create(ctx context.Context, req dto.CreatePlantingRequest) (*dto.PlantingResponse, error) {
	if _, err := s.harvests.FindByID(ctx, req.HarvestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHarvestNotFound
		}
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if req.VarietyID != nil {
		if _, err := s.products.FindVarietyByID(ctx, *req.VarietyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVarietyNotFound
			}
			return nil, err
		}
	}
	for _, areaID := range req.AreaIDs {
		rec, err := s.areas.FindByID(ctx, areaID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, ErrAreaNotFound
		}
	}

	p := &model.Planting{
		HarvestID: req.HarvestID,
		ProductID: req.ProductID,
		VarietyID: req.VarietyID,
		PlantedAt: req.PlantedAt,
	}
	if err := s.plantings.Create(ctx, p, req.AreaIDs); err != nil {
		return nil, err
	}

	created, err := s.plantings.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return mapPlanting(created), nil
}

func (s *plantingService) FindOne(ctx context.Context, id uint) (*dto.PlantingResponse, error) {
	p, err := s.plantings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlantingNotFound
		}
		return nil, err
	}
	return mapPlanting(p), nil
}

func (s *plantingService) FindAll(ctx context.Context) ([]dto.PlantingResponse, error) {
	plantings, err := s.plantings.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PlantingResponse, 0, len(plantings))
	for i := range plantings {
		result = append(result, *mapPlanting(&plantings[i]))
	}
	return result, nil
}

func (s *plantingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.plantings.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlantingNotFound
		}
		return err
	}
	return s.plantings.Delete(ctx, id)
}

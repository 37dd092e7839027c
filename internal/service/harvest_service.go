package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HarvestService covers growing-season CRUD and the two total-area
// computations over a harvest's land.
type HarvestService interface {
	Create(ctx context.Context, req dto.CreateHarvestRequest) (*dto.HarvestResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.HarvestResponse, error)
	FindAll(ctx context.Context) ([]dto.HarvestResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateHarvestRequest) (*dto.HarvestResponse, error)
	Delete(ctx context.Context, id uint) error

	// TotalArea sums the stored measurement of every distinct area reachable
	// through the harvest's plantings. An area shared by several plantings
	// counts once — total cultivated footprint, not sum of per-planting
	// footprints. Missing harvest or no plantings yields exactly zero.
	TotalArea(ctx context.Context, harvestID uint) (decimal.Decimal, error)

	// TotalAreaDirect sums ST_Area over the areas directly linked to the
	// harvest, regardless of plantings.
	TotalAreaDirect(ctx context.Context, harvestID uint) (float64, error)
}

type harvestService struct {
	harvests  repository.HarvestRepository
	producers repository.ProducerRepository
}

func NewHarvestService(harvests repository.HarvestRepository, producers repository.ProducerRepository) HarvestService {
	return &harvestService{harvests: harvests, producers: producers}
}

func mapHarvest(h *model.Harvest) *dto.HarvestResponse {
	areaIDs := make([]uint, 0, len(h.Areas))
	for _, a := range h.Areas {
		areaIDs = append(areaIDs, a.ID)
	}
	return &dto.HarvestResponse{
		ID:         h.ID,
		Name:       h.Name,
		Year:       h.Year,
		ProducerID: h.ProducerID,
		AreaIDs:    areaIDs,
	}
}

func (s *harvestService) Create(ctx context.Context, req dto.CreateHarvestRequest) (*dto.HarvestResponse, error) {
	if _, err := s.producers.FindByID(ctx, req.ProducerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, err
	}

	h := &model.Harvest{
		Name:       req.Name,
		Year:       req.Year,
		ProducerID: req.ProducerID,
	}
	if err := s.harvests.Create(ctx, h, req.AreaIDs); err != nil {
		return nil, err
	}

	created, err := s.harvests.FindByID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	return mapHarvest(created), nil
}

func (s *harvestService) FindOne(ctx context.Context, id uint) (*dto.HarvestResponse, error) {
	h, err := s.harvests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHarvestNotFound
		}
		return nil, err
	}
	return mapHarvest(h), nil
}

func (s *harvestService) FindAll(ctx context.Context) ([]dto.HarvestResponse, error) {
	harvests, err := s.harvests.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HarvestResponse, 0, len(harvests))
	for i := range harvests {
		result = append(result, *mapHarvest(&harvests[i]))
	}
	return result, nil
}

func (s *harvestService) Update(ctx context.Context, id uint, req dto.UpdateHarvestRequest) (*dto.HarvestResponse, error) {
	h, err := s.harvests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHarvestNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Year != nil {
		h.Year = *req.Year
	}
	if err := s.harvests.Update(ctx, h); err != nil {
		return nil, err
	}
	if req.AreaIDs != nil {
		if err := s.harvests.ReplaceAreas(ctx, h, *req.AreaIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.harvests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapHarvest(updated), nil
}

func (s *harvestService) Delete(ctx context.Context, id uint) error {
	if _, err := s.harvests.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHarvestNotFound
		}
		return err
	}
	hasPlantings, err := s.harvests.HasPlantings(ctx, id)
	if err != nil {
		return err
	}
	if hasPlantings {
		return ErrHarvestHasPlantings
	}
	return s.harvests.Delete(ctx, id)
}

// TotalArea deduplicates by area identity across all of the harvest's
// plantings before summing, so land shared by two plantings contributes its
// measurement exactly once.
func (s *harvestService) TotalArea(ctx context.Context, harvestID uint) (decimal.Decimal, error) {
	plantings, err := s.harvests.ListPlantingsWithAreas(ctx, harvestID)
	if err != nil {
		return decimal.Zero, err
	}

	seen := make(map[uint]struct{})
	total := decimal.Zero
	for _, p := range plantings {
		for _, a := range p.Areas {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			total = total.Add(a.AreaM2)
		}
	}
	return total, nil
}

func (s *harvestService) TotalAreaDirect(ctx context.Context, harvestID uint) (float64, error) {
	return s.harvests.TotalAreaDirect(ctx, harvestID)
}

package repository

import (
	"context"
	"errors"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// HarvestRepository defines data access for harvests, including the two
// spatial-footprint queries backing the total-area endpoints.
type HarvestRepository interface {
	Create(ctx context.Context, h *model.Harvest, areaIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Harvest, error)
	List(ctx context.Context) ([]model.Harvest, error)
	Update(ctx context.Context, h *model.Harvest) error
	ReplaceAreas(ctx context.Context, h *model.Harvest, areaIDs []uint) error
	// Delete removes the harvest and its area links. Plantings are not
	// cascaded; callers must check HasPlantings first.
	Delete(ctx context.Context, id uint) error
	HasPlantings(ctx context.Context, id uint) (bool, error)

	// ListPlantingsWithAreas loads every planting of the harvest with its
	// linked areas preloaded. A missing harvest yields an empty slice, not
	// an error — the aggregate calculator treats both as "total is zero".
	ListPlantingsWithAreas(ctx context.Context, harvestID uint) ([]model.Planting, error)

	// TotalAreaDirect sums the geodesic surface of every area directly
	// linked to the harvest, ignoring planting structure. Square meters;
	// zero when nothing is linked.
	TotalAreaDirect(ctx context.Context, harvestID uint) (float64, error)
}

type harvestRepo struct{ db *gorm.DB }

func NewHarvestRepository(db *gorm.DB) HarvestRepository { return &harvestRepo{db: db} }

func (r *harvestRepo) Create(ctx context.Context, h *model.Harvest, areaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		return r.associateAreas(tx, h, areaIDs)
	})
}

func (r *harvestRepo) FindByID(ctx context.Context, id uint) (*model.Harvest, error) {
	var h model.Harvest
	err := r.db.WithContext(ctx).Preload("Areas").First(&h, id).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) List(ctx context.Context) ([]model.Harvest, error) {
	var harvests []model.Harvest
	err := r.db.WithContext(ctx).Preload("Areas").Order("year desc, name asc").Find(&harvests).Error
	return harvests, err
}

func (r *harvestRepo) Update(ctx context.Context, h *model.Harvest) error {
	return r.db.WithContext(ctx).Omit("Areas", "Plantings").Save(h).Error
}

func (r *harvestRepo) ReplaceAreas(ctx context.Context, h *model.Harvest, areaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(h).Association("Areas").Clear(); err != nil {
			return err
		}
		return r.associateAreas(tx, h, areaIDs)
	})
}

func (r *harvestRepo) associateAreas(tx *gorm.DB, h *model.Harvest, areaIDs []uint) error {
	if len(areaIDs) == 0 {
		return nil
	}
	var areas []model.Area
	if err := tx.Find(&areas, areaIDs).Error; err != nil {
		return err
	}
	if len(areas) != len(areaIDs) {
		return errors.New("one or more areas do not exist")
	}
	return tx.Model(h).Association("Areas").Append(&areas)
}

// Delete clears the harvest_areas join rows along with the harvest itself,
// mirroring plantingRepo.Delete; otherwise the leftover links surface as a
// raw FK error.
func (r *harvestRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Areas").Delete(&model.Harvest{ID: id}).Error
}

func (r *harvestRepo) HasPlantings(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Planting{}).Where("harvest_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *harvestRepo) ListPlantingsWithAreas(ctx context.Context, harvestID uint) ([]model.Planting, error) {
	var plantings []model.Planting
	err := r.db.WithContext(ctx).
		Preload("Areas").
		Where("harvest_id = ?", harvestID).
		Find(&plantings).Error
	return plantings, err
}

func (r *harvestRepo) TotalAreaDirect(ctx context.Context, harvestID uint) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(ST_Area(a.polygon::geography)), 0) AS total
		  FROM areas a
		  JOIN harvest_areas ha ON ha.area_id = a.id
		 WHERE ha.harvest_id = ?`, harvestID,
	).Scan(&result).Error
	return result.Total, err
}

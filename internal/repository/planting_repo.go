package repository

import (
	"context"
	"errors"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// PlantingRepository defines data access for plantings and their area links.
type PlantingRepository interface {
	Create(ctx context.Context, p *model.Planting, areaIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Planting, error)
	List(ctx context.Context) ([]model.Planting, error)
	Delete(ctx context.Context, id uint) error
}

type plantingRepo struct{ db *gorm.DB }

func NewPlantingRepository(db *gorm.DB) PlantingRepository { return &plantingRepo{db: db} }

func (r *plantingRepo) Create(ctx context.Context, p *model.Planting, areaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		var areas []model.Area
		if err := tx.Find(&areas, areaIDs).Error; err != nil {
			return err
		}
		if len(areas) != len(areaIDs) {
			return errors.New("one or more areas do not exist")
		}
		return tx.Model(p).Association("Areas").Append(&areas)
	})
}

func (r *plantingRepo) FindByID(ctx context.Context, id uint) (*model.Planting, error) {
	var p model.Planting
	err := r.db.WithContext(ctx).Preload("Areas").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantingRepo) List(ctx context.Context) ([]model.Planting, error) {
	var plantings []model.Planting
	err := r.db.WithContext(ctx).Preload("Areas").Order("created_at desc").Find(&plantings).Error
	return plantings, err
}

func (r *plantingRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Areas").Delete(&model.Planting{ID: id}).Error
}

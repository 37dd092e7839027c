package repository

import (
	"context"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// SoilTypeRepository defines CRUD operations for soil-type reference data.
type SoilTypeRepository interface {
	Create(ctx context.Context, st *model.SoilType) error
	FindByID(ctx context.Context, id uint) (*model.SoilType, error)
	FindByName(ctx context.Context, name string) (*model.SoilType, error)
	List(ctx context.Context) ([]model.SoilType, error)
	Update(ctx context.Context, st *model.SoilType) error
	Delete(ctx context.Context, id uint) error
}

type soilTypeRepo struct{ db *gorm.DB }

func NewSoilTypeRepository(db *gorm.DB) SoilTypeRepository { return &soilTypeRepo{db: db} }

func (r *soilTypeRepo) Create(ctx context.Context, st *model.SoilType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *soilTypeRepo) FindByID(ctx context.Context, id uint) (*model.SoilType, error) {
	var st model.SoilType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *soilTypeRepo) FindByName(ctx context.Context, name string) (*model.SoilType, error) {
	var st model.SoilType
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *soilTypeRepo) List(ctx context.Context) ([]model.SoilType, error) {
	var types []model.SoilType
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}

func (r *soilTypeRepo) Update(ctx context.Context, st *model.SoilType) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *soilTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SoilType{}, id).Error
}

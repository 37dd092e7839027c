package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"gorm.io/gorm"
)

// IrrigationTypeService mirrors SoilTypeService for the irrigation lookup
// table.
type IrrigationTypeService interface {
	Create(ctx context.Context, req dto.CreateReferenceRequest) (*dto.ReferenceResponse, error)
	FindAll(ctx context.Context) ([]dto.ReferenceResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type irrigationTypeService struct {
	repo  repository.IrrigationTypeRepository
	areas repository.AreaRepository
}

func NewIrrigationTypeService(repo repository.IrrigationTypeRepository, areas repository.AreaRepository) IrrigationTypeService {
	return &irrigationTypeService{repo: repo, areas: areas}
}

func (s *irrigationTypeService) Create(ctx context.Context, req dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	it := &model.IrrigationType{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: it.ID, Name: it.Name, Description: it.Description}, nil
}

func (s *irrigationTypeService) FindAll(ctx context.Context) ([]dto.ReferenceResponse, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReferenceResponse, 0, len(types))
	for _, it := range types {
		result = append(result, dto.ReferenceResponse{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return result, nil
}

func (s *irrigationTypeService) Update(ctx context.Context, id uint, req dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIrrigationTypeNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != it.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateName
		}
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = req.Description
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: it.ID, Name: it.Name, Description: it.Description}, nil
}

func (s *irrigationTypeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIrrigationTypeNotFound
		}
		return err
	}
	inUse, err := s.areas.ExistsByIrrigationTypeID(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrIrrigationTypeInUse
	}
	return s.repo.Delete(ctx, id)
}

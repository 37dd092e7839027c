package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"gorm.io/gorm"
)

// SoilTypeService manages soil-type reference data. Deletion is blocked
// while any area still references the row.
type SoilTypeService interface {
	Create(ctx context.Context, req dto.CreateReferenceRequest) (*dto.ReferenceResponse, error)
	FindAll(ctx context.Context) ([]dto.ReferenceResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error)
	Delete(ctx context.Context, id uint) error
}

type soilTypeService struct {
	repo  repository.SoilTypeRepository
	areas repository.AreaRepository
}

func NewSoilTypeService(repo repository.SoilTypeRepository, areas repository.AreaRepository) SoilTypeService {
	return &soilTypeService{repo: repo, areas: areas}
}

func (s *soilTypeService) Create(ctx context.Context, req dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	st := &model.SoilType{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: st.ID, Name: st.Name, Description: st.Description}, nil
}

func (s *soilTypeService) FindAll(ctx context.Context) ([]dto.ReferenceResponse, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReferenceResponse, 0, len(types))
	for _, st := range types {
		result = append(result, dto.ReferenceResponse{ID: st.ID, Name: st.Name, Description: st.Description})
	}
	return result, nil
}

func (s *soilTypeService) Update(ctx context.Context, id uint, req dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSoilTypeNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != st.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateName
		}
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = req.Description
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: st.ID, Name: st.Name, Description: st.Description}, nil
}

func (s *soilTypeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSoilTypeNotFound
		}
		return err
	}
	inUse, err := s.areas.ExistsBySoilTypeID(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrSoilTypeInUse
	}
	return s.repo.Delete(ctx, id)
}

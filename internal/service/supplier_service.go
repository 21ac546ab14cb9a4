package service

import (
	"context"
	"errors"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (dto.SupplierResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		Phone:         s.Phone,
		Email:         s.Email,
		Website:       s.Website,
		ContactPerson: s.ContactPerson,
		Address:       s.Address,
		Industry:      s.Industry,
		Notes:         s.Notes,
		Image:         s.Image,
		Active:        s.Active,
	}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Industry:      req.Industry,
		Notes:         req.Notes,
		Image:         req.Image,
		Active:        true,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		result = append(result, mapSupplier(sup))
	}
	return result, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SupplierResponse{}, apierror.NotFound("supplier not found")
		}
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SupplierResponse{}, apierror.NotFound("supplier not found")
		}
		return dto.SupplierResponse{}, err
	}

	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.Phone != nil {
		sup.Phone = req.Phone
	}
	if req.Email != nil {
		sup.Email = req.Email
	}
	if req.Website != nil {
		sup.Website = req.Website
	}
	if req.ContactPerson != nil {
		sup.ContactPerson = req.ContactPerson
	}
	if req.Address != nil {
		sup.Address = req.Address
	}
	if req.Industry != nil {
		sup.Industry = req.Industry
	}
	if req.Notes != nil {
		sup.Notes = req.Notes
	}
	if req.Image != nil {
		sup.Image = req.Image
	}
	if req.Active != nil {
		sup.Active = *req.Active
	}

	if err := s.repo.Update(ctx, sup); err != nil {
		return dto.SupplierResponse{}, err
	}
	return mapSupplier(*sup), nil
}

func (s *supplierService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("supplier not found")
		}
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

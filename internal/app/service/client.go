package service

import (
	"context"
	"fmt"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"

	"github.com/sirupsen/logrus"
)

type ClientStore interface {
	IndividualRegistered(ctx context.Context, pesel string) (bool, error)
	CompanyExists(ctx context.Context, krs string) (bool, error)
	GetIndividual(ctx context.Context, pesel string) (*ds.Individual, error)
	GetCompany(ctx context.Context, krs string) (*ds.Company, error)
	ListIndividuals(ctx context.Context) ([]ds.Individual, error)
	ListCompanies(ctx context.Context) ([]ds.Company, error)
	CreateIndividual(ctx context.Context, individual *ds.Individual) error
	CreateCompany(ctx context.Context, company *ds.Company) error
	UpdateIndividual(ctx context.Context, individual *ds.Individual) error
	UpdateCompany(ctx context.Context, company *ds.Company) error
	SoftDeleteIndividual(ctx context.Context, pesel string, at time.Time) (bool, error)
}

type ClientsSummary struct {
	Individuals  []ds.Individual
	Companies    []ds.Company
	TotalClients int
}

type ClientService struct {
	store ClientStore
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewClientService(store ClientStore, log logrus.FieldLogger) *ClientService {
	return &ClientService{store: store, log: log, now: time.Now}
}

func (s *ClientService) WithClock(now func() time.Time) *ClientService {
	s.now = now
	return s
}

func (s *ClientService) ListClients(ctx context.Context) (*ClientsSummary, error) {
	individuals, err := s.ListIndividuals(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return &ClientsSummary{
		Individuals:  individuals,
		Companies:    companies,
		TotalClients: len(individuals) + len(companies),
	}, nil
}

// ListIndividuals - только не удалённые физ. лица
func (s *ClientService) ListIndividuals(ctx context.Context) ([]ds.Individual, error) {
	individuals, err := s.store.ListIndividuals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list individuals: %w", err)
	}
	return individuals, nil
}

func (s *ClientService) ListCompanies(ctx context.Context) ([]ds.Company, error) {
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// AddIndividual: PESEL удалённого клиента повторно не регистрируется
func (s *ClientService) AddIndividual(ctx context.Context, req dto.AddIndividualRequest) (*ds.Individual, error) {
	registered, err := s.store.IndividualRegistered(ctx, req.Pesel)
	if err != nil {
		return nil, fmt.Errorf("check individual: %w", err)
	}
	if registered {
		return nil, apperr.Conflictf("individual with PESEL %s already exists", req.Pesel)
	}

	individual := &ds.Individual{
		Pesel:       req.Pesel,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.CreateIndividual(ctx, individual); err != nil {
		return nil, fmt.Errorf("create individual: %w", err)
	}

	s.log.WithField("pesel", individual.Pesel).Info("individual added")
	return individual, nil
}

func (s *ClientService) AddCompany(ctx context.Context, req dto.AddCompanyRequest) (*ds.Company, error) {
	exists, err := s.store.CompanyExists(ctx, req.Krs)
	if err != nil {
		return nil, fmt.Errorf("check company: %w", err)
	}
	if exists {
		return nil, apperr.Conflictf("company with KRS %s already exists", req.Krs)
	}

	company := &ds.Company{
		Krs:         req.Krs,
		Name:        req.Name,
		Address:     req.Address,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.log.WithField("krs", company.Krs).Info("company added")
	return company, nil
}

func (s *ClientService) UpdateIndividual(ctx context.Context, req dto.UpdateIndividualRequest) (*ds.Individual, error) {
	individual, err := s.store.GetIndividual(ctx, req.Pesel)
	if err != nil {
		return nil, fmt.Errorf("get individual: %w", err)
	}
	if individual == nil {
		return nil, apperr.NotFoundf("individual with PESEL %s not found", req.Pesel)
	}

	assign(&individual.FirstName, req.FirstName)
	assign(&individual.LastName, req.LastName)
	assign(&individual.Address, req.Address)
	assign(&individual.Email, req.Email)
	assign(&individual.PhoneNumber, req.PhoneNumber)

	if err := s.store.UpdateIndividual(ctx, individual); err != nil {
		return nil, fmt.Errorf("update individual: %w", err)
	}
	return individual, nil
}

func (s *ClientService) UpdateCompany(ctx context.Context, req dto.UpdateCompanyRequest) (*ds.Company, error) {
	company, err := s.store.GetCompany(ctx, req.Krs)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if company == nil {
		return nil, apperr.NotFoundf("company with KRS %s not found", req.Krs)
	}

	assign(&company.Name, req.Name)
	assign(&company.Address, req.Address)
	assign(&company.Email, req.Email)
	assign(&company.PhoneNumber, req.PhoneNumber)

	if err := s.store.UpdateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// DeleteIndividual - мягкое удаление
func (s *ClientService) DeleteIndividual(ctx context.Context, pesel string) error {
	if len(pesel) != 11 {
		return apperr.Invalid("PESEL must be 11 characters")
	}

	deleted, err := s.store.SoftDeleteIndividual(ctx, pesel, s.now().UTC())
	if err != nil {
		return fmt.Errorf("delete individual: %w", err)
	}
	if !deleted {
		return apperr.NotFoundf("individual with PESEL %s not found", pesel)
	}

	s.log.WithField("pesel", pesel).Info("individual soft-deleted")
	return nil
}

// DeleteCompany: компании не удаляются
func (s *ClientService) DeleteCompany(ctx context.Context, krs string) error {
	return apperr.Conflictf("company cannot be deleted")
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

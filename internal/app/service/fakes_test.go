package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"revenue/internal/app/apperr"
	"revenue/internal/app/ds"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeClients struct {
	individuals map[string]*ds.Individual
	companies   map[string]*ds.Company
	err         error
}

func newFakeClients() *fakeClients {
	return &fakeClients{
		individuals: map[string]*ds.Individual{},
		companies:   map[string]*ds.Company{},
	}
}

func (f *fakeClients) IndividualExists(_ context.Context, pesel string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	i, ok := f.individuals[pesel]
	return ok && !i.IsDeleted(), nil
}

func (f *fakeClients) IndividualRegistered(_ context.Context, pesel string) (bool, error) {
	_, ok := f.individuals[pesel]
	return ok, f.err
}

func (f *fakeClients) CompanyExists(_ context.Context, krs string) (bool, error) {
	_, ok := f.companies[krs]
	return ok, f.err
}

func (f *fakeClients) GetIndividual(_ context.Context, pesel string) (*ds.Individual, error) {
	i, ok := f.individuals[pesel]
	if !ok || i.IsDeleted() {
		return nil, f.err
	}
	cp := *i
	return &cp, f.err
}

func (f *fakeClients) GetCompany(_ context.Context, krs string) (*ds.Company, error) {
	c, ok := f.companies[krs]
	if !ok {
		return nil, f.err
	}
	cp := *c
	return &cp, f.err
}

func (f *fakeClients) ListIndividuals(context.Context) ([]ds.Individual, error) {
	var out []ds.Individual
	for _, i := range f.individuals {
		if !i.IsDeleted() {
			out = append(out, *i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Pesel < out[b].Pesel })
	return out, f.err
}

func (f *fakeClients) ListCompanies(context.Context) ([]ds.Company, error) {
	var out []ds.Company
	for _, c := range f.companies {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Krs < out[b].Krs })
	return out, f.err
}

func (f *fakeClients) CreateIndividual(_ context.Context, i *ds.Individual) error {
	cp := *i
	f.individuals[i.Pesel] = &cp
	return f.err
}

func (f *fakeClients) CreateCompany(_ context.Context, c *ds.Company) error {
	cp := *c
	f.companies[c.Krs] = &cp
	return f.err
}

func (f *fakeClients) UpdateIndividual(ctx context.Context, i *ds.Individual) error {
	return f.CreateIndividual(ctx, i)
}

func (f *fakeClients) UpdateCompany(ctx context.Context, c *ds.Company) error {
	return f.CreateCompany(ctx, c)
}

func (f *fakeClients) SoftDeleteIndividual(_ context.Context, pesel string, at time.Time) (bool, error) {
	i, ok := f.individuals[pesel]
	if !ok || i.IsDeleted() {
		return false, f.err
	}
	i.DeletedAt = &at
	return true, f.err
}

type fakeCatalog struct {
	software map[int]*ds.Software
}

func newFakeCatalog(items ...ds.Software) *fakeCatalog {
	c := &fakeCatalog{software: map[int]*ds.Software{}}
	for i := range items {
		c.software[items[i].ID] = &items[i]
	}
	return c
}

func (f *fakeCatalog) GetSoftware(_ context.Context, id int) (*ds.Software, error) {
	return f.software[id], nil
}

func (f *fakeCatalog) ListSoftware(context.Context) ([]ds.Software, error) {
	var out []ds.Software
	for _, s := range f.software {
		out = append(out, *s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

type fakeDiscounts struct {
	discounts []ds.Discount
}

func (f *fakeDiscounts) ListActiveDiscounts(_ context.Context, now time.Time) ([]ds.Discount, error) {
	var out []ds.Discount
	for _, d := range f.discounts {
		if d.ActiveAt(now) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDiscounts) CreateDiscount(_ context.Context, d *ds.Discount) error {
	d.ID = len(f.discounts) + 1
	f.discounts = append(f.discounts, *d)
	return nil
}

type fakeContracts struct {
	contracts map[int]*ds.Contract
	deleteErr error
	updates   int
}

func newFakeContracts(items ...ds.Contract) *fakeContracts {
	f := &fakeContracts{contracts: map[int]*ds.Contract{}}
	for i := range items {
		f.contracts[items[i].ID] = &items[i]
	}
	return f
}

func (f *fakeContracts) NextContractID(context.Context) (int, error) {
	max := 0
	for id := range f.contracts {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (f *fakeContracts) CreateContract(_ context.Context, c *ds.Contract) error {
	cp := *c
	f.contracts[c.ID] = &cp
	return nil
}

func (f *fakeContracts) GetContract(_ context.Context, id int) (*ds.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContracts) UpdateContract(_ context.Context, c *ds.Contract) error {
	f.updates++
	cp := *c
	f.contracts[c.ID] = &cp
	return nil
}

func (f *fakeContracts) DeleteContract(_ context.Context, id int) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	_, ok := f.contracts[id]
	delete(f.contracts, id)
	return ok, nil
}

func (f *fakeContracts) ListContracts(context.Context) ([]ds.Contract, error) {
	var out []ds.Contract
	for _, c := range f.contracts {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (f *fakeContracts) HasActiveSubscription(_ context.Context, pesel, krs string, softwareID int, now time.Time) (bool, error) {
	for _, c := range f.contracts {
		if c.SoftwareID != softwareID || !c.IsSigned || !c.SoftwareDeadline.After(now) {
			continue
		}
		if pesel != "" && c.IndividualPesel != nil && *c.IndividualPesel == pesel {
			return true, nil
		}
		if krs != "" && c.CompanyKrs != nil && *c.CompanyKrs == krs {
			return true, nil
		}
	}
	return false, nil
}

type fakeCurrency struct {
	rates map[string]decimal.Decimal
	calls int
}

func (f *fakeCurrency) GetRate(_ context.Context, code string) (decimal.Decimal, error) {
	f.calls++
	rate, ok := f.rates[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, errUnsupported(code)
	}
	return rate, nil
}

type fakeReports struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeReports() *fakeReports {
	return &fakeReports{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeReports) PutObject(_ context.Context, name string, data []byte, contentType string) error {
	f.objects[name] = data
	f.types[name] = contentType
	return nil
}

func (f *fakeReports) PresignedURL(_ context.Context, name string) (string, error) {
	return "http://minio.local/revenue-reports/" + name + "?X-Amz-Signature=test", nil
}

func errUnsupported(code string) error {
	return apperr.Invalid("currency %s not supported", strings.ToUpper(code))
}

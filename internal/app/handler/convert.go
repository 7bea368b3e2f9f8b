package handler

import (
	"revenue/internal/app/ds"
	"revenue/internal/app/dto"
	"revenue/internal/app/service"
)

func toIndividualResponse(i ds.Individual) dto.IndividualResponse {
	return dto.IndividualResponse{
		Pesel:       i.Pesel,
		FirstName:   i.FirstName,
		LastName:    i.LastName,
		Address:     i.Address,
		Email:       i.Email,
		PhoneNumber: i.PhoneNumber,
	}
}

func toCompanyResponse(c ds.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Krs:         c.Krs,
		Name:        c.Name,
		Address:     c.Address,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

func toIndividualList(individuals []ds.Individual) []dto.IndividualResponse {
	out := make([]dto.IndividualResponse, len(individuals))
	for i, individual := range individuals {
		out[i] = toIndividualResponse(individual)
	}
	return out
}

func toCompanyList(companies []ds.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, len(companies))
	for i, company := range companies {
		out[i] = toCompanyResponse(company)
	}
	return out
}

func toSoftwareResponse(s ds.Software) dto.SoftwareResponse {
	return dto.SoftwareResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		CurrentVersion: s.CurrentVersion,
		Price:          s.Price,
		Category: dto.CategoryResponse{
			ID:   s.Category.ID,
			Name: s.Category.Name,
		},
	}
}

func toDiscountResponse(d ds.Discount) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:         d.ID,
		Percentage: d.Percentage,
		Start:      d.Start,
		End:        d.End,
	}
}

func toContractResponse(c ds.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:                     c.ID,
		IndividualPesel:        c.IndividualPesel,
		CompanyKrs:             c.CompanyKrs,
		SoftwareID:             c.SoftwareID,
		DiscountID:             c.DiscountID,
		Start:                  c.Start,
		End:                    c.End,
		SoftwareDeadline:       c.SoftwareDeadline,
		AdditionalSupportYears: c.AdditionalSupportYears(),
		IsSigned:               c.IsSigned,
		IsPaid:                 c.IsPaid,
		ToPay:                  c.ToPay,
		Paid:                   c.Paid,
		Remaining:              c.Remaining(),
	}
}

func toPaymentResponse(r *service.PaymentResult) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ContractID: r.Contract.ID,
		Outcome:    r.Outcome.String(),
		Paid:       r.Contract.Paid,
		ToPay:      r.Contract.ToPay,
		Remaining:  r.Contract.Remaining(),
		IsPaid:     r.Contract.IsPaid,
		IsSigned:   r.Contract.IsSigned,
	}
	if r.Outcome == service.ContractExpired {
		refund := r.Refund.StringFixed(2)
		resp.Refund = &refund
	}
	return resp
}

func toRevenueResponse(r *service.Revenue) dto.RevenueResponse {
	return dto.RevenueResponse{
		CurrentRevenue:   r.CurrentRevenue,
		PredictedRevenue: r.PredictedRevenue,
		Currency:         r.Currency,
		ExchangeRate:     r.ExchangeRate,
		TotalContracts:   r.TotalContracts,
		PaidContracts:    r.PaidContracts,
		UnpaidContracts:  r.UnpaidContracts,
		SoftwareName:     r.SoftwareName,
	}
}

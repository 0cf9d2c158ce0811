package mca

import (
	"strings"

	"compliancedesk/cmd/internal/domain/entity"
)

type companyResponse struct {
	CIN                 string  `json:"cin"`
	CompanyName         string  `json:"companyName"`
	ROCCode             string  `json:"rocCode"`
	DateOfIncorporation string  `json:"dateOfIncorporation"`
	Email               string  `json:"emailId"`
	RegisteredAddress   string  `json:"registeredAddress"`
	AuthorizedCapital   float64 `json:"authorizedCapital"`
	PaidUpCapital       float64 `json:"paidUpCapital"`
	NumberOfDirectors   int     `json:"numberOfDirectors"`
	CompanyStatus       string  `json:"companyStatus"`
	CompanyCategory     string  `json:"companyCategory"`
	LastAGMDate         string  `json:"lastAgmDate"`
}

func (c *companyResponse) ToDomain() *entity.Company {
	return &entity.Company{
		CINNumber:           c.CIN,
		CompanyName:         c.CompanyName,
		ROCName:             c.ROCCode,
		DateOfIncorporation: c.DateOfIncorporation,
		EmailID:             c.Email,
		RegisteredAddress:   c.RegisteredAddress,
		AuthorizedCapital:   c.AuthorizedCapital,
		PaidUpCapital:       c.PaidUpCapital,
		NumberOfDirectors:   c.NumberOfDirectors,
		CompanyStatus:       translateStatus(c.CompanyStatus),
		CompanyType:         translateCategory(c.CompanyCategory),
		AGMDate:             c.LastAGMDate,
	}
}

func translateStatus(status string) entity.EntityStatus {
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return entity.EntityStatusActive
	case "INACTIVE", "DORMANT":
		return entity.EntityStatusInactive
	case "UNDER PROCESS OF STRIKING OFF":
		return entity.EntityStatusUnderProcess
	case "STRIKE OFF", "STRUCK OFF":
		return entity.EntityStatusStruckOff
	case "AMALGAMATED":
		return entity.EntityStatusAmalgamated
	default:
		return entity.EntityStatusActive
	}
}

func translateCategory(category string) entity.CompanyType {
	switch strings.ToUpper(category) {
	case "PUBLIC":
		return entity.CompanyTypePublic
	case "ONE PERSON COMPANY":
		return entity.CompanyTypeOnePerson
	case "SECTION 8":
		return entity.CompanyTypeSection8
	case "GOVERNMENT":
		return entity.CompanyTypeGovernment
	default:
		return entity.CompanyTypePrivate
	}
}

package services

import (
	"errors"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func toItemDetails(items []domain.PaymentItem) []laybuy.ItemDetails {
	details := make([]laybuy.ItemDetails, 0, len(items))
	for _, item := range items {
		details = append(details, laybuy.ItemDetails{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       laybuy.NewAmount(item.Price),
		})
	}
	return details
}

func toAddressDetails(a *domain.Address) *laybuy.AddressDetails {
	return &laybuy.AddressDetails{
		Name:     joinName(a.FirstName, a.LastName),
		Phone:    a.Phone,
		Address1: a.Address1,
		Address2: a.Address2,
		Suburb:   a.County,
		City:     a.City,
		State:    a.StateProvince,
		Postcode: a.ZipPostalCode,
		Country:  a.Country,
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

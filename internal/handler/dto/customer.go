// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/custview/custview/internal/model"
)

// CustomerResponse is one record as it appears on the wire.
type CustomerResponse struct {
	Sno          int64     `json:"sno"`
	CustomerName string    `json:"customer_name"`
	Age          int       `json:"age"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListCustomersQuery represents query parameters for listing customers.
type ListCustomersQuery struct {
	Page   int
	SortBy string
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToCustomerResponse converts a Customer model to a CustomerResponse DTO.
func ToCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		Sno:          c.Sno,
		CustomerName: c.CustomerName,
		Age:          c.Age,
		Phone:        c.Phone,
		Location:     c.Location,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCustomerListResponse converts customers to a JSON array body.
// An empty set yields an empty, non-nil slice so it encodes as [].
func ToCustomerListResponse(customers []*model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		if c == nil {
			continue
		}
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

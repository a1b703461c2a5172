// Package model defines domain entities for the application.
package model

import "time"

// Customer is one row of the customers table.
type Customer struct {
	Sno          int64     `json:"sno"`
	CustomerName string    `json:"customer_name"`
	Age          int       `json:"age"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
}

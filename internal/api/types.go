package api

import (
	"errors"

	"github.com/azubair/partscan/internal/model"
)

// sparePartRequest is the JSON body for creating or updating a spare part.
// Timestamps and availability are server-derived and ignored on input.
type sparePartRequest struct {
	PartName     string         `json:"part_name"`
	Category     string         `json:"category"`
	PartNumber   string         `json:"part_number"`
	Manufacturer string         `json:"manufacturer"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	Quantity     int            `json:"quantity"`
	MinStock     int            `json:"min_stock"`
	CarModel     model.CarModel `json:"car_model"`
	Supplier     string         `json:"supplier"`
}

// validate checks the request's required fields and value ranges.
func (r *sparePartRequest) validate() error {
	switch {
	case r.PartName == "":
		return errors.New("part_name is required")
	case r.Category == "":
		return errors.New("category is required")
	case r.PartNumber == "":
		return errors.New("part_number is required")
	case r.Manufacturer == "":
		return errors.New("manufacturer is required")
	case r.Price < 0:
		return errors.New("price must be non-negative")
	case r.Quantity < 0:
		return errors.New("quantity must be non-negative")
	case r.MinStock < 0:
		return errors.New("min_stock must be non-negative")
	case r.CarModel.Manufacturer == "" || r.CarModel.Model == "" || r.CarModel.Year == 0:
		return errors.New("car_model requires manufacturer, model, and year")
	}
	return nil
}

// toModel converts the request into a storage model.
func (r *sparePartRequest) toModel() *model.SparePart {
	return &model.SparePart{
		PartName:     r.PartName,
		Category:     r.Category,
		PartNumber:   r.PartNumber,
		Manufacturer: r.Manufacturer,
		Description:  r.Description,
		Price:        r.Price,
		Quantity:     r.Quantity,
		MinStock:     r.MinStock,
		CarModel:     r.CarModel,
		Supplier:     r.Supplier,
	}
}

// carModelRequest is the JSON body for creating a car model.
type carModelRequest struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
}

// validate checks the request's required fields.
func (r *carModelRequest) validate() error {
	switch {
	case r.Manufacturer == "":
		return errors.New("manufacturer is required")
	case r.Model == "":
		return errors.New("model is required")
	case r.Year <= 0:
		return errors.New("year must be positive")
	}
	return nil
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

package dto

import (
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreateVendorRequest defines the structure for creating a new vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
}

// UpdateVendorRequest defines the updatable fields of a vendor.
type UpdateVendorRequest struct {
	Name          *string              `json:"name"`
	ContactPerson *string              `json:"contactPerson"`
	Email         *string              `json:"email" binding:"omitempty,email"`
	Phone         *string              `json:"phone"`
	Status        *domain.VendorStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// VendorResponse defines the API representation of a vendor.
type VendorResponse struct {
	VendorID      string              `json:"vendorID"`
	Name          string              `json:"name"`
	ContactPerson string              `json:"contactPerson"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Status        domain.VendorStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// VendorListResponse is a paginated list of vendors.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Pagination
}

// ToVendorResponse converts a domain.Vendor to its API representation.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
	}
}

// ToVendorListResponse converts a page of vendors.
func ToVendorListResponse(vendors []domain.Vendor, page, pageSize, total int) VendorListResponse {
	items := make([]VendorResponse, len(vendors))
	for i := range vendors {
		items[i] = ToVendorResponse(&vendors[i])
	}
	return VendorListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}

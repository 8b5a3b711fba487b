package domain

// VendorStatus indicates whether a vendor is available for new products.
type VendorStatus string

const (
	VendorActive   VendorStatus = "ACTIVE"
	VendorInactive VendorStatus = "INACTIVE"
)

// Vendor is a supplier whose products appear in the catalog.
type Vendor struct {
	VendorID      string       `json:"vendorID"`
	Name          string       `json:"name"`
	ContactPerson string       `json:"contactPerson"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Status        VendorStatus `json:"status"`
	AuditFields
}

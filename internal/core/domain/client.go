package domain

// ClientStatus indicates whether a client can place new orders.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// Client is the billing identity an order is raised against.
type Client struct {
	ClientID    string       `json:"clientID"`
	DisplayName string       `json:"displayName"`
	Company     string       `json:"company"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Status      ClientStatus `json:"status"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreateClientRequest defines the structure for creating a new client.
type CreateClientRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Company     string `json:"company"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
}

// UpdateClientRequest defines the updatable fields of a client.
type UpdateClientRequest struct {
	DisplayName *string              `json:"displayName"`
	Company     *string              `json:"company"`
	Email       *string              `json:"email" binding:"omitempty,email"`
	Phone       *string              `json:"phone"`
	Status      *domain.ClientStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ClientResponse defines the API representation of a client.
type ClientResponse struct {
	ClientID    string              `json:"clientID"`
	DisplayName string              `json:"displayName"`
	Company     string              `json:"company"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Status      domain.ClientStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ClientListResponse is a paginated list of clients.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Pagination
}

// ToClientResponse converts a domain.Client to its API representation.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		DisplayName: c.DisplayName,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}

// ToClientListResponse converts a page of clients.
func ToClientListResponse(clients []domain.Client, page, pageSize, total int) ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i := range clients {
		items[i] = ToClientResponse(&clients[i])
	}
	return ClientListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}

// Package dto holds the transport-facing representations of user lists.
package dto

import (
	"tally/internal/domain/userlist"
)

// UserListItemResponse is one roster entry.
type UserListItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CorpUserID string `json:"corp_user_id"`
	Area       string `json:"area"`
	CostCenter string `json:"cost_center"`
}

// UserListResponse is the transport representation of a service roster.
type UserListResponse struct {
	UserListID  string                  `json:"user_list_id"`
	ServiceID   string                  `json:"service_id"`
	UsersNumber int                     `json:"users_number"`
	Items       []*UserListItemResponse `json:"items"`
}

// FromUserList maps a domain user list to its response representation.
func FromUserList(ul *userlist.UserList) *UserListResponse {
	items := make([]*UserListItemResponse, 0, ul.UsersNumber())
	for _, item := range ul.Items() {
		items = append(items, &UserListItemResponse{
			ID:         item.ID().String(),
			Name:       item.Name(),
			Email:      item.Email(),
			CorpUserID: item.CorpUserID(),
			Area:       item.Area(),
			CostCenter: item.CostCenter(),
		})
	}

	return &UserListResponse{
		UserListID:  ul.ID().String(),
		ServiceID:   ul.ServiceID().String(),
		UsersNumber: ul.UsersNumber(),
		Items:       items,
	}
}

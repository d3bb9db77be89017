// Package userlist contains the user list aggregate: the roster of people
// entitled to a service. Exactly one list exists per service; uploads replace
// it wholesale.
package userlist

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tally/internal/shared/errors"
	"tally/internal/shared/validation"
)

// UserListItem is one roster entry.
type UserListItem struct {
	userListItemID uuid.UUID
	name           string
	email          string
	corpUserID     string
	area           string
	costCenter     string
}

// NewUserListItem creates a roster entry with a fresh identity.
func NewUserListItem(name, email, corpUserID, area, costCenter string) *UserListItem {
	return &UserListItem{
		userListItemID: uuid.New(),
		name:           strings.TrimSpace(name),
		email:          strings.ToLower(strings.TrimSpace(email)),
		corpUserID:     strings.TrimSpace(corpUserID),
		area:           strings.TrimSpace(area),
		costCenter:     strings.TrimSpace(costCenter),
	}
}

// ReconstructUserListItem rebuilds a roster entry from persistence.
func ReconstructUserListItem(id uuid.UUID, name, email, corpUserID, area, costCenter string) *UserListItem {
	return &UserListItem{
		userListItemID: id,
		name:           name,
		email:          email,
		corpUserID:     corpUserID,
		area:           area,
		costCenter:     costCenter,
	}
}

func (i *UserListItem) ID() uuid.UUID { return i.userListItemID }

func (i *UserListItem) Name() string { return i.name }

func (i *UserListItem) Email() string { return i.email }

func (i *UserListItem) CorpUserID() string { return i.corpUserID }

func (i *UserListItem) Area() string { return i.area }

func (i *UserListItem) CostCenter() string { return i.costCenter }

// UserList is the aggregate root for a service roster. usersNumber is derived
// from the item count and never stored independently.
type UserList struct {
	userListID uuid.UUID
	serviceID  uuid.UUID
	items      []*UserListItem
}

// NewUserList creates a roster for a service. Callers reject empty uploads
// before constructing; Validate enforces the at-least-one-item rule again.
func NewUserList(serviceID uuid.UUID, items []*UserListItem) *UserList {
	return &UserList{
		userListID: uuid.New(),
		serviceID:  serviceID,
		items:      items,
	}
}

// ReconstructUserList rebuilds a roster from persistence.
func ReconstructUserList(userListID, serviceID uuid.UUID, items []*UserListItem) *UserList {
	return &UserList{
		userListID: userListID,
		serviceID:  serviceID,
		items:      items,
	}
}

func (ul *UserList) ID() uuid.UUID { return ul.userListID }

func (ul *UserList) ServiceID() uuid.UUID { return ul.serviceID }

func (ul *UserList) Items() []*UserListItem { return ul.items }

// UsersNumber is the derived roster size.
func (ul *UserList) UsersNumber() int { return len(ul.items) }

// Clone deep-copies the roster under another service with fresh identities.
func (ul *UserList) Clone(serviceID uuid.UUID) *UserList {
	clone := &UserList{
		userListID: uuid.New(),
		serviceID:  serviceID,
	}
	for _, item := range ul.items {
		clone.items = append(clone.items, &UserListItem{
			userListItemID: uuid.New(),
			name:           item.name,
			email:          item.email,
			corpUserID:     item.corpUserID,
			area:           item.area,
			costCenter:     item.costCenter,
		})
	}
	return clone
}

// Validate runs all checks in one pass and aggregates every problem into a
// single validation error.
func (ul *UserList) Validate() error {
	var problems []string

	if ul.serviceID == uuid.Nil {
		problems = append(problems, "User list service is required")
	}
	if len(ul.items) == 0 {
		problems = append(problems, "User list must have at least one item")
	}
	for idx, item := range ul.items {
		prefix := fmt.Sprintf("User list item %d", idx+1)
		if item.name == "" {
			problems = append(problems, prefix+" name is required")
		}
		if len(item.name) > 50 {
			problems = append(problems, prefix+" name must be at most 50 characters long")
		}
		if !validation.IsEmail(item.email) {
			problems = append(problems, prefix+" email must be a valid email address")
		}
		if item.corpUserID == "" || len(item.corpUserID) > 8 {
			problems = append(problems, prefix+" corporate user id must be between 1 and 8 characters long")
		}
		if len(item.area) > 15 {
			problems = append(problems, prefix+" area must be at most 15 characters long")
		}
		if len(item.costCenter) != 9 {
			problems = append(problems, prefix+" cost center must be exactly 9 characters long")
		}
	}

	if len(problems) > 0 {
		return errors.NewValidationError(strings.Join(problems, ". "))
	}
	return nil
}

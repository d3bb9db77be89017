package userlist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/shared/errors"
)

func validItem() *UserListItem {
	return NewUserListItem("Jane Doe", "jane.doe@example.com", "JD123", "Platform", "CC1234567")
}

func TestNewUserListItem_Normalizes(t *testing.T) {
	item := NewUserListItem("  Jane  ", " Jane.Doe@Example.COM ", " JD123 ", " Platform ", " CC1234567 ")

	assert.Equal(t, "Jane", item.Name())
	assert.Equal(t, "jane.doe@example.com", item.Email())
	assert.Equal(t, "JD123", item.CorpUserID())
	assert.Equal(t, "CC1234567", item.CostCenter())
}

func TestUserList_UsersNumberIsDerived(t *testing.T) {
	ul := NewUserList(uuid.New(), []*UserListItem{validItem(), validItem(), validItem()})
	assert.Equal(t, 3, ul.UsersNumber())
	assert.NoError(t, ul.Validate())
}

func TestUserList_Validate_RequiresAtLeastOneItem(t *testing.T) {
	ul := NewUserList(uuid.New(), nil)

	err := ul.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "User list must have at least one item")
}

func TestUserList_Validate_ItemRules(t *testing.T) {
	tests := []struct {
		name    string
		item    *UserListItem
		wantErr string
	}{
		{"empty name", NewUserListItem("", "a@b.com", "AB1", "IT", "CC1234567"), "name is required"},
		{"bad email", NewUserListItem("Jane", "nope", "AB1", "IT", "CC1234567"), "valid email"},
		{"corp user id too long", NewUserListItem("Jane", "a@b.com", "ABCDEFGHI", "IT", "CC1234567"), "between 1 and 8"},
		{"cost center too short", NewUserListItem("Jane", "a@b.com", "AB1", "IT", "CC123"), "exactly 9"},
		{"cost center too long", NewUserListItem("Jane", "a@b.com", "AB1", "IT", "CC12345678"), "exactly 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ul := NewUserList(uuid.New(), []*UserListItem{tt.item})
			err := ul.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUserList_Validate_CollectsProblemsAcrossItems(t *testing.T) {
	ul := NewUserList(uuid.New(), []*UserListItem{
		NewUserListItem("", "jane@example.com", "JD1", "IT", "CC1234567"),
		NewUserListItem("John", "broken", "JD2", "IT", "CC1234567"),
	})

	err := ul.Validate()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "item 1 name is required")
	assert.Contains(t, appErr.Message, "item 2 email")
}

func TestUserList_Clone(t *testing.T) {
	source := NewUserList(uuid.New(), []*UserListItem{validItem(), validItem()})

	newServiceID := uuid.New()
	clone := source.Clone(newServiceID)

	assert.NotEqual(t, source.ID(), clone.ID())
	assert.Equal(t, newServiceID, clone.ServiceID())
	require.Equal(t, source.UsersNumber(), clone.UsersNumber())
	for i, item := range clone.Items() {
		assert.NotEqual(t, source.Items()[i].ID(), item.ID())
		assert.Equal(t, source.Items()[i].Email(), item.Email())
	}
}

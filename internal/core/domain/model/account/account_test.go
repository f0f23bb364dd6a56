package account_test

import (
	"testing"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	valid := []account.Role{
		account.RoleCustomer,
		account.RoleRestaurant,
		account.RoleCourier,
		account.RoleAdmin,
	}
	for _, role := range valid {
		require.NoError(t, role.Validate(), role.String())
	}

	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(99).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "CUSTOMER", account.RoleCustomer.String())
	assert.Equal(t, "RESTAURANT", account.RoleRestaurant.String())
	assert.Equal(t, "COURIER", account.RoleCourier.String())
	assert.Equal(t, "ADMIN", account.RoleAdmin.String())
	assert.Equal(t, "UNKNOWN", account.Role(99).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		for _, role := range []account.Role{
			account.RoleCustomer, account.RoleRestaurant, account.RoleCourier, account.RoleAdmin,
		} {
			parsed, err := account.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := account.RoleFromString("MANAGER")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("case_sensitive", func(t *testing.T) {
		_, err := account.RoleFromString("customer")
		require.Error(t, err)
	})
}

func TestNewUser(t *testing.T) {
	t.Run("valid_user", func(t *testing.T) {
		user, err := account.NewUser("Ada Lovelace", "ada@example.com", "hash", account.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, user.Validate())
		assert.Equal(t, int64(0), user.ID())
		assert.Equal(t, "Ada Lovelace", user.FullName())
		assert.Equal(t, "ada@example.com", user.Email())
		assert.Equal(t, account.RoleCustomer, user.Role())
	})

	t.Run("name_too_short", func(t *testing.T) {
		_, err := account.NewUser("A", "ada@example.com", "hash", account.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("email_too_short", func(t *testing.T) {
		_, err := account.NewUser("Ada Lovelace", "a@b", "hash", account.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing_password_hash", func(t *testing.T) {
		_, err := account.NewUser("Ada Lovelace", "ada@example.com", "", account.RoleCustomer)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := account.NewUser("Ada Lovelace", "ada@example.com", "hash", account.RoleUnknown)
		require.Error(t, err)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("valid_restore", func(t *testing.T) {
		user, err := account.RestoreUser(7, "Ada Lovelace", "ada@example.com", "hash", account.RoleCourier)

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID())
	})

	t.Run("missing_id", func(t *testing.T) {
		_, err := account.RestoreUser(0, "Ada Lovelace", "ada@example.com", "hash", account.RoleCourier)
		require.Error(t, err)
	})
}

func TestUser_Validate_NotConstructed(t *testing.T) {
	var user account.User
	require.ErrorIs(t, user.Validate(), account.ErrUserIsNotConstructed)
}

func TestNewActor(t *testing.T) {
	t.Run("valid_actor", func(t *testing.T) {
		actor, err := account.NewActor(3, account.RoleCourier)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, int64(3), actor.ID())
		assert.Equal(t, account.RoleCourier, actor.Role())
		assert.Nil(t, actor.RestaurantID())
	})

	t.Run("with_restaurant", func(t *testing.T) {
		actor, err := account.NewActor(5, account.RoleRestaurant)
		require.NoError(t, err)

		owner := actor.WithRestaurant(11)

		require.NotNil(t, owner.RestaurantID())
		assert.Equal(t, int64(11), *owner.RestaurantID())
		// Original actor is unchanged.
		assert.Nil(t, actor.RestaurantID())
	})

	t.Run("missing_id", func(t *testing.T) {
		_, err := account.NewActor(0, account.RoleCustomer)
		require.Error(t, err)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := account.NewActor(1, account.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var actor account.Actor
		require.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("hash_and_verify", func(t *testing.T) {
		hash, err := account.HashPassword("s3cret-pw")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pw", hash)
		assert.True(t, account.CheckPassword("s3cret-pw", hash))
		assert.False(t, account.CheckPassword("wrong-pw", hash))
	})

	t.Run("too_short", func(t *testing.T) {
		_, err := account.HashPassword("pw")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

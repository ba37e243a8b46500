package util_test

import (
	"os"
	"testing"

	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleRecruiter}

	token, err := util.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := util.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, model.RoleRecruiter, role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := util.ParseToken("not-a-token")
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	// signed elsewhere with a different secret
	foreign := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwicm9sZSI6ImFkbWluIn0." +
		"cThIIoDvwdueQB468K5xDc5633seEFoqwxjF_xSJyQQ"
	_, _, err := util.ParseToken(foreign)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

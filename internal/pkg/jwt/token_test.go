package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "souqin-auth",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "+966501234567", models.RoleAffiliate, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "+966501234567", (*claims)["phone"])
	assert.Equal(t, string(models.RoleAffiliate), (*claims)["role"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(uuid.New(), "+966501234567", models.RoleMerchant, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"carelink-backend/config"
	"carelink-backend/models"
)

func setTestConf(t *testing.T) {
	t.Helper()
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
}

func TestGetToken(t *testing.T) {
	setTestConf(t)

	t.Run(`token carries subject, name and role`, func(t *testing.T) {
		tokenString, err := GetToken("u1", "Anna Weber", models.UserRoleCaregiver)
		require.Nil(t, err)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.Nil(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "u1", claims["sub"])
		require.Equal(t, "Anna Weber", claims["name"])
		require.Equal(t, string(models.UserRoleCaregiver), claims["role"])
		require.NotNil(t, claims["exp"])
	})

	t.Run(`a tampered token fails verification`, func(t *testing.T) {
		tokenString, err := GetToken("u1", "Anna Weber", models.UserRoleCaregiver)
		require.Nil(t, err)

		_, err = jwt.Parse(tokenString+"x", func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NotNil(t, err)
	})
}

func TestGetRefreshToken(t *testing.T) {
	setTestConf(t)

	t.Run(`refresh token has no role claim`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("u1", "Anna Weber")
		require.Nil(t, err)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.Nil(t, err)

		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "u1", claims["sub"])
		_, hasRole := claims["role"]
		require.False(t, hasRole)
	})
}

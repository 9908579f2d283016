package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/identity"
)

const ContextPrincipal = "principal"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortAuth(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortAuth(c, "invalid_authorization_header")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortAuth(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortAuth(c, "invalid_token_claims")
			return
		}

		userID, ok1 := claims["userId"].(string)
		email, ok2 := claims["email"].(string)
		name, _ := claims["name"].(string)
		roleClaim, _ := claims["status"].(string)
		if !ok1 || !ok2 || userID == "" {
			abortAuth(c, "invalid_token_payload")
			return
		}

		// Role normalization happens exactly once, here. Everything past
		// this point compares typed roles, not claim strings.
		c.Set(ContextPrincipal, identity.Principal{
			UserID: userID,
			Email:  email,
			Name:   name,
			Role:   identity.ParseRole(roleClaim),
		})

		c.Next()
	}
}

func abortAuth(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   code,
	})
}

// PrincipalFrom returns the verified principal set by AuthMiddleware.
func PrincipalFrom(c *gin.Context) identity.Principal {
	return c.MustGet(ContextPrincipal).(identity.Principal)
}

package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 30 * 24 * time.Hour

const userContextKey = "currentUser"

// Claims carry only the user ID. Role is deliberately not encoded: the
// gate re-reads the user record on every request, so promotions and
// demotions take effect immediately instead of at token expiry.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user ID
func GenerateToken(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// ParseToken verifies the signature and expiry of a token and returns the
// user ID it was issued for. Expired tokens are reported via
// jwt.ErrTokenExpired; anything else malformed or tampered fails closed.
func ParseToken(tokenStr string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return claims.UserID, nil
}

// AuthRequired validates the bearer token and attaches the current user
// record to the context. The record is always loaded fresh from the
// database so that role changes since token issuance are honored and
// tokens for deleted accounts stop working.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired."})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			}
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token. User not found."})
			c.Abort()
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// AdminRequired enforces that the authenticated caller has the admin role.
// Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// IsOwnerOrAdmin reports whether the caller may act on a resource owned by
// ownerID. Ownership lives on the fetched record, not the URL, so this is a
// predicate for handlers to call after loading the resource rather than a
// route-level middleware.
func IsOwnerOrAdmin(caller *models.User, ownerID uint) bool {
	if caller == nil {
		return false
	}
	return caller.ID == ownerID || caller.IsAdmin()
}

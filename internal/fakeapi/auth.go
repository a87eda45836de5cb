package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bluestrek/internal/apierror"
	"bluestrek/internal/dto"
)

// User is a seeded mock account. The password is stored bcrypt-hashed even
// here so the login path exercises the same comparison the real backend
// runs.
type User struct {
	ID           int64
	Login        string
	Name         string
	PasswordHash []byte
}

// SeedUser hashes the password and returns the account. Panics on a hash
// failure, which only happens on invalid cost parameters.
func SeedUser(id int64, login, name, password string) User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return User{ID: id, Login: login, Name: name, PasswordHash: hash}
}

type sessionClaims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// loginHandler checks the credentials against the seeded users and issues a
// 24h HMAC session token.
func (s *Server) loginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Login == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, apierror.New("login and password are required"))
		return
	}

	var user *User
	for i := range s.users {
		if s.users[i].Login == req.Login {
			user = &s.users[i]
			break
		}
	}
	if user == nil || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
		return
	}

	token, err := s.issueToken(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not issue token"))
		return
	}

	resp := dto.LoginResponse{Message: "Connexion réussie", Token: token}
	resp.User.ID = user.ID
	resp.User.Name = user.Name
	c.JSON(http.StatusOK, resp)
}

func (s *Server) issueToken(u User) (string, error) {
	claims := sessionClaims{
		UserID: u.ID,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// requireAuth validates the Bearer token on every protected route.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}
		c.Next()
	}
}

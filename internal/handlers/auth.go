package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func authUser(u models.User) AuthUser {
	return AuthUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// issueToken signs an access token bound to the server-side session record.
// Logout kills the session, which invalidates the token before its expiry.
func issueToken(st *store.Store, user models.User, secret string, ttl time.Duration) (string, models.Session, error) {
	session := st.CreateSession(user.ID, ttl)

	claims := jwt.MapClaims{
		"userId": user.ID,
		"sid":    session.ID,
		"role":   user.Role,
		"exp":    session.ExpiresAt.Unix(),
		"iat":    session.CreatedAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return token, session, err
}

func Signup(st *store.Store, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/signup"
		defer handlePanic(c, route)

		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not hash password")
			return
		}

		user, err := st.CreateUser(req.Name, req.Email, string(hash), "admin")
		if err == store.ErrEmailTaken {
			respondWithError(c, http.StatusConflict, route, "email already registered")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not create user")
			return
		}

		token, _, err := issueToken(st, user, jwtSecret, accessTTL)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not issue token")
			return
		}

		log.Println("[AUTH] [INFO] user registered:", user.Email)
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": authUser(user)})
	}
}

func Login(st *store.Store, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, ok := st.FindUserByEmail(req.Email)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "invalid credentials")
			return
		}

		token, _, err := issueToken(st, user, jwtSecret, accessTTL)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "could not issue token")
			return
		}

		log.Println("[AUTH] [INFO] login:", user.Email)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": authUser(user)})
	}
}

// Logout deletes the session behind the presented token. The auth middleware
// has already resolved the session id into the context.
func Logout(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("sessionId")
		st.DeleteSession(sessionID)
		log.Println("[AUTH] [INFO] session closed")
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// Me returns the current user for a live session.
func Me(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /auth/me"

		user, ok := st.GetUser(c.GetString("userId"))
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}
		c.JSON(http.StatusOK, authUser(user))
	}
}

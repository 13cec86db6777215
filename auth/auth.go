package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"trasferte/db"
	"trasferte/globals"
	"trasferte/middleware"
	"trasferte/models"
	"trasferte/rdx"
	"trasferte/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// credentialsError is returned for both unknown email and wrong password, so
// a caller cannot probe which of the two failed.
const credentialsError = "Password errata o utente non trovato."

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Email,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// Login handles POST /api/auth/login for the single admin account.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Richiesta non valida")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email e password sono obbligatorie")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, credentialsError)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, credentialsError)
		return
	}

	tokenString, err := generateToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore generazione token")
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": storedUser.UserID,
		"email":  storedUser.Email,
	}, "Accesso effettuato", nil)
}

// Logout handles POST /api/auth/logout. Requires a valid token.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Non autorizzato")
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Failed to remove token from Redis: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Disconnesso", nil)
}

// RefreshToken handles POST /api/auth/refresh, reissuing a token for a
// still-valid session.
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Non autorizzato")
		return
	}

	var storedUser models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": claims.UserID}).Decode(&storedUser); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Non autorizzato")
		return
	}

	tokenString, err := generateToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore generazione token")
		return
	}
	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": tokenString}, "Token aggiornato", nil)
}

// EnsureAdmin seeds the single admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD if it does not exist yet. The password is only applied on
// first creation.
func EnsureAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = globals.AdminEmail
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, admin account not created")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		UserID:   uuid.NewString(),
		Email:    email,
		Password: string(hashed),
		Role:     []string{"admin"},
	}
	if _, err := db.UserCollection.InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin account created for %s", email)
	return nil
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Response is the wire envelope for registration and login. Message doubles
// as the token string on a successful login, matching the published contract.
type Response struct {
	Message         string     `json:"message"`
	IsSuccess       bool       `json:"isSuccess"`
	Errors          []string   `json:"errors,omitempty"`
	TokenExpiryDate *time.Time `json:"tokenExpiryDate,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Response{Message: message, IsSuccess: true})
}

func SuccessToken(w http.ResponseWriter, token string, expiry time.Time) {
	WriteJSON(w, http.StatusOK, Response{Message: token, IsSuccess: true, TokenExpiryDate: &expiry})
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Message: message, IsSuccess: false})
}

func FailWithErrors(w http.ResponseWriter, status int, message string, errs []string) {
	WriteJSON(w, status, Response{Message: message, IsSuccess: false, Errors: errs})
}

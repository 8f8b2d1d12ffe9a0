package httpapi

import (
	"errors"
	"net/http"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/services"
)

// handleRegister implements POST /api/auth/register. Validation failures and
// duplicate emails both answer 409 with the error's message, matching the
// historical contract.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterCandidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if common.IsValidation(err) || common.IsDuplicateEmail(err) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.logger.Error(r.Context(), "register failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleLogin implements POST /api/auth/login. Unknown emails and wrong
// passwords produce the identical 401 body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			http.Error(w, common.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "login failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

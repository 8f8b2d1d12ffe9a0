package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/models"
)

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {

	var req customerPayload
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := s.customers.Create(r.Context(), &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if common.IsDuplicateEmail(err) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.internalError(w, r, "customer create failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerPayload(customer))
}

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.GetAll(r.Context())
	if err != nil {
		s.internalError(w, r, "customer list failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerPayloads(list))
}

func (s *Server) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	customer, err := s.customers.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Customer with ID %s not found.", id), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "customer get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerPayload(customer))
}

func (s *Server) handleCustomerGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	customer, err := s.customers.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Customer with email %s not found.", email), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "customer get by email failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerPayload(customer))
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req customerPayload
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := s.customers.Update(r.Context(), id, &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			http.Error(w, fmt.Sprintf("Customer with ID %s not found.", id), http.StatusNotFound)
		case common.IsDuplicateEmail(err):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			s.internalError(w, r, "customer update failed", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toCustomerPayload(customer))
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.customers.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Customer with ID %s not found.", id), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "customer delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

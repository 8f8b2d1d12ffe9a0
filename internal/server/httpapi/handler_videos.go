package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/models"
)

func (s *Server) handleVideoCreate(w http.ResponseWriter, r *http.Request) {

	var req videoPayload
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	video, err := s.videos.Add(r.Context(), req.toModel())
	if err != nil {
		s.internalError(w, r, "video create failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toVideoPayload(video))
}

func (s *Server) handleVideoList(w http.ResponseWriter, r *http.Request) {
	list, err := s.videos.GetAll(r.Context())
	if err != nil {
		s.internalError(w, r, "video list failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toVideoPayloads(list))
}

func (s *Server) handleVideoGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	video, err := s.videos.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Video with ID %s not found.", id), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "video get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoPayload(video))
}

func (s *Server) handleVideoUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req videoPayload
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	video, err := s.videos.Update(r.Context(), id, req.toModel())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Video with ID %s not found.", id), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "video update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toVideoPayload(video))
}

func (s *Server) handleVideoDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.videos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, fmt.Sprintf("Cannot delete: Video with ID %s not found.", id), http.StatusNotFound)
			return
		}
		s.internalError(w, r, "video delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVideosByCategory(w http.ResponseWriter, r *http.Request) {
	s.writeVideoQuery(w, r, "videos by category failed",
		func() ([]models.Video, error) {
			return s.videos.GetByCategory(r.Context(), r.URL.Query().Get("category"))
		})
}

func (s *Server) handleVideoSearch(w http.ResponseWriter, r *http.Request) {
	s.writeVideoQuery(w, r, "video search failed",
		func() ([]models.Video, error) {
			return s.videos.SearchByTitle(r.Context(), r.URL.Query().Get("title"))
		})
}

func (s *Server) handleVideosFeatured(w http.ResponseWriter, r *http.Request) {
	s.writeVideoQuery(w, r, "featured videos failed",
		func() ([]models.Video, error) {
			return s.videos.GetFeatured(r.Context(), r.URL.Query().Get("category"))
		})
}

func (s *Server) handlePosterUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.videos.GetPosterUploadURL(r.Context())
	if err != nil {
		s.internalError(w, r, "poster upload url failed", err)
		return
	}

	writeJSON(w, http.StatusOK, posterUploadResponse{Key: key, UploadURL: url})
}

func (s *Server) writeVideoQuery(w http.ResponseWriter, r *http.Request, logMsg string, query func() ([]models.Video, error)) {
	list, err := query()
	if err != nil {
		s.internalError(w, r, logMsg, err)
		return
	}
	writeJSON(w, http.StatusOK, toVideoPayloads(list))
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	s.logger.Error(r.Context(), logMsg, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

package http

import (
	"errors"
	"net/http"

	"github.com/askelund/huddle/internal/auth"
	"github.com/askelund/huddle/internal/gallery"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type albumRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	CoverURL    string `json:"cover_url"`
}

func (s *Server) ListAlbumsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albums, err := s.Gallery.GetAllAlbums()
		if err != nil {
			log.Error("Failed to get albums", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get albums")
			return
		}
		writeJSON(w, http.StatusOK, albums)
	}
}

func (s *Server) GetAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		album, err := s.Gallery.GetAlbum(albumID)
		if err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to get album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get album")
			return
		}
		writeJSON(w, http.StatusOK, album)
	}
}

func (s *Server) CreateAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req albumRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			writeFieldErrors(w, map[string]string{"title": "title is required"})
			return
		}

		album := gallery.Album{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			EventDate:   req.EventDate,
			CoverURL:    req.CoverURL,
		}
		if err := s.Gallery.CreateAlbum(album); err != nil {
			log.Error("Failed to create album", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save album")
			return
		}
		writeJSON(w, http.StatusCreated, album)
	}
}

func (s *Server) UpdateAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]

		var req albumRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			writeFieldErrors(w, map[string]string{"title": "title is required"})
			return
		}

		album := gallery.Album{
			ID:          albumID,
			Title:       req.Title,
			Description: req.Description,
			EventDate:   req.EventDate,
			CoverURL:    req.CoverURL,
		}
		if err := s.Gallery.UpdateAlbum(album); err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to update album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save album")
			return
		}
		writeJSON(w, http.StatusOK, album)
	}
}

func (s *Server) DeleteAlbumHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		if err := s.Gallery.DeleteAlbum(albumID); err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to delete album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete album")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type photoRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

func (s *Server) DeletePhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID := mux.Vars(r)["id"]
		if err := s.Gallery.DeletePhoto(photoID); err != nil {
			if errors.Is(err, gallery.ErrPhotoNotFound) {
				writeError(w, http.StatusNotFound, "photo not found")
				return
			}
			log.Error("Failed to delete photo", "photo_id", photoID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete photo")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AddPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		if _, err := s.Gallery.GetAlbum(albumID); err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to get album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get album")
			return
		}

		var req photoRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.URL == "" {
			writeFieldErrors(w, map[string]string{"url": "url is required"})
			return
		}

		photo := gallery.Photo{AlbumID: albumID, URL: req.URL, Caption: req.Caption}
		if err := s.Gallery.AddPhoto(photo); err != nil {
			log.Error("Failed to add photo", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save photo")
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func (s *Server) SubmitPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		player := auth.GetPlayer(r.Context())

		if _, err := s.Gallery.GetAlbum(albumID); err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to get album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get album")
			return
		}

		var req photoRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.URL == "" {
			writeFieldErrors(w, map[string]string{"url": "url is required"})
			return
		}

		sub := gallery.Submission{
			AlbumID:  albumID,
			PlayerID: player.ID,
			URL:      req.URL,
			Caption:  req.Caption,
		}
		if err := s.Gallery.SubmitPhoto(sub); err != nil {
			log.Error("Failed to submit photo", "album_id", albumID, "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save submission")
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func (s *Server) ListPendingSubmissionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := s.Gallery.GetPendingSubmissions()
		if err != nil {
			log.Error("Failed to get pending submissions", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get submissions")
			return
		}
		writeJSON(w, http.StatusOK, subs)
	}
}

type reviewRequest struct {
	Approved bool `json:"approved"`
}

func (s *Server) ReviewSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID := mux.Vars(r)["id"]

		var req reviewRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := s.Gallery.ReviewSubmission(submissionID, req.Approved); err != nil {
			if errors.Is(err, gallery.ErrSubmissionNotFound) {
				writeError(w, http.StatusNotFound, "submission not found")
				return
			}
			log.Error("Failed to review submission", "submission_id", submissionID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to review submission")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type commentRequest struct {
	Body string `json:"body"`
}

func (s *Server) AddCommentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		player := auth.GetPlayer(r.Context())

		var req commentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Body == "" {
			writeFieldErrors(w, map[string]string{"body": "body is required"})
			return
		}

		if _, err := s.Gallery.GetAlbum(albumID); err != nil {
			if errors.Is(err, gallery.ErrAlbumNotFound) {
				writeError(w, http.StatusNotFound, "album not found")
				return
			}
			log.Error("Failed to get album", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get album")
			return
		}

		comment := gallery.Comment{AlbumID: albumID, PlayerID: player.ID, Body: req.Body}
		if err := s.Gallery.AddComment(comment); err != nil {
			log.Error("Failed to add comment", "album_id", albumID, "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save comment")
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func (s *Server) DeleteCommentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID := mux.Vars(r)["id"]
		if err := s.Gallery.DeleteComment(commentID); err != nil {
			if errors.Is(err, gallery.ErrCommentNotFound) {
				writeError(w, http.StatusNotFound, "comment not found")
				return
			}
			log.Error("Failed to delete comment", "comment_id", commentID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete comment")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListCommentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albumID := mux.Vars(r)["id"]
		comments, err := s.Gallery.GetComments(albumID)
		if err != nil {
			log.Error("Failed to get comments", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get comments")
			return
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

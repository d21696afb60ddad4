package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type createPostRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "posts", s.data.listPosts(listOptionsFromQuery(r)))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "post content cannot be empty")
		return
	}
	p := s.data.createPost(userFromContext(r.Context()), req.Content)
	respondCreated(w, "post created", p)
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	p, ok := s.data.likePost(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}
	respondOK(w, "post liked", p)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())
	found, deleted := s.data.deletePost(chi.URLParam(r, "id"), u.ID)
	if !found {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}
	if !deleted {
		respondError(w, http.StatusForbidden, "you can only delete your own posts")
		return
	}
	respondOK(w, "post deleted", nil)
}

package transport

import (
	"net/http"

	"github.com/muhammadheryan/heart2help/model"
)

// ShowUser handler
// @Summary User profile
// @Description Public profile with counters, preferred categories and posts
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} model.UserProfileResponse
// @Failure 404 {object} response
// @Router /users/{id} [get]
func (s *RestHandler) ShowUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UserProfileRequest
	if err := decodeQuery(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProfileApp.Show(r.Context(), currentUser(r), userID, &req, pageLink(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "User details.", res)
}

// BlockList handler
// @Summary Users I blocked
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BlockListResponse
// @Router /users/my-block-users [get]
func (s *RestHandler) BlockList(w http.ResponseWriter, r *http.Request) {
	res, err := s.ModerationApp.BlockList(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Your block list.", res)
}

// ReportUser handler
// @Summary Report a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.ReportRequest true "Report"
// @Success 201 {object} response
// @Router /users/{id}/report [post]
func (s *RestHandler) ReportUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ModerationApp.ReportUser(r.Context(), currentUser(r), userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "The user has been reported successfully.", nil)
}

// BlockUser handler
// @Summary Block a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 201 {object} response
// @Router /users/{id}/block [post]
func (s *RestHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ModerationApp.Block(r.Context(), currentUser(r), userID); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "The user has been blocked successfully.", nil)
}

// UnblockUser handler
// @Summary Unblock a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 201 {object} response
// @Failure 404 {object} response
// @Router /users/{id}/unblock [post]
func (s *RestHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ModerationApp.Unblock(r.Context(), currentUser(r), userID); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "The user has been unblocked successfully.", nil)
}

// Categories handler
// @Summary Active categories
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CategoryResponse
// @Router /categories [get]
func (s *RestHandler) Categories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Category listing.", res)
}

// AssignCategories handler
// @Summary Set preferred categories
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AssignCategoriesRequest true "Categories"
// @Success 201 {object} response
// @Router /categories/user-assign [post]
func (s *RestHandler) AssignCategories(w http.ResponseWriter, r *http.Request) {
	var req model.AssignCategoriesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.CategoryApp.AssignUser(r.Context(), currentUser(r), &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Categories have been assigned.", nil)
}

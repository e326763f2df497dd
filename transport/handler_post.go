package transport

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/utils/errors"
)

// imageFields are the multipart keys post images may arrive under.
var imageFields = []string{"images", "images[]"}

// decodePostRequest accepts a JSON body or a multipart form with images.
// The returned closer releases the uploaded files.
func (s *RestHandler) decodePostRequest(w http.ResponseWriter, r *http.Request, req *model.PostRequest) (io.Closer, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return nopCloser{}, decodeJSON(r, req)
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return nopCloser{}, errors.SetValidationError(map[string]string{"images": "The upload is too large or malformed."})
	}

	if err := queryDecoder.Decode(req, r.MultipartForm.Value); err != nil {
		return nopCloser{}, queryError(err)
	}

	files := make(fileClosers, 0)
	for _, field := range imageFields {
		for _, header := range r.MultipartForm.File[field] {
			f, err := header.Open()
			if err != nil {
				files.Close()
				return nopCloser{}, errors.SetCustomError(constant.ErrInvalidRequest)
			}
			files = append(files, f)
			req.Images = append(req.Images, model.UploadFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Content:     f,
			})
		}
	}

	if err := validate(req); err != nil {
		files.Close()
		return nopCloser{}, err
	}
	return files, nil
}

type fileClosers []io.Closer

func (fc fileClosers) Close() error {
	for _, c := range fc {
		_ = c.Close()
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Feed handler
// @Summary Post feed
// @Description Active posts near the viewer, excluding blocked authors
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param categories query string false "Comma separated category ids"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param miles query number false "Radius in miles"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} model.PostResponse
// @Router /posts [get]
func (s *RestHandler) Feed(w http.ResponseWriter, r *http.Request) {
	var req model.FeedRequest
	if err := decodeQuery(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.Feed(r.Context(), currentUser(r), &req, pageLink(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Post listing.", res.Posts, res.Meta)
}

// CreatePost handler
// @Summary Create post
// @Tags Posts
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PostRequest true "Post"
// @Success 201 {object} model.CreatePostResponse
// @Router /posts [post]
func (s *RestHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.PostRequest
	files, err := s.decodePostRequest(w, r, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	defer files.Close()

	res, err := s.PostApp.Create(r.Context(), currentUser(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Your post has been created successfully..", res)
}

// ShowPost handler
// @Summary Post detail
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Success 200 {object} model.PostResponse
// @Failure 404 {object} response
// @Router /posts/{id} [get]
func (s *RestHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.PostShowRequest
	if err := decodeQuery(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.Show(r.Context(), currentUser(r), postID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Here are you post details.", res)
}

// UpdatePost handler
// @Summary Update post
// @Tags Posts
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.PostRequest true "Post"
// @Success 201 {object} response
// @Router /posts/{id} [put]
func (s *RestHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.PostRequest
	files, err := s.decodePostRequest(w, r, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	defer files.Close()

	if err := s.PostApp.Update(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Your post has been updated successfully..", nil)
}

// DeletePost handler
// @Summary Delete post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 201 {object} response
// @Router /posts/{id} [delete]
func (s *RestHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.PostApp.Delete(r.Context(), currentUser(r), postID); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Your post has been deleted successfully..", nil)
}

// PostHistory handler
// @Summary Own posts
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Status filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {array} model.PostResponse
// @Router /posts/history [get]
func (s *RestHandler) PostHistory(w http.ResponseWriter, r *http.Request) {
	var req model.HistoryRequest
	if err := decodeQuery(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.History(r.Context(), currentUser(r), &req, pageLink(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, "Here are you post history.", res.Posts, res.Meta)
}

// UpdatePostStatus handler
// @Summary Change post status
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.StatusUpdateRequest true "Status"
// @Success 201 {object} response
// @Router /posts/{id}/update-status [post]
func (s *RestHandler) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PostApp.UpdateStatus(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Post request status updated successfully..", nil)
}

// RequestFulfill handler
// @Summary Mark post fulfilled
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.FulfillRequest true "Fulfillment"
// @Success 201 {object} response
// @Router /posts/{id}/request-fulfill [post]
func (s *RestHandler) RequestFulfill(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.FulfillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.FulfillmentApp.RequestFulfill(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Post request has been fulfilled successfully..", nil)
}

// HelperFeedback handler
// @Summary Rate a helper
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.FeedbackRequest true "Feedback"
// @Success 201 {object} response
// @Router /posts/{id}/helper-feedback [post]
func (s *RestHandler) HelperFeedback(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.FeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.FulfillmentApp.HelperFeedback(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "User feedback has added successfully..", nil)
}

// OfferHelp handler
// @Summary Offer help on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.OfferHelpRequest false "Offer"
// @Success 201 {object} response
// @Router /posts/{id}/help [post]
func (s *RestHandler) OfferHelp(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.OfferHelpRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PostApp.OfferHelp(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Your help request has been sent.", nil)
}

// HelpList handler
// @Summary Help offers on own post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {array} model.PostHelperView
// @Router /posts/{id}/help-list [get]
func (s *RestHandler) HelpList(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PostApp.HelpList(r.Context(), currentUser(r), postID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, "Post helper list.", res)
}

// UpdateHelpStatus handler
// @Summary Accept or decline a help offer
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param helper_id path int true "Helper user ID"
// @Param request body model.HelpStatusRequest true "Status"
// @Success 201 {object} response
// @Router /posts/{id}/help-status/{helper_id} [post]
func (s *RestHandler) UpdateHelpStatus(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	helperID, err := pathID(r, "helper_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.HelpStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.PostApp.UpdateHelpStatus(r.Context(), currentUser(r), postID, helperID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "Helper status updated successfully.", nil)
}

// ReportPost handler
// @Summary Report a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.ReportRequest true "Report"
// @Success 201 {object} response
// @Router /posts/{id}/report [post]
func (s *RestHandler) ReportPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ModerationApp.ReportPost(r.Context(), currentUser(r), postID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, "The post has been reported successfully.", nil)
}

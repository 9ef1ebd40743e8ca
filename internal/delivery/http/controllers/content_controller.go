package controllers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"
	"communityhub/internal/meta"
)

// maxUploadBytes caps the accepted upload size.
const maxUploadBytes = 10 << 20

type ContentController struct {
	Logger   *slog.Logger
	Service  domain.ContentService
	Uploader domain.Uploader
}

func NewContentController(logger *slog.Logger, svc domain.ContentService, uploader domain.Uploader) *ContentController {
	return &ContentController{
		Logger:   logger,
		Service:  svc,
		Uploader: uploader,
	}
}

// CreatePostRequest is the request body for POST /posts.
type CreatePostRequest struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	CoverImageURL string `json:"cover_image_url"`
}

// Validate implements helpers.Validator.
func (r *CreatePostRequest) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "title is required")
	}
	if r.Content == "" {
		errs = append(errs, "content is required")
	}
	return errs
}

// PostSuccessResponse is the success response envelope for single-post endpoints.
type PostSuccessResponse struct {
	Data  *domain.Post      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreatePost godoc
// @Summary Create a blog post
// @Description Creates a post with derived metadata: id, slug (from title when omitted), reading time, and published timestamp.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreatePostRequest true "Post content"
// @Success 201 {object} controllers.PostSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts [post]
func (c *ContentController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	post, err := c.Service.CreatePost(r.Context(), domain.CreatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}

// ListPostsData is the data object for GET /posts.
type ListPostsData struct {
	Posts []*domain.Post         `json:"posts"`
	Meta  helpers.PaginationMeta `json:"meta"`
}

// ListPosts godoc
// @Summary List blog posts (newest first)
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains posts and pagination meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts [get]
func (c *ContentController) ListPosts(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	posts, total, err := c.Service.ListPosts(r.Context(), p)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &ListPostsData{
		Posts: posts,
		Meta:  helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// GetPost godoc
// @Summary Get a blog post by slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} controllers.PostSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /posts/{slug} [get]
func (c *ContentController) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}

	post, err := c.Service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// UploadResult holds the public URL of an uploaded file.
// swagger:model UploadResult
type UploadResult struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Upload a media file
// @Description Accepts a multipart form with a "file" field and returns the public URL of the stored object.
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload (max 10 MB)"
// @Success 201 {object} helpers.APIResponse "data contains the object URL"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /uploads [post]
func (c *ContentController) Upload(w http.ResponseWriter, r *http.Request) {
	if c.Uploader == nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing or invalid file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "failed to read file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	key := fmt.Sprintf("uploads/%s%s", meta.NewID(), path.Ext(header.Filename))

	url, err := c.Uploader.Upload(r.Context(), key, contentType, data)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &UploadResult{URL: url})
}

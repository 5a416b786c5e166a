package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"devblog/internal/application/usecase/abstraction"
	"devblog/internal/domain/dto"
	"devblog/internal/domain/errs"
	"devblog/internal/presentation"
)

type BlogHandler struct {
	blogs   abstraction.Blog
	verbose bool
}

func NewBlogHandler(blogs abstraction.Blog, verbose bool) *BlogHandler {
	return &BlogHandler{
		blogs:   blogs,
		verbose: verbose,
	}
}

// HandleList handles GET /blogs.
func (h *BlogHandler) HandleList(c echo.Context) error {
	blogs, err := h.blogs.GetAll(c.Request().Context())
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"count": len(blogs),
		"blogs": blogs,
	})
}

// HandleGet handles GET /blogs/:id. Every hit counts a view.
func (h *BlogHandler) HandleGet(c echo.Context) error {
	blog, err := h.blogs.GetByID(c.Request().Context(), c.Param(presentation.BlogIDParam))
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"blog": blog,
	})
}

// HandleCreate handles POST /blogs with a multipart body carrying title,
// content and an optional media file.
func (h *BlogHandler) HandleCreate(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	upload, err := readUpload(c, "media")
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	blog, err := h.blogs.Create(c.Request().Context(), userID,
		c.FormValue("title"), c.FormValue("content"), upload)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusCreated, echo.Map{
		"message": "Blog created successfully!",
		"blog":    blog,
	})
}

// HandleUpdate handles PUT /blogs/:id. Empty form fields are treated as
// absent, so a title-only request leaves the content untouched.
func (h *BlogHandler) HandleUpdate(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	upload, err := readUpload(c, "media")
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	patch := dto.BlogPatch{
		Media:       upload,
		RemoveMedia: c.FormValue("removeMedia") == "true",
	}
	if title := c.FormValue("title"); title != "" {
		patch.Title = &title
	}
	if content := c.FormValue("content"); content != "" {
		patch.Content = &content
	}

	blog, err := h.blogs.Update(c.Request().Context(), c.Param(presentation.BlogIDParam), userID, patch)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"message": "Blog updated successfully!",
		"blog":    blog,
	})
}

// HandleDelete handles DELETE /blogs/:id.
func (h *BlogHandler) HandleDelete(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	if err := h.blogs.Delete(c.Request().Context(), c.Param(presentation.BlogIDParam), userID); err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"message": "Blog deleted successfully!",
	})
}

// HandleMyBlogs handles GET /blogs/user/me.
func (h *BlogHandler) HandleMyBlogs(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	feed, err := h.blogs.GetByAuthor(c.Request().Context(), userID)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"count":      feed.Count,
		"totalViews": feed.TotalViews,
		"totalLikes": feed.TotalLikes,
		"blogs":      feed.Blogs,
	})
}

// HandleToggleLike handles POST /blogs/:id/like.
func (h *BlogHandler) HandleToggleLike(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	result, err := h.blogs.ToggleLike(c.Request().Context(), c.Param(presentation.BlogIDParam), userID)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"liked": result.Liked,
		"likes": result.Likes,
	})
}

// readUpload pulls the named file out of the multipart form. A missing
// file or a non-multipart body is not an error, the upload is optional.
func readUpload(c echo.Context, name string) (*dto.FileUpload, error) {
	fileHeader, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errs.Wrap(errs.Validation, "Invalid media upload.", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errs.Wrap(errs.Validation, "Invalid media upload.", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.Wrap(errs.Validation, "Invalid media upload.", err)
	}

	return &dto.FileUpload{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Name:     fileHeader.Filename,
	}, nil
}

package dto

import "devblog/internal/domain/model"

// FileUpload is an attachment read out of a multipart request.
type FileUpload struct {
	Data     []byte
	MimeType string
	Name     string
}

// BlogPatch is a partial edit of a blog post. Nil fields are not
// touched. RemoveMedia wins over a supplied Media file.
type BlogPatch struct {
	Title       *string
	Content     *string
	Media       *FileUpload
	RemoveMedia bool
}

// AuthorFeed is the per-author listing with aggregate engagement sums.
type AuthorFeed struct {
	Count      int          `json:"count"`
	TotalViews int64        `json:"totalViews"`
	TotalLikes int64        `json:"totalLikes"`
	Blogs      []model.Blog `json:"blogs"`
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ResourceTypeImage = "image"
	ResourceTypeVideo = "video"
)

// MediaDescriptor points at a binary attachment held by the media store.
// It is owned exclusively by the blog that references it.
type MediaDescriptor struct {
	URL          string `bson:"url" json:"url"`
	PublicID     string `bson:"public_id" json:"publicId"`
	Format       string `bson:"format" json:"format"`
	ResourceType string `bson:"resource_type" json:"resourceType"`
	Width        int    `bson:"width" json:"width"`
	Height       int    `bson:"height" json:"height"`
}

// Blog is a published post. AuthorName and AuthorEmail are a snapshot of
// the author taken at creation time; they are not kept in sync with later
// profile changes. AuthorID is never reassigned.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	AuthorID    string             `bson:"author_id" json:"authorId"`
	AuthorName  string             `bson:"author_name" json:"authorName"`
	AuthorEmail string             `bson:"author_email" json:"authorEmail"`
	Media       *MediaDescriptor   `bson:"media" json:"media"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	LikedBy     []string           `bson:"liked_by" json:"likedBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// LikedByUser reports whether userID is a member of the liked-by set.
func (b *Blog) LikedByUser(userID string) bool {
	for _, id := range b.LikedBy {
		if id == userID {
			return true
		}
	}

	return false
}

// BlogUpdate is a partial update applied to a stored blog. Nil fields are
// left untouched; ClearMedia nulls the media slot and wins over Media.
type BlogUpdate struct {
	Title      *string
	Content    *string
	Media      *MediaDescriptor
	ClearMedia bool
	UpdatedAt  time.Time
}

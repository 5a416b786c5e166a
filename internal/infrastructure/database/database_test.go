package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

const (
	mongoImage    = "mongo:latest"
	mongoUser     = "testuser"
	mongoPassword = "testpass"
	mongoDBName   = "testdb"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        mongoImage,
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": mongoUser,
			"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MongoDB container")
	t.Cleanup(func() {
		_ = mongoC.Terminate(context.Background())
	})

	endpoint, err := mongoC.Endpoint(ctx, "")
	require.NoError(t, err)

	db, err := Connect(Config{
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint),
		DBName:            mongoDBName,
		ConnectionTimeout: 10000,
		QueryTimeout:      5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func seedUser(t *testing.T, db *Database, email, name string) *model.User {
	t.Helper()

	user := &model.User{
		Email:     email,
		Password:  "hashed-password",
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := NewUserWriter(db).Create(context.Background(), user)
	require.NoError(t, err)

	return user
}

func seedBlog(t *testing.T, db *Database, authorID, title string, createdAt time.Time) *model.Blog {
	t.Helper()

	blog := &model.Blog{
		Title:       title,
		Content:     "some content",
		AuthorID:    authorID,
		AuthorName:  "Alice",
		AuthorEmail: "a@x.com",
		LikedBy:     []string{},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	_, err := NewBlogWriter(db).Create(context.Background(), blog)
	require.NoError(t, err)

	return blog
}

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	db := setupDatabase(t)
	writer := NewUserWriter(db)
	retriever := NewUserRetriever(db)

	user := seedUser(t, db, "a@x.com", "Alice")

	t.Run("get by id", func(t *testing.T) {
		got, err := retriever.GetByID(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := retriever.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown lookups", func(t *testing.T) {
		_, err := retriever.GetByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, database.ErrNotFound)

		_, err = retriever.GetByID(ctx, "not-a-hex-id")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("duplicate email rejected by unique index", func(t *testing.T) {
		_, err := writer.Create(ctx, &model.User{
			Email:     "a@x.com",
			Password:  "other-password",
			Name:      "Imposter",
			CreatedAt: time.Now().UTC(),
		})
		assert.ErrorIs(t, err, database.ErrDuplicate)
	})
}

func TestBlogRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	db := setupDatabase(t)
	writer := NewBlogWriter(db)
	retriever := NewBlogRetriever(db)
	remover := NewBlogRemover(db)
	lister := NewBlogLister(db)

	author := seedUser(t, db, "a@x.com", "Alice")
	authorID := author.ID.Hex()

	t.Run("count view increments atomically", func(t *testing.T) {
		blog := seedBlog(t, db, authorID, "Counted", time.Now().UTC())

		for i := int64(1); i <= 3; i++ {
			got, err := retriever.CountView(ctx, blog.ID.Hex())
			require.NoError(t, err)
			assert.Equal(t, i, got.Views)
		}

		got, err := retriever.GetByID(ctx, blog.ID.Hex())
		require.NoError(t, err)
		assert.EqualValues(t, 3, got.Views)
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		blog := seedBlog(t, db, authorID, "Original title", time.Now().UTC())

		title := "New title"
		err := writer.Update(ctx, blog.ID.Hex(), model.BlogUpdate{
			Title:     &title,
			UpdatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		got, err := retriever.GetByID(ctx, blog.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "New title", got.Title)
		assert.Equal(t, "some content", got.Content)
	})

	t.Run("clear media nulls the slot", func(t *testing.T) {
		blog := seedBlog(t, db, authorID, "With media", time.Now().UTC())

		err := writer.Update(ctx, blog.ID.Hex(), model.BlogUpdate{
			Media: &model.MediaDescriptor{
				URL:          "http://media.local/x",
				PublicID:     "devblog/posts/x",
				Format:       "png",
				ResourceType: model.ResourceTypeImage,
				Width:        10,
				Height:       10,
			},
			UpdatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		err = writer.Update(ctx, blog.ID.Hex(), model.BlogUpdate{
			ClearMedia: true,
			UpdatedAt:  time.Now().UTC(),
		})
		require.NoError(t, err)

		got, err := retriever.GetByID(ctx, blog.ID.Hex())
		require.NoError(t, err)
		assert.Nil(t, got.Media)
	})

	t.Run("set engagement writes counter and set together", func(t *testing.T) {
		blog := seedBlog(t, db, authorID, "Liked", time.Now().UTC())

		err := writer.SetEngagement(ctx, blog.ID.Hex(), 2, []string{"u1", "u2"})
		require.NoError(t, err)

		got, err := retriever.GetByID(ctx, blog.ID.Hex())
		require.NoError(t, err)
		assert.EqualValues(t, 2, got.Likes)
		assert.Equal(t, []string{"u1", "u2"}, got.LikedBy)
	})

	t.Run("update of missing blog", func(t *testing.T) {
		title := "ghost"
		err := writer.Update(ctx, "64f1c7e2a1b2c3d4e5f60718", model.BlogUpdate{
			Title:     &title,
			UpdatedAt: time.Now().UTC(),
		})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		blog := seedBlog(t, db, authorID, "Doomed", time.Now().UTC())

		require.NoError(t, remover.Remove(ctx, blog.ID.Hex()))

		_, err := retriever.GetByID(ctx, blog.ID.Hex())
		assert.ErrorIs(t, err, database.ErrNotFound)

		assert.ErrorIs(t, remover.Remove(ctx, blog.ID.Hex()), database.ErrNotFound)
	})

	t.Run("list all newest first", func(t *testing.T) {
		older := seedBlog(t, db, authorID, "Older", time.Now().UTC().Add(-time.Hour))
		newer := seedBlog(t, db, authorID, "Newer", time.Now().UTC().Add(time.Hour))

		all, err := lister.GetAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
		assert.Equal(t, newer.ID, all[0].ID)

		var titles []string
		for _, b := range all {
			titles = append(titles, b.Title)
		}
		assert.Contains(t, titles, older.Title)
	})

	t.Run("list by author filters", func(t *testing.T) {
		other := seedUser(t, db, "b@x.com", "Bob")
		seedBlog(t, db, other.ID.Hex(), "Bob's post", time.Now().UTC())

		mine, err := lister.GetByAuthor(ctx, other.ID.Hex())
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "Bob's post", mine[0].Title)
	})
}

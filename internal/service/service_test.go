package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"newsline/internal/database"
	"newsline/internal/models"
	"newsline/internal/repository"
	"newsline/internal/timeago"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newAccountService(db *gorm.DB) *AccountService {
	return NewAccountService(repository.NewUserRepository(db))
}

func newFeedService(db *gorm.DB) *FeedService {
	return NewFeedService(
		repository.NewArticleRepository(db),
		repository.NewUserRepository(db),
		timeago.ForLocale("en"),
	)
}

func newDirectoryService(db *gorm.DB) *DirectoryService {
	return NewDirectoryService(
		repository.NewUserRepository(db),
		repository.NewSubscriptionRepository(db),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  alice  ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, user.SoundEnabled)

	_, err = svc.Register(ctx, "alice", "secret123")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	got, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "alice", "wrongpass")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)

	// Unknown username yields the same error as a wrong password.
	_, err = svc.Login(ctx, "nobody", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid username or password", appErr.Message)

	// Usernames outside the registration bounds still reach the lookup, so
	// they fail as unknown users, not as invalid input.
	_, err = svc.Login(ctx, "ab", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)

	_, err = svc.Login(ctx, strings.Repeat("a", 60), "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)

	_, err = svc.Login(ctx, "   ", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	var appErr *models.AppError

	_, err := svc.Register(ctx, "ab", "secret123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	_, err = svc.Register(ctx, "alice", "12345")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	var appErr *models.AppError
	err = svc.ChangePassword(ctx, user.ID, "wrongpass", "newsecret")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)

	err = svc.ChangePassword(ctx, user.ID, "", "newsecret")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret123", "newsecret"))

	_, err = svc.Login(ctx, "alice", "secret123")
	assert.Error(t, err)
	_, err = svc.Login(ctx, "alice", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newAccountService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	var appErr *models.AppError
	_, err = svc.UpdateProfile(ctx, UpdateProfileInput{UserID: user.ID})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	dark := true
	bio := "new bio"
	updated, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: user.ID, DarkTheme: &dark, Bio: &bio})
	require.NoError(t, err)
	assert.True(t, updated.DarkTheme)
	assert.Equal(t, "new bio", updated.Bio)
	assert.True(t, updated.SoundEnabled)
}

func TestCreateArticleExcerpt(t *testing.T) {
	db := setupTestDB(t)
	accounts := newAccountService(db)
	feed := newFeedService(db)
	ctx := context.Background()

	author, err := accounts.Register(ctx, "author", "secret123")
	require.NoError(t, err)

	long := strings.Repeat("x", 250)
	article, err := feed.CreateArticle(ctx, CreateArticleInput{
		Title:    "Long read",
		Content:  long,
		Category: "tech",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Len(t, article.Excerpt, 203)
	assert.True(t, strings.HasSuffix(article.Excerpt, "..."))

	short, err := feed.CreateArticle(ctx, CreateArticleInput{
		Title:    "Short read",
		Content:  "brief",
		Category: "tech",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "brief", short.Excerpt)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short"))

	exact := strings.Repeat("a", 200)
	assert.Equal(t, exact, Excerpt(exact))

	long := strings.Repeat("a", 201)
	got := Excerpt(long)
	assert.Len(t, got, 203)
	assert.Equal(t, strings.Repeat("a", 200)+"...", got)

	// Multibyte content truncates on characters, not bytes.
	cyrillic := strings.Repeat("ж", 250)
	got = Excerpt(cyrillic)
	assert.Equal(t, strings.Repeat("ж", 200)+"...", got)
}

func TestListArticlesViewerFlags(t *testing.T) {
	db := setupTestDB(t)
	accounts := newAccountService(db)
	feed := newFeedService(db)
	ctx := context.Background()

	author, err := accounts.Register(ctx, "author", "secret123")
	require.NoError(t, err)
	reader, err := accounts.Register(ctx, "reader", "secret123")
	require.NoError(t, err)

	article, err := feed.CreateArticle(ctx, CreateArticleInput{
		Title:    "Post",
		Content:  "content",
		Category: "tech",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	result, err := feed.ToggleLike(ctx, article.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, 1, result.LikesCount)

	articles, err := feed.ListArticles(ctx, ListArticlesInput{ViewerID: reader.ID})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.True(t, articles[0].IsLiked)
	assert.NotEmpty(t, articles[0].TimeAgo)
	assert.NotNil(t, articles[0].Comments)

	anonymous, err := feed.ListArticles(ctx, ListArticlesInput{})
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.False(t, anonymous[0].IsLiked)
}

func TestAddComment(t *testing.T) {
	db := setupTestDB(t)
	accounts := newAccountService(db)
	feed := newFeedService(db)
	ctx := context.Background()

	author, err := accounts.Register(ctx, "author", "secret123")
	require.NoError(t, err)
	article, err := feed.CreateArticle(ctx, CreateArticleInput{
		Title:    "Post",
		Content:  "content",
		Category: "tech",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	comment, err := feed.AddComment(ctx, article.ID, author.ID, "  nice one  ")
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Content)
	assert.Equal(t, "author", comment.Author.Username)
	assert.Equal(t, "just now", comment.TimeAgo)

	var appErr *models.AppError
	_, err = feed.AddComment(ctx, article.ID, author.ID, "   ")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)

	// A nonexistent author must not leave a comment row behind.
	_, err = feed.AddComment(ctx, article.ID, 9999, "ghost comment")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	var rows int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestToggleSubscription(t *testing.T) {
	db := setupTestDB(t)
	accounts := newAccountService(db)
	directory := newDirectoryService(db)
	ctx := context.Background()

	author, err := accounts.Register(ctx, "author", "secret123")
	require.NoError(t, err)
	reader, err := accounts.Register(ctx, "reader", "secret123")
	require.NoError(t, err)

	var appErr *models.AppError
	_, err = directory.ToggleSubscription(ctx, reader.ID, reader.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "cannot subscribe to yourself", appErr.Message)

	result, err := directory.ToggleSubscription(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, result.IsSubscribed)
	assert.Equal(t, 1, result.SubscribersCount)

	users, err := directory.ListUsers(ctx, "", reader.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "author", users[0].Username)
	assert.True(t, users[0].IsSubscribed)

	result, err = directory.ToggleSubscription(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, result.IsSubscribed)
	assert.Equal(t, 0, result.SubscribersCount)
}

package seed

import (
	"fmt"
	"testing"

	"newsline/internal/database"
	"newsline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRunKeepsCountersConsistent(t *testing.T) {
	dsn := fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, Run(db, Options{Users: 5, Articles: 10}))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 5)

	var articles []models.Article
	require.NoError(t, db.Find(&articles).Error)
	require.Len(t, articles, 10)

	for _, article := range articles {
		var likes int64
		require.NoError(t, db.Model(&models.Like{}).
			Where("article_id = ?", article.ID).Count(&likes).Error)
		assert.Equal(t, int(likes), article.LikesCount, "article %d likes", article.ID)
	}

	for _, user := range users {
		var publications int64
		require.NoError(t, db.Model(&models.Article{}).
			Where("author_id = ?", user.ID).Count(&publications).Error)
		assert.Equal(t, int(publications), user.PublicationsCount, "user %d publications", user.ID)

		var subscribers int64
		require.NoError(t, db.Model(&models.Subscription{}).
			Where("author_id = ?", user.ID).Count(&subscribers).Error)
		assert.Equal(t, int(subscribers), user.SubscribersCount, "user %d subscribers", user.ID)

		var received int64
		require.NoError(t, db.Model(&models.Like{}).
			Joins("JOIN news_articles ON news_articles.id = likes.article_id").
			Where("news_articles.author_id = ?", user.ID).Count(&received).Error)
		assert.Equal(t, int(received), user.LikesCount, "user %d received likes", user.ID)
	}
}

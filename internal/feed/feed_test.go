package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/MiniTweet-Back/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = originalDB
		mockDB.Close()
	})

	return mock
}

func postRows(n int, start time.Time) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "user_id", "content"})
	for i := 0; i < n; i++ {
		rows.AddRow(
			fmt.Sprintf("post%02d", i),
			start.Add(-time.Duration(i)*time.Minute),
			"author1",
			fmt.Sprintf("contenu %d", i),
		)
	}
	return rows
}

func TestAssembleEmptyWhenFollowingNobody(t *testing.T) {
	mock := setupMockDB(t)

	// Aucun suivi : pas de scan de la table des posts
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}))

	items, hasMore, err := Assemble("viewer1", 0, DefaultPageSize)

	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, hasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssembleFirstPageOf45(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow("author1"))
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(postRows(20, time.Now()))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}))

	items, hasMore, err := Assemble("viewer1", 0, 20)

	assert.NoError(t, err)
	assert.Len(t, items, 20)
	assert.True(t, hasMore)
}

func TestAssembleLastPageOf45(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow("author1"))
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(postRows(5, time.Now()))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}))

	items, hasMore, err := Assemble("viewer1", 40, 20)

	assert.NoError(t, err)
	assert.Len(t, items, 5)
	assert.False(t, hasMore)
}

func TestAssembleNewestFirstWithAnnotations(t *testing.T) {
	mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow("userB"))
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	// "world" posté après "hello" : le magasin renvoie le plus récent d'abord
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id", "content"}).
			AddRow("post2", now, "userB", "world").
			AddRow("post1", now.Add(-time.Minute), "userB", "hello"))
	// Le viewer a liké "hello"
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow("post1"))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}).
			AddRow("post1", 2))

	items, hasMore, err := Assemble("viewerA", 0, 20)

	assert.NoError(t, err)
	assert.False(t, hasMore)
	assert.Len(t, items, 2)
	assert.Equal(t, "world", items[0].Content)
	assert.Equal(t, "hello", items[1].Content)
	assert.False(t, items[0].IsLiked)
	assert.True(t, items[1].IsLiked)
	assert.Equal(t, int64(2), items[1].LikeCount)
	assert.Equal(t, int64(0), items[0].LikeCount)
}

func TestAssembleDefaultsPageSize(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}))

	items, hasMore, err := Assemble("viewer1", 0, 0)

	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, hasMore)
}

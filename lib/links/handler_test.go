package linkshandler

import (
	"path/filepath"
	"testing"

	"appraisal-backend/lib/storage/syncstore"
	dbmodels "appraisal-backend/models/db"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) impl {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "links.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.AppraisalLink{}))
	return impl{
		store: syncstore.NewInstance[dbmodels.AppraisalLink]("appraisal_link", nil, database),
	}
}

func seedLink(t *testing.T, handler impl, token string) dbmodels.AppraisalLink {
	t.Helper()
	rec := dbmodels.AppraisalLink{
		BaseModel:      dbmodels.BaseModel{ID: uuid.NewString()},
		Token:          token,
		AppraiserID:    "l1",
		EmployeeID:     "m1",
		TemplateID:     "tmpl-1",
		ReviewPeriodID: "period-1",
	}
	require.Nil(t, handler.store.Save(rec))
	return rec
}

func TestConsume(t *testing.T) {
	t.Run(`первое использование гасит токен и ставит отметку времени`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedLink(t, handler, "token-1")

		link, err := handler.Consume("token-1")
		require.Nil(t, err)
		require.True(t, link.Used)
		require.NotNil(t, link.UsedAt)

		stored, err := handler.GetByToken("token-1")
		require.Nil(t, err)
		require.NotNil(t, stored)
		require.True(t, stored.Used)
		require.NotNil(t, stored.UsedAt)
	})

	t.Run(`повторное использование отклоняется, отметка времени не меняется`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedLink(t, handler, "token-1")

		first, err := handler.Consume("token-1")
		require.Nil(t, err)

		_, err = handler.Consume("token-1")
		require.NotNil(t, err)
		require.Equal(t, "приглашение уже использовано", err.Error())

		stored, err := handler.GetByToken("token-1")
		require.Nil(t, err)
		require.NotNil(t, stored)
		require.Equal(t, first.UsedAt.Unix(), stored.UsedAt.Unix())
	})

	t.Run(`неизвестный токен`, func(t *testing.T) {
		handler := newTestHandler(t)
		_, err := handler.Consume("missing")
		require.NotNil(t, err)
		require.Equal(t, "приглашение не найдено", err.Error())
	})

	t.Run(`просмотр по токену не расходует приглашение`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedLink(t, handler, "token-1")

		link, err := handler.GetByToken("token-1")
		require.Nil(t, err)
		require.NotNil(t, link)
		require.False(t, link.Used)

		again, err := handler.GetByToken("token-1")
		require.Nil(t, err)
		require.NotNil(t, again)
		require.False(t, again.Used)
	})
}

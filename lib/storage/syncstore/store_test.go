package syncstore

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   string `gorm:"type:varchar(36);primaryKey"`
	Name string `gorm:"type:varchar(255)"`
}

func (n note) GetID() string {
	return n.ID
}

func openDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&note{}))
	return database
}

func closeDB(t *testing.T, database *gorm.DB) {
	t.Helper()
	sqlDB, err := database.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())
}

func TestSyncStore(t *testing.T) {
	t.Run(`слияние списков: внешняя запись приоритетнее, локальные дополняют`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		require.Nil(t, remote.Create(&note{ID: "a", Name: "внешняя версия"}).Error)
		require.Nil(t, remote.Create(&note{ID: "c", Name: "только внешняя"}).Error)
		require.Nil(t, local.Create(&note{ID: "a", Name: "локальная версия"}).Error)
		require.Nil(t, local.Create(&note{ID: "b", Name: "только локальная"}).Error)

		store := NewInstance[note]("note", remote, local)
		list, err := store.GetAll()
		require.Nil(t, err)
		byID := map[string]string{}
		for _, rec := range list {
			byID[rec.ID] = rec.Name
		}
		require.Len(t, byID, 3)
		require.Equal(t, "внешняя версия", byID["a"])
		require.Equal(t, "только локальная", byID["b"])
		require.Equal(t, "только внешняя", byID["c"])
	})

	t.Run(`недоступная внешняя БД - список из локального кэша`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		require.Nil(t, local.Create(&note{ID: "b", Name: "локальная"}).Error)
		closeDB(t, remote)

		store := NewInstance[note]("note", remote, local)
		list, err := store.GetAll()
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "b", list[0].ID)
	})

	t.Run(`без внешней БД работает только локальный кэш`, func(t *testing.T) {
		local := openDB(t, "local.db")
		store := NewInstance[note]("note", nil, local)
		require.Nil(t, store.Save(note{ID: "x", Name: "запись"}))
		rec, err := store.GetByID("x")
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "запись", rec.Name)
	})

	t.Run(`чистое "не найдено" во внешней БД не перекрывается кэшем`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		// запись есть только локально, но внешняя БД доступна и авторитетна
		require.Nil(t, local.Create(&note{ID: "ghost", Name: "устаревшая"}).Error)

		store := NewInstance[note]("note", remote, local)
		rec, err := store.GetByID("ghost")
		require.Nil(t, err)
		require.Nil(t, rec)
	})

	t.Run(`недоступная внешняя БД - поиск записи в кэше`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		require.Nil(t, local.Create(&note{ID: "y", Name: "из кэша"}).Error)
		closeDB(t, remote)

		store := NewInstance[note]("note", remote, local)
		rec, err := store.GetByID("y")
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "из кэша", rec.Name)
	})

	t.Run(`запись идет в оба хранилища`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		store := NewInstance[note]("note", remote, local)
		require.Nil(t, store.Save(note{ID: "z", Name: "новая"}))

		var remoteRec, localRec note
		require.Nil(t, remote.First(&remoteRec, "id = ?", "z").Error)
		require.Nil(t, local.First(&localRec, "id = ?", "z").Error)
		require.Equal(t, "новая", remoteRec.Name)
		require.Equal(t, "новая", localRec.Name)
	})

	t.Run(`повторная запись обновляет, а не дублирует`, func(t *testing.T) {
		local := openDB(t, "local.db")
		store := NewInstance[note]("note", nil, local)
		require.Nil(t, store.Save(note{ID: "u", Name: "первая"}))
		require.Nil(t, store.Save(note{ID: "u", Name: "вторая"}))

		list, err := store.GetAll()
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "вторая", list[0].Name)
	})

	t.Run(`ошибка внешней записи возвращается после записи в кэш`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		closeDB(t, remote)

		store := NewInstance[note]("note", remote, local)
		err := store.Save(note{ID: "w", Name: "офлайн"})
		require.NotNil(t, err)

		var localRec note
		require.Nil(t, local.First(&localRec, "id = ?", "w").Error)
		require.Equal(t, "офлайн", localRec.Name)
	})

	t.Run(`удаление из обоих хранилищ`, func(t *testing.T) {
		remote := openDB(t, "remote.db")
		local := openDB(t, "local.db")
		store := NewInstance[note]("note", remote, local)
		require.Nil(t, store.Save(note{ID: "d", Name: "на удаление"}))
		require.Nil(t, store.Delete("d"))

		list, err := store.GetAll()
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`поиск по полю без учета регистра`, func(t *testing.T) {
		local := openDB(t, "local.db")
		store := NewInstance[note]("note", nil, local)
		require.Nil(t, store.Save(note{ID: "n", Name: "John.Doe"}))

		rec, err := store.GetByField("name", "john.doe")
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "n", rec.ID)

		rec, err = store.GetByField("name", "nobody")
		require.Nil(t, err)
		require.Nil(t, rec)
	})
}

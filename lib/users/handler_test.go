package usershandler

import (
	"path/filepath"
	"testing"

	"appraisal-backend/lib/eventbus"
	"appraisal-backend/lib/storage/syncstore"
	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) impl {
	t.Helper()
	eventbus.NewBus()
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "users.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}))
	return impl{
		store: syncstore.NewInstance[dbmodels.User]("user", nil, database),
	}
}

func seedUser(t *testing.T, handler impl, username string) {
	t.Helper()
	require.Nil(t, handler.store.Save(dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		Username:  username,
		Password:  "hash",
		Role:      models.UserRoleEmployee,
		Active:    true,
	}))
}

func TestUsernameCandidate(t *testing.T) {
	t.Run(`локальная часть почты`, func(t *testing.T) {
		require.Equal(t, "john.doe", usernameCandidate("Иван Иванов", "John.Doe@corp.example"))
	})
	t.Run(`без почты имя превращается в first.last`, func(t *testing.T) {
		require.Equal(t, "иван.иванов", usernameCandidate("Иван Иванов", ""))
	})
}

func TestGenerateUniqueUsername(t *testing.T) {
	t.Run(`свободное имя берется как есть`, func(t *testing.T) {
		handler := newTestHandler(t)
		username, err := handler.generateUniqueUsername("john.doe")
		require.Nil(t, err)
		require.Equal(t, "john.doe", username)
	})

	t.Run(`занятое имя получает числовой суффикс`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedUser(t, handler, "john.doe")
		username, err := handler.generateUniqueUsername("john.doe")
		require.Nil(t, err)
		require.Equal(t, "john.doe1", username)
	})

	t.Run(`суффиксы растут пока имя занято`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedUser(t, handler, "john.doe")
		seedUser(t, handler, "john.doe1")
		seedUser(t, handler, "john.doe2")
		username, err := handler.generateUniqueUsername("john.doe")
		require.Nil(t, err)
		require.Equal(t, "john.doe3", username)
	})

	t.Run(`уникальность проверяется без учета регистра`, func(t *testing.T) {
		handler := newTestHandler(t)
		seedUser(t, handler, "John.Doe")
		username, err := handler.generateUniqueUsername("john.doe")
		require.Nil(t, err)
		require.Equal(t, "john.doe1", username)
	})
}

func TestCreateForEmployee(t *testing.T) {
	t.Run(`учетная запись привязана к сотруднику и активна`, func(t *testing.T) {
		handler := newTestHandler(t)
		employee := dbmodels.Employee{
			BaseModel: dbmodels.BaseModel{ID: "emp-1"},
			Name:      "Иван Иванов",
			Email:     "ivan@corp.example",
			Hierarchy: models.HierarchyMember,
		}
		user, err := handler.CreateForEmployee(employee, "secret")
		require.Nil(t, err)
		require.Equal(t, "ivan", user.Username)
		require.Equal(t, "emp-1", user.EmployeeID)
		require.True(t, user.Active)

		stored, err := handler.GetByEmployeeID("emp-1")
		require.Nil(t, err)
		require.NotNil(t, stored)
		require.Equal(t, user.ID, stored.ID)
	})

	t.Run(`блокировка по сотруднику гасит учетную запись`, func(t *testing.T) {
		handler := newTestHandler(t)
		employee := dbmodels.Employee{
			BaseModel: dbmodels.BaseModel{ID: "emp-2"},
			Name:      "Петр Петров",
			Email:     "petr@corp.example",
			Hierarchy: models.HierarchyMember,
		}
		_, err := handler.CreateForEmployee(employee, "secret")
		require.Nil(t, err)

		require.Nil(t, handler.DeactivateByEmployee("emp-2"))
		user, err := handler.GetByEmployeeID("emp-2")
		require.Nil(t, err)
		require.NotNil(t, user)
		require.False(t, user.Active)
	})

	t.Run(`отвязка при удалении сотрудника`, func(t *testing.T) {
		handler := newTestHandler(t)
		employee := dbmodels.Employee{
			BaseModel: dbmodels.BaseModel{ID: "emp-3"},
			Name:      "Анна Смирнова",
			Email:     "anna@corp.example",
			Hierarchy: models.HierarchyMember,
		}
		created, err := handler.CreateForEmployee(employee, "secret")
		require.Nil(t, err)

		require.Nil(t, handler.UnlinkByEmployee("emp-3"))
		user, err := handler.GetByID(created.ID)
		require.Nil(t, err)
		require.NotNil(t, user)
		require.Empty(t, user.EmployeeID)
		require.False(t, user.Active)
	})
}

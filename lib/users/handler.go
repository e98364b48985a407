package usershandler

import (
	"fmt"
	"time"

	"appraisal-backend/db"
	"appraisal-backend/lib/eventbus"
	"appraisal-backend/lib/storage/syncstore"
	authutils "appraisal-backend/lib/utils/auth-utils"
	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]dbmodels.User, error)
	GetByID(userID string) (*dbmodels.User, error)
	GetByUsername(username string) (*dbmodels.User, error)
	GetByEmployeeID(employeeID string) (*dbmodels.User, error)
	Save(rec dbmodels.User) error
	Delete(userID string) error
	CreateForEmployee(employee dbmodels.Employee, password string) (dbmodels.User, error)
	DeactivateByEmployee(employeeID string) error
	UnlinkByEmployee(employeeID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.User]("user", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.User]
}

func (i impl) GetAll() ([]dbmodels.User, error) {
	return i.store.GetAll()
}

func (i impl) GetByID(userID string) (*dbmodels.User, error) {
	return i.store.GetByID(userID)
}

// GetByUsername поиск без учета регистра
func (i impl) GetByUsername(username string) (*dbmodels.User, error) {
	return i.store.GetByField("username", username)
}

func (i impl) GetByEmployeeID(employeeID string) (*dbmodels.User, error) {
	return i.store.GetByField("employee_id", employeeID)
}

func (i impl) Save(rec dbmodels.User) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.store.Save(rec)
}

func (i impl) Delete(userID string) error {
	return i.store.Delete(userID)
}

// CreateForEmployee автосоздание учетной записи при создании сотрудника.
// После записи выполняется ограниченное число повторных чтений с паузой:
// только что записанная запись может быть не сразу видна при чтении из внешней БД.
func (i impl) CreateForEmployee(employee dbmodels.Employee, password string) (dbmodels.User, error) {
	username, err := i.generateUniqueUsername(usernameCandidate(employee.Name, employee.Email))
	if err != nil {
		return dbmodels.User{}, err
	}
	rec := dbmodels.User{
		BaseModel:  dbmodels.BaseModel{ID: uuid.NewString()},
		Username:   username,
		Password:   authutils.GetMD5Hash(password),
		Role:       models.UserRoleEmployee,
		EmployeeID: employee.ID,
		Active:     true,
	}
	if err = i.store.Save(rec); err != nil {
		log.
			WithField("employee_id", employee.ID).
			WithError(err).
			Error("ошибка создания учетной записи сотрудника")
		return dbmodels.User{}, err
	}
	i.waitVisible(username)
	eventbus.Instance.Publish(eventbus.TopicUserCreated, UserEvent{
		UserID:     rec.ID,
		Username:   rec.Username,
		EmployeeID: rec.EmployeeID,
	})
	return rec, nil
}

// DeactivateByEmployee блокировка учетной записи при блокирующем статусе сотрудника,
// активные сессии становятся недействительными при следующей проверке
func (i impl) DeactivateByEmployee(employeeID string) error {
	user, err := i.GetByEmployeeID(employeeID)
	if err != nil {
		return err
	}
	if user == nil || !user.Active {
		return nil
	}
	user.Active = false
	return i.store.Save(*user)
}

// UnlinkByEmployee отвязка учетной записи при удалении сотрудника;
// операция независима от удаления сотрудника, частичный сбой допустим
func (i impl) UnlinkByEmployee(employeeID string) error {
	user, err := i.GetByEmployeeID(employeeID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	user.EmployeeID = ""
	user.Active = false
	return i.store.Save(*user)
}

const (
	maxUsernameAttempts  = 20
	visibilityRetries    = 3
	visibilityRetryDelay = 300 * time.Millisecond
)

// generateUniqueUsername проверка уникальности многослойная: хранилище с объединением
// внешнего и локального наборов может давать рассогласованные срезы, поэтому одной
// проверки недостаточно - числовые суффиксы, затем суффикс из метки времени,
// затем контрольная проверка перед записью
func (i impl) generateUniqueUsername(base string) (string, error) {
	users, err := i.store.GetAll()
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения списка пользователей")
	}
	taken := make(map[string]struct{}, len(users))
	for _, user := range users {
		taken[toLower(user.Username)] = struct{}{}
	}

	candidate := base
	found := false
	for attempt := 1; attempt <= maxUsernameAttempts; attempt++ {
		if _, exist := taken[toLower(candidate)]; !exist {
			found = true
			break
		}
		candidate = fmt.Sprintf("%s%d", base, attempt)
	}
	if !found {
		if _, exist := taken[toLower(candidate)]; exist {
			candidate = base + time.Now().Format("20060102150405")
		}
	}

	existing, err := i.GetByUsername(candidate)
	if err != nil {
		return "", errors.Wrap(err, "ошибка контрольной проверки уникальности имени пользователя")
	}
	if existing != nil {
		return "", errors.New("не удалось подобрать уникальное имя пользователя")
	}
	return candidate, nil
}

func (i impl) waitVisible(username string) {
	for attempt := 0; attempt < visibilityRetries; attempt++ {
		rec, err := i.GetByUsername(username)
		if err == nil && rec != nil {
			return
		}
		time.Sleep(visibilityRetryDelay)
	}
	log.WithField("username", username).Warn("созданная учетная запись не видна при чтении")
}

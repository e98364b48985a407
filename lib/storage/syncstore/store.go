package syncstore

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record хранимая запись, идентифицируется строковым id
type Record interface {
	GetID() string
}

// Provider единый CRUD-контракт поверх двух хранилищ:
// внешняя БД авторитетна, когда настроена и доступна,
// локальный кэш всегда пишется как резервная копия и служит
// единственным источником при недоступной внешней БД
type Provider[E Record] interface {
	GetAll() ([]E, error)
	GetByID(id string) (*E, error)
	Save(rec E) error
	Delete(id string) error
	GetByField(field, value string) (*E, error)
}

// NewInstance remote может быть nil - тогда работа идет только с локальным кэшем
func NewInstance[E Record](entity string, remote, local *gorm.DB) Provider[E] {
	return &impl[E]{
		entity: entity,
		remote: remote,
		local:  local,
	}
}

type impl[E Record] struct {
	entity string
	remote *gorm.DB
	local  *gorm.DB
}

func (i impl[E]) logger() *log.Entry {
	return log.WithField("entity", i.entity)
}

func (i impl[E]) localList() (list []E, err error) {
	var model E
	err = i.local.Model(&model).Find(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения %s из локального кэша", i.entity)
	}
	return list, nil
}

// GetAll объединение внешнего и локального набора по id, внешняя запись приоритетнее.
// Так не теряются записи, созданные до настройки внешней БД или в офлайне,
// а отредактированные во внешней БД записи всегда отдаются в авторитетном виде.
func (i impl[E]) GetAll() ([]E, error) {
	if i.remote == nil {
		return i.localList()
	}
	var model E
	var remoteList []E
	err := i.remote.Model(&model).Find(&remoteList).Error
	if err != nil {
		i.logger().WithError(err).Warn("внешняя БД недоступна, используется локальный кэш")
		return i.localList()
	}
	localList, err := i.localList()
	if err != nil {
		i.logger().WithError(err).Warn("ошибка чтения локального кэша, возвращаются данные внешней БД")
		return remoteList, nil
	}
	seen := make(map[string]struct{}, len(remoteList))
	merged := make([]E, 0, len(remoteList)+len(localList))
	for _, rec := range remoteList {
		seen[rec.GetID()] = struct{}{}
		merged = append(merged, rec)
	}
	for _, rec := range localList {
		if _, exist := seen[rec.GetID()]; exist {
			continue
		}
		merged = append(merged, rec)
	}
	return merged, nil
}

// GetByID внешняя БД авторитетна: её "запись не найдена" не перекрывается локальным кэшем,
// переход на кэш происходит только при недоступности внешней БД
func (i impl[E]) GetByID(id string) (*E, error) {
	if i.remote != nil {
		rec, err := getOne[E](i.remote, "id = ?", id)
		if err == nil {
			return rec, nil
		}
		i.logger().WithError(err).Warn("внешняя БД недоступна, поиск записи в локальном кэше")
	}
	rec, err := getOne[E](i.local, "id = ?", id)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка поиска %s в локальном кэше", i.entity)
	}
	return rec, nil
}

// Save сначала запись во внешнюю БД, затем в любом случае в локальный кэш;
// ошибка внешней записи возвращается вызывающему после записи в кэш
func (i impl[E]) Save(rec E) error {
	var remoteErr error
	if i.remote != nil {
		remoteErr = upsert(i.remote, &rec)
	}
	if err := upsert(i.local, &rec); err != nil {
		if remoteErr != nil {
			i.logger().WithError(err).Error("ошибка записи в локальный кэш")
			return errors.Wrapf(remoteErr, "ошибка сохранения %s во внешней БД", i.entity)
		}
		return errors.Wrapf(err, "ошибка сохранения %s в локальном кэше", i.entity)
	}
	if remoteErr != nil {
		return errors.Wrapf(remoteErr, "ошибка сохранения %s во внешней БД", i.entity)
	}
	return nil
}

func (i impl[E]) Delete(id string) error {
	var model E
	var remoteErr error
	if i.remote != nil {
		remoteErr = i.remote.Where("id = ?", id).Delete(&model).Error
	}
	if err := i.local.Where("id = ?", id).Delete(&model).Error; err != nil {
		if remoteErr != nil {
			i.logger().WithError(err).Error("ошибка удаления из локального кэша")
			return errors.Wrapf(remoteErr, "ошибка удаления %s из внешней БД", i.entity)
		}
		return errors.Wrapf(err, "ошибка удаления %s из локального кэша", i.entity)
	}
	if remoteErr != nil {
		return errors.Wrapf(remoteErr, "ошибка удаления %s из внешней БД", i.entity)
	}
	return nil
}

// GetByField поиск по уникальному полю без учета регистра.
// При настроенной внешней БД локальный кэш не опрашивается на чистое "не найдено",
// иначе проверка уникальности работала бы по устаревшим данным.
func (i impl[E]) GetByField(field, value string) (*E, error) {
	condition := fmt.Sprintf("LOWER(%s) = LOWER(?)", field)
	if i.remote != nil {
		rec, err := getOne[E](i.remote, condition, value)
		if err == nil {
			return rec, nil
		}
		i.logger().WithError(err).Warn("внешняя БД недоступна, поиск записи в локальном кэше")
	}
	rec, err := getOne[E](i.local, condition, value)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка поиска %s в локальном кэше", i.entity)
	}
	return rec, nil
}

// getOne чистое "не найдено" возвращается как nil, nil и не считается недоступностью
func getOne[E Record](database *gorm.DB, condition string, value string) (*E, error) {
	var rec E
	err := database.Where(condition, value).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func upsert[E Record](database *gorm.DB, rec *E) error {
	return database.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

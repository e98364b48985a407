package assignmentshandler

import (
	"time"

	"appraisal-backend/db"
	employeeshandler "appraisal-backend/lib/employees"
	"appraisal-backend/lib/eventbus"
	"appraisal-backend/lib/resolution"
	"appraisal-backend/lib/storage/syncstore"
	"appraisal-backend/models"
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	dbmodels "appraisal-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetAll() ([]appraisalapimodels.Assignment, error)
	GetByPeriod(reviewPeriodID string) ([]appraisalapimodels.Assignment, error)
	GetByID(assignmentID string) (*appraisalapimodels.Assignment, error)
	// Preview расчет назначений по оргструктуре без сохранения
	Preview(request appraisalapimodels.PreviewRequest) (appraisalapimodels.PreviewResponse, error)
	// Confirm сохранение подтвержденного списка назначений
	Confirm(request appraisalapimodels.ConfirmRequest) error
	CreateManual(request appraisalapimodels.CreateAssignment) (appraisalapimodels.Assignment, error)
	Advance(assignmentID string, status models.AssignmentStatus) error
	Delete(assignmentID string) error
	Store() syncstore.Provider[dbmodels.AppraisalAssignment]
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncstore.NewInstance[dbmodels.AppraisalAssignment]("appraisal_assignment", db.Remote, db.Local),
	}
}

type impl struct {
	store syncstore.Provider[dbmodels.AppraisalAssignment]
}

func (i impl) Store() syncstore.Provider[dbmodels.AppraisalAssignment] {
	return i.store
}

func (i impl) GetAll() ([]appraisalapimodels.Assignment, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]appraisalapimodels.Assignment, 0, len(records))
	for _, rec := range records {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByPeriod(reviewPeriodID string) ([]appraisalapimodels.Assignment, error) {
	records, err := i.store.GetAll()
	if err != nil {
		return nil, err
	}
	list := []appraisalapimodels.Assignment{}
	for _, rec := range records {
		if rec.ReviewPeriodID == reviewPeriodID {
			list = append(list, rec.ToModel())
		}
	}
	return list, nil
}

func (i impl) GetByID(assignmentID string) (*appraisalapimodels.Assignment, error) {
	rec, err := i.store.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	model := rec.ToModel()
	return &model, nil
}

func (i impl) Preview(request appraisalapimodels.PreviewRequest) (appraisalapimodels.PreviewResponse, error) {
	// в расчет попадают только активные сотрудники
	employees, err := employeeshandler.Instance.GetActiveRecords()
	if err != nil {
		return appraisalapimodels.PreviewResponse{}, errors.Wrap(err, "ошибка получения сотрудников для расчета назначений")
	}
	res := resolution.Preview(employees, resolution.Options{
		ReviewPeriodID: request.ReviewPeriodID,
		LeaderToMember: request.LeaderToMember,
		MemberToLeader: request.MemberToLeader,
		LeaderToLeader: request.LeaderToLeader,
		ExecToLeader:   request.ExecToLeader,
		HRToAll:        request.HRToAll,
	})
	assignments := resolution.BuildAssignments(res, request.TemplateMapping, request.ReviewPeriodID, request.DueDate)
	response := appraisalapimodels.PreviewResponse{
		Assignments: make([]appraisalapimodels.Assignment, 0, len(assignments)),
		Warnings:    res.Warnings,
	}
	for _, assignment := range assignments {
		response.Assignments = append(response.Assignments, assignment.ToModel())
	}
	return response, nil
}

func (i impl) Confirm(request appraisalapimodels.ConfirmRequest) error {
	for _, model := range request.Assignments {
		rec := dbmodels.AssignmentFromModel(model)
		if rec.Status == "" {
			rec.Status = models.AssignmentStatusPending
		}
		if err := rec.Validate(); err != nil {
			return err
		}
		if err := i.store.Save(rec); err != nil {
			log.
				WithField("assignment_id", rec.ID).
				WithError(err).
				Error("ошибка сохранения назначения")
			return err
		}
	}
	eventbus.Instance.Publish(eventbus.TopicAssignmentsCreated, len(request.Assignments))
	return nil
}

func (i impl) CreateManual(request appraisalapimodels.CreateAssignment) (appraisalapimodels.Assignment, error) {
	appraiser, err := employeeshandler.Instance.GetByID(request.AppraiserID)
	if err != nil {
		return appraisalapimodels.Assignment{}, err
	}
	subject, err := employeeshandler.Instance.GetByID(request.EmployeeID)
	if err != nil {
		return appraisalapimodels.Assignment{}, err
	}
	if appraiser == nil || subject == nil {
		return appraisalapimodels.Assignment{}, errors.New("сотрудник из пары оценки не найден")
	}
	relType := request.RelationshipType
	if relType == "" {
		relType = models.RelationshipCustom
	}
	rec := dbmodels.AppraisalAssignment{
		BaseModel:        dbmodels.BaseModel{ID: uuid.NewString(), CreatedAt: time.Now()},
		ReviewPeriodID:   request.ReviewPeriodID,
		AppraiserID:      appraiser.ID,
		AppraiserName:    appraiser.Name,
		EmployeeID:       subject.ID,
		EmployeeName:     subject.Name,
		RelationshipType: relType,
		TemplateID:       request.TemplateID,
		Status:           models.AssignmentStatusPending,
		AssignmentType:   models.AssignmentTypeManual,
		DueDate:          request.DueDate,
	}
	if err = rec.Validate(); err != nil {
		return appraisalapimodels.Assignment{}, err
	}
	if err = i.store.Save(rec); err != nil {
		return appraisalapimodels.Assignment{}, errors.Wrap(err, "ошибка сохранения назначения")
	}
	return rec.ToModel(), nil
}

// Advance статус движется только вперед, возврат из completed невозможен
func (i impl) Advance(assignmentID string, status models.AssignmentStatus) error {
	rec, err := i.store.GetByID(assignmentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("назначение не найдено")
	}
	if !rec.Status.CanAdvanceTo(status) {
		return errors.Errorf("недопустимая смена статуса назначения: %s -> %s", rec.Status, status)
	}
	if rec.Status == status {
		return nil
	}
	rec.Status = status
	return i.store.Save(*rec)
}

func (i impl) Delete(assignmentID string) error {
	return i.store.Delete(assignmentID)
}

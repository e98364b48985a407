package dbmodels

import (
	"testing"
	"time"

	"appraisal-backend/models"

	"github.com/stretchr/testify/require"
)

func TestEmployeeConvert(t *testing.T) {
	t.Run(`все поля переживают прямую и обратную конвертацию`, func(t *testing.T) {
		rec := Employee{
			BaseModel:           BaseModel{ID: "emp-1"},
			Name:                "Иван Иванов",
			Email:               "ivan@corp.example",
			Role:                "Инженер",
			Hierarchy:           models.HierarchyMember,
			TeamID:              "team-1",
			ReportsTo:           "leader-1",
			DottedLineReportsTo: []string{"leader-2"},
			EmploymentStatus:    models.EmploymentStatusPermanent,
		}
		require.Equal(t, rec, EmployeeFromModel(rec.ToModel()))
	})
}

func TestTeamConvert(t *testing.T) {
	t.Run(`список руководителей и куратор сохраняются`, func(t *testing.T) {
		rec := Team{
			BaseModel:            BaseModel{ID: "team-1"},
			Name:                 "Разработка",
			Description:          "Команда продуктовой разработки",
			OversightExecutiveID: "exec-1",
			LeaderIDs:            []string{"leader-1", "leader-2"},
		}
		require.Equal(t, rec, TeamFromModel(rec.ToModel()))
	})
}

func TestReviewPeriodConvert(t *testing.T) {
	t.Run(`границы периода и признак активности сохраняются`, func(t *testing.T) {
		rec := ReviewPeriod{
			BaseModel: BaseModel{ID: "period-1"},
			Name:      "Q3 2026",
			Type:      models.PeriodTypeQuarter,
			Year:      2026,
			StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
			Active:    true,
		}
		require.Equal(t, rec, ReviewPeriodFromModel(rec.ToModel()))
	})
}

func TestTemplateConvert(t *testing.T) {
	t.Run(`вложенные категории и вопросы сохраняются`, func(t *testing.T) {
		rec := AppraisalTemplate{
			BaseModel: BaseModel{ID: "tmpl-1"},
			Name:      "Шаблон",
			Type:      models.RelationshipLeaderToMember,
			Categories: []TemplateCategory{
				{
					ID:    "cat-1",
					Title: "Результативность",
					Items: []TemplateItem{
						{ID: "q1", Text: "Качество работы", Weight: 60, Type: models.QuestionTypeRating, Required: true},
						{ID: "q2", Text: "Комментарий", Type: models.QuestionTypeText},
						{ID: "q3", Text: "Формат работы", Type: models.QuestionTypeMultipleChoice, Options: []string{"офис", "удаленно"}},
					},
				},
			},
		}
		require.Equal(t, rec, TemplateFromModel(rec.ToModel()))
	})
}

func TestAssignmentConvert(t *testing.T) {
	t.Run(`статус, тип связи и срок сохраняются`, func(t *testing.T) {
		due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		rec := AppraisalAssignment{
			BaseModel:        BaseModel{ID: "asg-1", CreatedAt: created},
			ReviewPeriodID:   "period-1",
			AppraiserID:      "l1",
			AppraiserName:    "Руководитель",
			EmployeeID:       "m1",
			EmployeeName:     "Сотрудник",
			RelationshipType: models.RelationshipLeaderToMember,
			TemplateID:       "tmpl-1",
			Status:           models.AssignmentStatusInProgress,
			AssignmentType:   models.AssignmentTypeAuto,
			LinkToken:        "token",
			DueDate:          &due,
		}
		require.Equal(t, rec, AssignmentFromModel(rec.ToModel()))
	})
}

func TestLinkConvert(t *testing.T) {
	t.Run(`токен и отметка использования сохраняются`, func(t *testing.T) {
		used := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
		rec := AppraisalLink{
			BaseModel:      BaseModel{ID: "link-1"},
			Token:          "abc123",
			AppraiserID:    "l1",
			EmployeeID:     "m1",
			TemplateID:     "tmpl-1",
			ReviewPeriodID: "period-1",
			Used:           true,
			UsedAt:         &used,
		}
		require.Equal(t, rec, LinkFromModel(rec.ToModel()))
	})
}

func TestAppraisalConvert(t *testing.T) {
	t.Run(`ответы и отметка завершения сохраняются`, func(t *testing.T) {
		completed := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		rec := Appraisal{
			BaseModel:      BaseModel{ID: "apr-1"},
			TemplateID:     "tmpl-1",
			EmployeeID:     "m1",
			AppraiserID:    "l1",
			ReviewPeriodID: "period-1",
			Responses: []AppraisalResponse{
				{QuestionID: "q1", Value: "5"},
				{QuestionID: "q2", Value: "отличная работа"},
			},
			Score:       84,
			MaxScore:    100,
			CompletedAt: &completed,
		}
		require.Equal(t, rec, AppraisalFromModel(rec.ToModel()))
	})
}

func TestSummaryConvert(t *testing.T) {
	t.Run(`агрегаты и разбивка по видам связи сохраняются`, func(t *testing.T) {
		rec := PerformanceSummary{
			BaseModel:      BaseModel{ID: "sum-1"},
			EmployeeID:     "m1",
			ReviewPeriodID: "period-1",
			AveragePercent: 72.5,
			AppraisalCount: 3,
			CountByType: map[models.RelationshipType]int{
				models.RelationshipLeaderToMember: 2,
				models.RelationshipMemberToLeader: 1,
			},
		}
		require.Equal(t, rec, SummaryFromModel(rec.ToModel()))
	})
}

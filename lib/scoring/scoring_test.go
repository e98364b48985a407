package scoring

import (
	"testing"
	"time"

	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"

	"github.com/stretchr/testify/require"
)

func ratingTemplate() dbmodels.AppraisalTemplate {
	return dbmodels.AppraisalTemplate{
		BaseModel: dbmodels.BaseModel{ID: "tmpl-1"},
		Name:      "Шаблон оценки",
		Type:      models.RelationshipLeaderToMember,
		Categories: []dbmodels.TemplateCategory{
			{
				ID:    "cat-1",
				Title: "Результативность",
				Items: []dbmodels.TemplateItem{
					{ID: "q1", Weight: 60, Type: models.QuestionTypeRating},
					{ID: "q2", Weight: 40, Type: models.QuestionTypeRating},
					{ID: "q3", Type: models.QuestionTypeText},
				},
			},
		},
	}
}

func TestScore(t *testing.T) {
	template := ratingTemplate()

	t.Run(`полные ответы`, func(t *testing.T) {
		earned, possible := Score(template, []dbmodels.AppraisalResponse{
			{QuestionID: "q1", Value: "5"},
			{QuestionID: "q2", Value: "3"},
			{QuestionID: "q3", Value: "развернутый комментарий"},
		})
		require.Equal(t, float64(60+24), earned)
		require.Equal(t, float64(100), possible)
	})

	t.Run(`максимум считается только по отвеченным вопросам`, func(t *testing.T) {
		earned, possible := Score(template, []dbmodels.AppraisalResponse{
			{QuestionID: "q1", Value: "4"},
		})
		require.Equal(t, float64(48), earned)
		require.Equal(t, float64(60), possible)
	})

	t.Run(`текстовый ответ не влияет на балл`, func(t *testing.T) {
		earned, possible := Score(template, []dbmodels.AppraisalResponse{
			{QuestionID: "q3", Value: "только текст"},
		})
		require.Zero(t, earned)
		require.Zero(t, possible)
	})

	t.Run(`значение вне диапазона пропускается`, func(t *testing.T) {
		earned, possible := Score(template, []dbmodels.AppraisalResponse{
			{QuestionID: "q1", Value: "7"},
			{QuestionID: "q2", Value: "abc"},
		})
		require.Zero(t, earned)
		require.Zero(t, possible)
	})

	t.Run(`пустое значение считается неотвеченным`, func(t *testing.T) {
		earned, possible := Score(template, []dbmodels.AppraisalResponse{
			{QuestionID: "q1", Value: ""},
			{QuestionID: "q2", Value: "5"},
		})
		require.Equal(t, float64(40), earned)
		require.Equal(t, float64(40), possible)
	})
}

func TestPercent(t *testing.T) {
	t.Run(`доля от возможного`, func(t *testing.T) {
		require.Equal(t, float64(84), Percent(84, 100))
		require.Equal(t, float64(50), Percent(30, 60))
	})

	t.Run(`ноль возможных - ноль процентов`, func(t *testing.T) {
		require.Zero(t, Percent(0, 0))
	})
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	templates := []dbmodels.AppraisalTemplate{
		{BaseModel: dbmodels.BaseModel{ID: "tmpl-down"}, Type: models.RelationshipLeaderToMember},
		{BaseModel: dbmodels.BaseModel{ID: "tmpl-hr"}, Type: models.RelationshipHRToAll},
	}
	appraisals := []dbmodels.Appraisal{
		{TemplateID: "tmpl-down", EmployeeID: "m1", ReviewPeriodID: "p1", Score: 80, MaxScore: 100, CompletedAt: &now},
		{TemplateID: "tmpl-hr", EmployeeID: "m1", ReviewPeriodID: "p1", Score: 30, MaxScore: 50, CompletedAt: &now},
		// незавершенная оценка в агрегат не входит
		{TemplateID: "tmpl-down", EmployeeID: "m1", ReviewPeriodID: "p1", Score: 10, MaxScore: 100},
		// чужой сотрудник и чужой период отфильтровываются
		{TemplateID: "tmpl-down", EmployeeID: "m2", ReviewPeriodID: "p1", Score: 100, MaxScore: 100, CompletedAt: &now},
		{TemplateID: "tmpl-down", EmployeeID: "m1", ReviewPeriodID: "p2", Score: 100, MaxScore: 100, CompletedAt: &now},
	}

	t.Run(`агрегат по завершенным оценкам`, func(t *testing.T) {
		summary := Summarize("m1", "p1", appraisals, templates)
		require.Equal(t, 2, summary.AppraisalCount)
		require.Equal(t, float64(70), summary.AveragePercent)
		require.Equal(t, 1, summary.CountByType[models.RelationshipLeaderToMember])
		require.Equal(t, 1, summary.CountByType[models.RelationshipHRToAll])
	})

	t.Run(`нет оценок - пустой агрегат`, func(t *testing.T) {
		summary := Summarize("m9", "p1", appraisals, templates)
		require.Zero(t, summary.AppraisalCount)
		require.Zero(t, summary.AveragePercent)
	})
}

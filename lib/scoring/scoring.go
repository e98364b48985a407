package scoring

import (
	"strconv"

	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"
)

// Score считает набранный и максимально возможный балл по фактически отвеченным вопросам.
// Вклад вопроса с оценкой 1-5 равен weight*value/5, максимум равен weight.
// Текстовые вопросы и вопросы с выбором варианта в балл не входят.
// Веса шаблона не обязаны суммироваться в 100.
func Score(template dbmodels.AppraisalTemplate, responses []dbmodels.AppraisalResponse) (earned, possible float64) {
	answered := make(map[string]string, len(responses))
	for _, response := range responses {
		if response.Value == "" {
			continue
		}
		answered[response.QuestionID] = response.Value
	}
	for _, category := range template.Categories {
		for _, item := range category.Items {
			if item.Type != models.QuestionTypeRating {
				continue
			}
			value, exist := answered[item.ID]
			if !exist {
				continue
			}
			rating, err := strconv.ParseFloat(value, 64)
			if err != nil || rating < 1 || rating > 5 {
				continue
			}
			earned += item.Weight * rating / 5
			possible += item.Weight
		}
	}
	return earned, possible
}

// Percent доля набранного от возможного, 0 при отсутствии оцениваемых ответов
func Percent(earned, possible float64) float64 {
	if possible == 0 {
		return 0
	}
	return earned / possible * 100
}

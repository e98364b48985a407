package dbmodels

import (
	appraisalapimodels "appraisal-backend/models/api/appraisal"
	orgapimodels "appraisal-backend/models/api/org"
)

// Конвертация между snake_case колонками БД и camelCase моделью API.
// Маппинг должен быть исчерпывающим, проверяется тестами.

func (e Employee) ToModel() orgapimodels.Employee {
	return orgapimodels.Employee{
		ID:                  e.ID,
		Name:                e.Name,
		Email:               e.Email,
		Role:                e.Role,
		Hierarchy:           e.Hierarchy,
		ExecutiveType:       e.ExecutiveType,
		TeamID:              e.TeamID,
		ReportsTo:           e.ReportsTo,
		DottedLineReportsTo: e.DottedLineReportsTo,
		EmploymentStatus:    e.EmploymentStatus,
	}
}

func EmployeeFromModel(m orgapimodels.Employee) Employee {
	return Employee{
		BaseModel:           BaseModel{ID: m.ID},
		Name:                m.Name,
		Email:               m.Email,
		Role:                m.Role,
		Hierarchy:           m.Hierarchy,
		ExecutiveType:       m.ExecutiveType,
		TeamID:              m.TeamID,
		ReportsTo:           m.ReportsTo,
		DottedLineReportsTo: m.DottedLineReportsTo,
		EmploymentStatus:    m.EmploymentStatus,
	}
}

func (t Team) ToModel() orgapimodels.Team {
	return orgapimodels.Team{
		ID:                   t.ID,
		Name:                 t.Name,
		Description:          t.Description,
		OversightExecutiveID: t.OversightExecutiveID,
		LeaderIDs:            t.LeaderIDs,
	}
}

func TeamFromModel(m orgapimodels.Team) Team {
	return Team{
		BaseModel:            BaseModel{ID: m.ID},
		Name:                 m.Name,
		Description:          m.Description,
		OversightExecutiveID: m.OversightExecutiveID,
		LeaderIDs:            m.LeaderIDs,
	}
}

func (p ReviewPeriod) ToModel() appraisalapimodels.ReviewPeriod {
	return appraisalapimodels.ReviewPeriod{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Year:      p.Year,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Active:    p.Active,
	}
}

func ReviewPeriodFromModel(m appraisalapimodels.ReviewPeriod) ReviewPeriod {
	return ReviewPeriod{
		BaseModel: BaseModel{ID: m.ID},
		Name:      m.Name,
		Type:      m.Type,
		Year:      m.Year,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Active:    m.Active,
	}
}

func (t AppraisalTemplate) ToModel() appraisalapimodels.Template {
	categories := make([]appraisalapimodels.TemplateCategory, 0, len(t.Categories))
	for _, category := range t.Categories {
		items := make([]appraisalapimodels.TemplateItem, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, appraisalapimodels.TemplateItem{
				ID:       item.ID,
				Text:     item.Text,
				Weight:   item.Weight,
				Type:     item.Type,
				Required: item.Required,
				Options:  item.Options,
			})
		}
		categories = append(categories, appraisalapimodels.TemplateCategory{
			ID:    category.ID,
			Title: category.Title,
			Items: items,
		})
	}
	return appraisalapimodels.Template{
		ID:         t.ID,
		Name:       t.Name,
		Type:       t.Type,
		Categories: categories,
	}
}

func TemplateFromModel(m appraisalapimodels.Template) AppraisalTemplate {
	categories := make([]TemplateCategory, 0, len(m.Categories))
	for _, category := range m.Categories {
		items := make([]TemplateItem, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, TemplateItem{
				ID:       item.ID,
				Text:     item.Text,
				Weight:   item.Weight,
				Type:     item.Type,
				Required: item.Required,
				Options:  item.Options,
			})
		}
		categories = append(categories, TemplateCategory{
			ID:    category.ID,
			Title: category.Title,
			Items: items,
		})
	}
	return AppraisalTemplate{
		BaseModel:  BaseModel{ID: m.ID},
		Name:       m.Name,
		Type:       m.Type,
		Categories: categories,
	}
}

func (a AppraisalAssignment) ToModel() appraisalapimodels.Assignment {
	return appraisalapimodels.Assignment{
		ID:               a.ID,
		ReviewPeriodID:   a.ReviewPeriodID,
		AppraiserID:      a.AppraiserID,
		AppraiserName:    a.AppraiserName,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		RelationshipType: a.RelationshipType,
		TemplateID:       a.TemplateID,
		Status:           a.Status,
		AssignmentType:   a.AssignmentType,
		LinkToken:        a.LinkToken,
		CreatedAt:        a.CreatedAt,
		DueDate:          a.DueDate,
	}
}

func AssignmentFromModel(m appraisalapimodels.Assignment) AppraisalAssignment {
	return AppraisalAssignment{
		BaseModel:        BaseModel{ID: m.ID, CreatedAt: m.CreatedAt},
		ReviewPeriodID:   m.ReviewPeriodID,
		AppraiserID:      m.AppraiserID,
		AppraiserName:    m.AppraiserName,
		EmployeeID:       m.EmployeeID,
		EmployeeName:     m.EmployeeName,
		RelationshipType: m.RelationshipType,
		TemplateID:       m.TemplateID,
		Status:           m.Status,
		AssignmentType:   m.AssignmentType,
		LinkToken:        m.LinkToken,
		DueDate:          m.DueDate,
	}
}

func (l AppraisalLink) ToModel() appraisalapimodels.Link {
	return appraisalapimodels.Link{
		ID:             l.ID,
		Token:          l.Token,
		AppraiserID:    l.AppraiserID,
		EmployeeID:     l.EmployeeID,
		TemplateID:     l.TemplateID,
		ReviewPeriodID: l.ReviewPeriodID,
		Used:           l.Used,
		UsedAt:         l.UsedAt,
	}
}

func LinkFromModel(m appraisalapimodels.Link) AppraisalLink {
	return AppraisalLink{
		BaseModel:      BaseModel{ID: m.ID},
		Token:          m.Token,
		AppraiserID:    m.AppraiserID,
		EmployeeID:     m.EmployeeID,
		TemplateID:     m.TemplateID,
		ReviewPeriodID: m.ReviewPeriodID,
		Used:           m.Used,
		UsedAt:         m.UsedAt,
	}
}

func (a Appraisal) ToModel() appraisalapimodels.Appraisal {
	responses := make([]appraisalapimodels.Response, 0, len(a.Responses))
	for _, response := range a.Responses {
		responses = append(responses, appraisalapimodels.Response{
			QuestionID: response.QuestionID,
			Value:      response.Value,
		})
	}
	return appraisalapimodels.Appraisal{
		ID:             a.ID,
		TemplateID:     a.TemplateID,
		EmployeeID:     a.EmployeeID,
		AppraiserID:    a.AppraiserID,
		ReviewPeriodID: a.ReviewPeriodID,
		Responses:      responses,
		Score:          a.Score,
		MaxScore:       a.MaxScore,
		CompletedAt:    a.CompletedAt,
	}
}

func AppraisalFromModel(m appraisalapimodels.Appraisal) Appraisal {
	responses := make([]AppraisalResponse, 0, len(m.Responses))
	for _, response := range m.Responses {
		responses = append(responses, AppraisalResponse{
			QuestionID: response.QuestionID,
			Value:      response.Value,
		})
	}
	return Appraisal{
		BaseModel:      BaseModel{ID: m.ID},
		TemplateID:     m.TemplateID,
		EmployeeID:     m.EmployeeID,
		AppraiserID:    m.AppraiserID,
		ReviewPeriodID: m.ReviewPeriodID,
		Responses:      responses,
		Score:          m.Score,
		MaxScore:       m.MaxScore,
		CompletedAt:    m.CompletedAt,
	}
}

func (s PerformanceSummary) ToModel() appraisalapimodels.PerformanceSummary {
	return appraisalapimodels.PerformanceSummary{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		ReviewPeriodID: s.ReviewPeriodID,
		AveragePercent: s.AveragePercent,
		AppraisalCount: s.AppraisalCount,
		CountByType:    s.CountByType,
	}
}

func SummaryFromModel(m appraisalapimodels.PerformanceSummary) PerformanceSummary {
	return PerformanceSummary{
		BaseModel:      BaseModel{ID: m.ID},
		EmployeeID:     m.EmployeeID,
		ReviewPeriodID: m.ReviewPeriodID,
		AveragePercent: m.AveragePercent,
		AppraisalCount: m.AppraisalCount,
		CountByType:    m.CountByType,
	}
}

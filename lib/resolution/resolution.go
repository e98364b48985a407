package resolution

import (
	"fmt"
	"strings"

	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"
)

// Options набор включенных правил авторасстановки, периода оценка касается только как метка
type Options struct {
	ReviewPeriodID string
	LeaderToMember bool
	MemberToLeader bool
	LeaderToLeader bool
	ExecToLeader   bool
	HRToAll        bool
}

// Pair пара оценивающий-оцениваемый с денормализованными именами
type Pair struct {
	AppraiserID   string
	AppraiserName string
	EmployeeID    string
	EmployeeName  string
}

type Result struct {
	Pairs    map[models.RelationshipType][]Pair
	Warnings []string
}

// Preview вычисляет полный набор пар оценки по оргструктуре.
// Чистая функция: без I/O, входной срез не изменяется, результат детерминирован,
// предупреждения только информационные - результат выдается всегда.
func Preview(employees []dbmodels.Employee, opts Options) Result {
	res := Result{
		Pairs:    map[models.RelationshipType][]Pair{},
		Warnings: []string{},
	}

	var leaders, executives, hrStaff, members []dbmodels.Employee
	for _, e := range employees {
		switch {
		case e.Hierarchy.IsDepartmentLeader():
			leaders = append(leaders, e)
		case e.Hierarchy.IsExecutive():
			executives = append(executives, e)
		case e.Hierarchy.IsHR():
			hrStaff = append(hrStaff, e)
		case e.Hierarchy.IsMember():
			members = append(members, e)
		}
	}

	if opts.LeaderToMember || opts.MemberToLeader {
		downward := resolveDownward(leaders, members, &res)
		if opts.LeaderToMember {
			res.Pairs[models.RelationshipLeaderToMember] = downward
		}
		if opts.MemberToLeader {
			res.Pairs[models.RelationshipMemberToLeader] = mirror(downward)
		}
	}

	if opts.LeaderToLeader {
		if len(leaders) < 2 {
			res.Warnings = append(res.Warnings, "недостаточно руководителей подразделений для взаимной оценки (нужно минимум два)")
			res.Pairs[models.RelationshipLeaderToLeader] = []Pair{}
		} else {
			var pairs []Pair
			for _, appraiser := range leaders {
				for _, subject := range leaders {
					if appraiser.ID == subject.ID {
						continue
					}
					pairs = append(pairs, newPair(appraiser, subject))
				}
			}
			res.Pairs[models.RelationshipLeaderToLeader] = pairs
		}
	}

	if opts.ExecToLeader {
		if len(executives) == 0 {
			res.Warnings = append(res.Warnings, "нет руководителей высшего звена для оценки руководителей подразделений")
		}
		if len(leaders) == 0 {
			res.Warnings = append(res.Warnings, "нет руководителей подразделений для оценки высшим звеном")
		}
		pairs := []Pair{}
		for _, appraiser := range executives {
			for _, subject := range leaders {
				pairs = append(pairs, newPair(appraiser, subject))
			}
		}
		res.Pairs[models.RelationshipExecToLeader] = pairs
	}

	if opts.HRToAll {
		// руководители высшего звена и председатель никогда не являются объектами автоматической оценки
		var eligible []dbmodels.Employee
		for _, e := range employees {
			if e.Hierarchy.IsHR() || e.Hierarchy.IsExecutive() || e.Hierarchy.IsChairman() {
				continue
			}
			eligible = append(eligible, e)
		}
		if len(hrStaff) == 0 {
			res.Warnings = append(res.Warnings, "нет HR-сотрудников для проведения оценки")
		} else if len(eligible) == 0 {
			res.Warnings = append(res.Warnings, "нет сотрудников, доступных для оценки HR")
		}
		pairs := []Pair{}
		for _, appraiser := range hrStaff {
			for _, subject := range eligible {
				pairs = append(pairs, newPair(appraiser, subject))
			}
		}
		res.Pairs[models.RelationshipHRToAll] = pairs
	}

	return res
}

// resolveDownward пары руководитель-подчиненный.
// Подчиненные определяются по прямой ссылке reportsTo (ровно один переход,
// циклы в данных не зацикливают расчет) и по членству в команде руководителя:
// руководство подразделением распространяется на всю команду, даже если
// reportsTo сотрудника указывает в другое место. Дубли пар исключаются.
func resolveDownward(leaders, members []dbmodels.Employee, res *Result) []Pair {
	pairs := []Pair{}
	seen := map[string]struct{}{}
	for _, leader := range leaders {
		resolved := 0
		for _, member := range members {
			byReportsTo := member.ReportsTo != "" && member.ReportsTo == leader.ID
			byTeam := leader.TeamID != "" && member.TeamID == leader.TeamID
			if !byReportsTo && !byTeam {
				continue
			}
			resolved++
			key := leader.ID + "|" + member.ID
			if _, exist := seen[key]; exist {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, newPair(leader, member))
		}
		if resolved == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("у руководителя %s нет ни одного подчиненного для оценки", leader.Name))
		}
	}

	var unreachable []string
	for _, member := range members {
		if member.ReportsTo == "" && member.TeamID == "" {
			unreachable = append(unreachable, member.Name)
		}
	}
	if len(unreachable) > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("сотрудники без руководителя и команды не попадут в оценку (%d): %s",
			len(unreachable), strings.Join(unreachable, ", ")))
	}
	return pairs
}

// mirror обратные пары строятся из уже вычисленных прямых, а не пересчитываются:
// каждая прямая пара имеет ровно одну обратную
func mirror(downward []Pair) []Pair {
	mirrored := make([]Pair, 0, len(downward))
	for _, p := range downward {
		mirrored = append(mirrored, Pair{
			AppraiserID:   p.EmployeeID,
			AppraiserName: p.EmployeeName,
			EmployeeID:    p.AppraiserID,
			EmployeeName:  p.AppraiserName,
		})
	}
	return mirrored
}

func newPair(appraiser, subject dbmodels.Employee) Pair {
	return Pair{
		AppraiserID:   appraiser.ID,
		AppraiserName: appraiser.Name,
		EmployeeID:    subject.ID,
		EmployeeName:  subject.Name,
	}
}

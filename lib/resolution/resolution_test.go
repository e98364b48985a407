package resolution

import (
	"testing"

	"appraisal-backend/models"
	dbmodels "appraisal-backend/models/db"

	"github.com/stretchr/testify/require"
)

func employee(id, name string, hierarchy models.Hierarchy, teamID, reportsTo string) dbmodels.Employee {
	return dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
		Name:      name,
		Hierarchy: hierarchy,
		TeamID:    teamID,
		ReportsTo: reportsTo,
	}
}

func allOptions() Options {
	return Options{
		LeaderToMember: true,
		MemberToLeader: true,
		LeaderToLeader: true,
		ExecToLeader:   true,
		HRToAll:        true,
	}
}

func pairKeys(pairs []Pair) map[string]struct{} {
	keys := map[string]struct{}{}
	for _, p := range pairs {
		keys[p.AppraiserID+"|"+p.EmployeeID] = struct{}{}
	}
	return keys
}

func TestPreview(t *testing.T) {
	chairman := employee("c1", "Председатель", models.HierarchyChairman, "", "")
	exec1 := employee("e1", "Директор", models.HierarchyExecutive, "", "")
	leader1 := employee("l1", "Руководитель 1", models.HierarchyDepartmentLeader, "t1", "")
	leader2 := employee("l2", "Руководитель 2", models.HierarchyDepartmentLeader, "t2", "")
	member1 := employee("m1", "Сотрудник 1", models.HierarchyMember, "t1", "l1")
	member2 := employee("m2", "Сотрудник 2", models.HierarchyMember, "t1", "l2")
	hr1 := employee("h1", "HR", models.HierarchyHR, "", "")
	org := []dbmodels.Employee{chairman, exec1, leader1, leader2, member1, member2, hr1}

	t.Run(`руководитель оценивает и прямых подчиненных, и всю команду`, func(t *testing.T) {
		res := Preview(org, Options{LeaderToMember: true})
		keys := pairKeys(res.Pairs[models.RelationshipLeaderToMember])
		// m1 подчинен l1 и по reportsTo, и по команде, пара одна
		require.Contains(t, keys, "l1|m1")
		// m2 в команде l1 по teamId, хотя reportsTo указывает на l2
		require.Contains(t, keys, "l1|m2")
		// прямая ссылка m2 -> l2 тоже дает пару
		require.Contains(t, keys, "l2|m2")
		require.Len(t, keys, 3)
	})

	t.Run(`обратные пары зеркальны прямым`, func(t *testing.T) {
		res := Preview(org, Options{LeaderToMember: true, MemberToLeader: true})
		downward := res.Pairs[models.RelationshipLeaderToMember]
		upward := res.Pairs[models.RelationshipMemberToLeader]
		require.Equal(t, len(downward), len(upward))
		upKeys := pairKeys(upward)
		for _, p := range downward {
			require.Contains(t, upKeys, p.EmployeeID+"|"+p.AppraiserID)
		}
	})

	t.Run(`взаимная оценка руководителей без самооценки`, func(t *testing.T) {
		res := Preview(org, Options{LeaderToLeader: true})
		pairs := res.Pairs[models.RelationshipLeaderToLeader]
		require.Len(t, pairs, 2)
		for _, p := range pairs {
			require.NotEqual(t, p.AppraiserID, p.EmployeeID)
		}
	})

	t.Run(`один руководитель - предупреждение и пустой список`, func(t *testing.T) {
		res := Preview([]dbmodels.Employee{leader1}, Options{LeaderToLeader: true})
		require.Empty(t, res.Pairs[models.RelationshipLeaderToLeader])
		require.NotEmpty(t, res.Warnings)
	})

	t.Run(`высшее звено оценивает всех руководителей`, func(t *testing.T) {
		res := Preview(org, Options{ExecToLeader: true})
		keys := pairKeys(res.Pairs[models.RelationshipExecToLeader])
		require.Contains(t, keys, "e1|l1")
		require.Contains(t, keys, "e1|l2")
		require.Len(t, keys, 2)
	})

	t.Run(`HR оценивает всех кроме HR, высшего звена и председателя`, func(t *testing.T) {
		res := Preview(org, Options{HRToAll: true})
		keys := pairKeys(res.Pairs[models.RelationshipHRToAll])
		require.Contains(t, keys, "h1|l1")
		require.Contains(t, keys, "h1|l2")
		require.Contains(t, keys, "h1|m1")
		require.Contains(t, keys, "h1|m2")
		require.Len(t, keys, 4)
	})

	t.Run(`председатель и высшее звено никогда не объекты оценки`, func(t *testing.T) {
		res := Preview(org, allOptions())
		for _, pairs := range res.Pairs {
			for _, p := range pairs {
				require.NotEqual(t, chairman.ID, p.EmployeeID)
				require.NotEqual(t, exec1.ID, p.EmployeeID)
			}
		}
	})

	t.Run(`расчет детерминирован`, func(t *testing.T) {
		first := Preview(org, allOptions())
		second := Preview(org, allOptions())
		require.Equal(t, first, second)
	})

	t.Run(`руководитель без подчиненных - предупреждение`, func(t *testing.T) {
		lonely := employee("l9", "Одинокий руководитель", models.HierarchyDepartmentLeader, "", "")
		res := Preview([]dbmodels.Employee{lonely, member1}, Options{LeaderToMember: true})
		require.Contains(t, res.Warnings, "у руководителя Одинокий руководитель нет ни одного подчиненного для оценки")
	})

	t.Run(`сотрудник без руководителя и команды - предупреждение`, func(t *testing.T) {
		orphan := employee("m9", "Без команды", models.HierarchyMember, "", "")
		res := Preview([]dbmodels.Employee{leader1, member1, orphan}, Options{LeaderToMember: true})
		found := false
		for _, w := range res.Warnings {
			if w == "сотрудники без руководителя и команды не попадут в оценку (1): Без команды" {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run(`цикл в reportsTo не зацикливает расчет`, func(t *testing.T) {
		a := employee("a", "А", models.HierarchyMember, "", "b")
		b := employee("b", "Б", models.HierarchyMember, "", "a")
		res := Preview([]dbmodels.Employee{leader1, a, b}, allOptions())
		require.NotNil(t, res.Pairs)
	})

	t.Run(`устаревшее значение иерархии считается руководителем`, func(t *testing.T) {
		legacy := employee("l3", "Старый руководитель", models.HierarchyLeader, "t3", "")
		subordinate := employee("m3", "Сотрудник 3", models.HierarchyMember, "t3", "")
		res := Preview([]dbmodels.Employee{legacy, subordinate}, Options{LeaderToMember: true})
		keys := pairKeys(res.Pairs[models.RelationshipLeaderToMember])
		require.Contains(t, keys, "l3|m3")
	})
}

func TestBuildAssignments(t *testing.T) {
	leader1 := employee("l1", "Руководитель 1", models.HierarchyDepartmentLeader, "t1", "")
	member1 := employee("m1", "Сотрудник 1", models.HierarchyMember, "t1", "l1")
	hr1 := employee("h1", "HR", models.HierarchyHR, "", "")
	res := Preview([]dbmodels.Employee{leader1, member1, hr1}, allOptions())

	mapping := map[models.RelationshipType]string{
		models.RelationshipLeaderToMember: "tmpl-down",
		models.RelationshipMemberToLeader: "tmpl-up",
	}

	t.Run(`назначения наследуют тип связи и шаблон`, func(t *testing.T) {
		assignments := BuildAssignments(res, mapping, "period-1", nil)
		total := 0
		for _, pairs := range res.Pairs {
			total += len(pairs)
		}
		require.Len(t, assignments, total)
		for _, a := range assignments {
			require.NotEmpty(t, a.ID)
			require.Equal(t, "period-1", a.ReviewPeriodID)
			require.Equal(t, models.AssignmentStatusPending, a.Status)
			require.Equal(t, models.AssignmentTypeAuto, a.AssignmentType)
			require.Equal(t, mapping[a.RelationshipType], a.TemplateID)
		}
	})
}

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmploymentStatus(t *testing.T) {
	t.Run(`блокирующие статусы`, func(t *testing.T) {
		require.True(t, EmploymentStatusTerminated.IsLocking())
		require.True(t, EmploymentStatusResigned.IsLocking())
	})

	t.Run(`рабочие статусы не блокируют`, func(t *testing.T) {
		for _, status := range []EmploymentStatus{
			EmploymentStatusPermanent,
			EmploymentStatusTemporary,
			EmploymentStatusContractor,
			EmploymentStatusProbation,
			EmploymentStatusIntern,
			EmploymentStatusOnLeave,
		} {
			require.False(t, status.IsLocking(), string(status))
		}
	})
}

func TestHierarchy(t *testing.T) {
	t.Run(`устаревшее значение leader считается руководителем подразделения`, func(t *testing.T) {
		require.True(t, HierarchyLeader.IsDepartmentLeader())
		require.True(t, HierarchyDepartmentLeader.IsDepartmentLeader())
		require.False(t, HierarchyMember.IsDepartmentLeader())
	})

	t.Run(`человекочитаемые названия`, func(t *testing.T) {
		require.Equal(t, "Руководитель подразделения", HierarchyLeader.ToHuman())
		require.Equal(t, HierarchyDepartmentLeader.ToHuman(), HierarchyLeader.ToHuman())
	})
}

func TestAssignmentStatus(t *testing.T) {
	t.Run(`статус движется только вперед`, func(t *testing.T) {
		require.True(t, AssignmentStatusPending.CanAdvanceTo(AssignmentStatusInProgress))
		require.True(t, AssignmentStatusInProgress.CanAdvanceTo(AssignmentStatusCompleted))
		require.True(t, AssignmentStatusPending.CanAdvanceTo(AssignmentStatusCompleted))
	})

	t.Run(`возврат назад запрещен`, func(t *testing.T) {
		require.False(t, AssignmentStatusCompleted.CanAdvanceTo(AssignmentStatusInProgress))
		require.False(t, AssignmentStatusInProgress.CanAdvanceTo(AssignmentStatusPending))
	})

	t.Run(`повторная установка того же статуса допустима`, func(t *testing.T) {
		require.True(t, AssignmentStatusCompleted.CanAdvanceTo(AssignmentStatusCompleted))
	})

	t.Run(`неизвестный статус не продвигается`, func(t *testing.T) {
		require.False(t, AssignmentStatus("draft").CanAdvanceTo(AssignmentStatusPending))
		require.False(t, AssignmentStatusPending.CanAdvanceTo(AssignmentStatus("draft")))
	})
}

package models

type Hierarchy string

const (
	HierarchyChairman         Hierarchy = "chairman"
	HierarchyExecutive        Hierarchy = "executive"
	HierarchyDepartmentLeader Hierarchy = "department-leader"
	// HierarchyLeader устаревший синоним HierarchyDepartmentLeader, встречается в старых данных
	HierarchyLeader Hierarchy = "leader"
	HierarchyMember Hierarchy = "member"
	HierarchyHR     Hierarchy = "hr"
)

var hierarchyHumanName = map[Hierarchy]string{
	HierarchyChairman:         "Председатель",
	HierarchyExecutive:        "Руководитель высшего звена",
	HierarchyDepartmentLeader: "Руководитель подразделения",
	HierarchyLeader:           "Руководитель подразделения",
	HierarchyMember:           "Сотрудник",
	HierarchyHR:               "HR",
}

func (h Hierarchy) ToHuman() string {
	if human, exist := hierarchyHumanName[h]; exist {
		return human
	}
	return string(h)
}

func (h Hierarchy) IsChairman() bool {
	return h == HierarchyChairman
}

func (h Hierarchy) IsExecutive() bool {
	return h == HierarchyExecutive
}

func (h Hierarchy) IsDepartmentLeader() bool {
	return h == HierarchyDepartmentLeader || h == HierarchyLeader
}

func (h Hierarchy) IsMember() bool {
	return h == HierarchyMember
}

func (h Hierarchy) IsHR() bool {
	return h == HierarchyHR
}

type ExecutiveType string

const (
	ExecutiveTypeOperational ExecutiveType = "operational"
	ExecutiveTypeAdvisory    ExecutiveType = "advisory"
)

type EmploymentStatus string

const (
	EmploymentStatusPermanent  EmploymentStatus = "permanent"
	EmploymentStatusTemporary  EmploymentStatus = "temporary"
	EmploymentStatusContractor EmploymentStatus = "contractor"
	EmploymentStatusProbation  EmploymentStatus = "probation"
	EmploymentStatusIntern     EmploymentStatus = "intern"
	EmploymentStatusOnLeave    EmploymentStatus = "on-leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
)

// LockingStatuses статусы, при которых учетная запись сотрудника блокируется,
// а сам сотрудник исключается из активных списков и оргструктуры
var LockingStatuses = []EmploymentStatus{
	EmploymentStatusTerminated,
	EmploymentStatusResigned,
}

func (s EmploymentStatus) IsLocking() bool {
	for _, locking := range LockingStatuses {
		if s == locking {
			return true
		}
	}
	return false
}

package models

type RelationshipType string

const (
	RelationshipLeaderToMember RelationshipType = "leader-to-member"
	RelationshipMemberToLeader RelationshipType = "member-to-leader"
	RelationshipLeaderToLeader RelationshipType = "leader-to-leader"
	RelationshipExecToLeader   RelationshipType = "exec-to-leader"
	RelationshipHRToAll        RelationshipType = "hr-to-all"
	RelationshipCustom         RelationshipType = "custom"
)

var relationshipHumanName = map[RelationshipType]string{
	RelationshipLeaderToMember: "Руководитель оценивает сотрудника",
	RelationshipMemberToLeader: "Сотрудник оценивает руководителя",
	RelationshipLeaderToLeader: "Взаимная оценка руководителей",
	RelationshipExecToLeader:   "Высшее звено оценивает руководителей",
	RelationshipHRToAll:        "HR оценивает сотрудников",
	RelationshipCustom:         "Произвольное назначение",
}

func (r RelationshipType) ToHuman() string {
	if human, exist := relationshipHumanName[r]; exist {
		return human
	}
	return string(r)
}

type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in-progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

var assignmentStatusRank = map[AssignmentStatus]int{
	AssignmentStatusPending:    0,
	AssignmentStatusInProgress: 1,
	AssignmentStatusCompleted:  2,
}

// CanAdvanceTo статус назначения меняется только вперед, возврат из completed запрещен
func (s AssignmentStatus) CanAdvanceTo(next AssignmentStatus) bool {
	curRank, ok := assignmentStatusRank[s]
	if !ok {
		return false
	}
	nextRank, ok := assignmentStatusRank[next]
	if !ok {
		return false
	}
	return nextRank >= curRank
}

type AssignmentType string

const (
	AssignmentTypeAuto   AssignmentType = "auto"
	AssignmentTypeManual AssignmentType = "manual"
)

type PeriodType string

const (
	PeriodTypeQuarter PeriodType = "quarter"
	PeriodTypeHalf    PeriodType = "half"
	PeriodTypeAnnual  PeriodType = "annual"
	PeriodTypeCustom  PeriodType = "custom"
)

type QuestionType string

const (
	QuestionTypeRating         QuestionType = "rating-1-5"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
)

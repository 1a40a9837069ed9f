package models

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// jobTransitions - допустимые переходы статуса вакансии.
// closed - терминальный, закрыть можно и черновик (отмена без публикации).
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:  {JobStatusActive, JobStatusClosed},
	JobStatusActive: {JobStatusPaused, JobStatusClosed},
	JobStatusPaused: {JobStatusActive, JobStatusClosed},
	JobStatusClosed: {},
}

func (s JobStatus) IsValid() bool {
	_, ok := jobTransitions[s]
	return ok
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusClosed
}

// CanTransition проверяет допустимость перехода в статус newStatus
func (s JobStatus) CanTransition(newStatus JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

type CandidateStatus string

const (
	CandidateStatusPending      CandidateStatus = "pending"
	CandidateStatusScreening    CandidateStatus = "screening"
	CandidateStatusInterviewing CandidateStatus = "interviewing"
	CandidateStatusOffered      CandidateStatus = "offered"
	CandidateStatusHired        CandidateStatus = "hired"
	CandidateStatusRejected     CandidateStatus = "rejected"
)

// candidatePipeline - порядок этапов воронки, индекс = глубина этапа
var candidatePipeline = []CandidateStatus{
	CandidateStatusPending,
	CandidateStatusScreening,
	CandidateStatusInterviewing,
	CandidateStatusOffered,
	CandidateStatusHired,
}

func (s CandidateStatus) IsValid() bool {
	if s == CandidateStatusRejected {
		return true
	}
	return s.PipelineDepth() >= 0
}

func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateStatusHired || s == CandidateStatusRejected
}

// PipelineDepth возвращает индекс этапа в воронке, -1 для rejected/неизвестного
func (s CandidateStatus) PipelineDepth() int {
	for idx, stage := range candidatePipeline {
		if stage == s {
			return idx
		}
	}
	return -1
}

// CanTransition: движение по воронке только вперёд на один этап,
// отклонить можно из любого нетерминального статуса
func (s CandidateStatus) CanTransition(newStatus CandidateStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if newStatus == CandidateStatusRejected {
		return true
	}
	depth := s.PipelineDepth()
	newDepth := newStatus.PipelineDepth()
	if depth < 0 || newDepth < 0 {
		return false
	}
	return newDepth == depth+1
}

// ReachedStage - кандидат достиг этапа stage (текущий или пройденный).
// Нанятый кандидат считается прошедшим все этапы,
// отклонённый учитывается только на этапе подачи.
func (s CandidateStatus) ReachedStage(stage CandidateStatus) bool {
	if s == CandidateStatusHired {
		return true
	}
	if s == CandidateStatusRejected {
		return stage == CandidateStatusPending
	}
	return s.PipelineDepth() >= stage.PipelineDepth()
}

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "scheduled"
	InterviewStatusInProgress InterviewStatus = "in-progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

// BlocksSlot - интервью в этом статусе занимает слот интервьюера
func (s InterviewStatus) BlocksSlot() bool {
	return s == InterviewStatusScheduled || s == InterviewStatusInProgress
}

type InterviewKind string

const (
	InterviewKindOnline  InterviewKind = "online"
	InterviewKindOffline InterviewKind = "offline"
)

func (k InterviewKind) IsValid() bool {
	return k == InterviewKindOnline || k == InterviewKindOffline
}

type EvaluationResult string

const (
	EvaluationResultPass    EvaluationResult = "pass"
	EvaluationResultReject  EvaluationResult = "reject"
	EvaluationResultPending EvaluationResult = "pending"
)

func (r EvaluationResult) IsValid() bool {
	return r == EvaluationResultPass || r == EvaluationResultReject || r == EvaluationResultPending
}

type ReferralStatus string

const (
	ReferralStatusPending  ReferralStatus = "pending"
	ReferralStatusApproved ReferralStatus = "approved"
	ReferralStatusHired    ReferralStatus = "hired"
	ReferralStatusRejected ReferralStatus = "rejected"
)

func (s ReferralStatus) IsValid() bool {
	switch s {
	case ReferralStatusPending, ReferralStatusApproved, ReferralStatusHired, ReferralStatusRejected:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}

// EntityType - тип сущности в журнале смены статусов
type EntityType string

const (
	EntityTypeJob       EntityType = "job"
	EntityTypeCandidate EntityType = "candidate"
)

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeJob, EntityTypeCandidate:
		return true
	}
	return false
}

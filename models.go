package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/muhammadolammi/resumeinsight/internal/database"
	"github.com/muhammadolammi/resumeinsight/internal/document"
	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/muhammadolammi/resumeinsight/internal/resumefields"
	"github.com/streadway/amqp"
)

const (
	JobKindParse     = "parse"
	JobKindATS       = "ats"
	JobKindInterview = "interview"
	JobKindQuiz      = "quiz"
	JobKindAnalyze   = "analyze"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	Completer   llm.Completer
	Parser      *resumefields.Parser
	Extractor   *document.Extractor
}

// Job is the message body on the resume_jobs queue.
type Job struct {
	ID             uuid.UUID `json:"id" validate:"required"`
	UserID         uuid.UUID `json:"user_id"`
	Kind           string    `json:"kind" validate:"required,oneof=parse ats interview quiz analyze"`
	ObjectKey      string    `json:"object_key" validate:"required_unless=Kind quiz"`
	Filename       string    `json:"filename"`
	Mime           string    `json:"mime"`
	JobDescription string    `json:"job_description" validate:"required_if=Kind ats,required_if=Kind quiz"`
	QuestionType   string    `json:"question_type"`
}

type JobUpdate struct {
	JobID     uuid.UUID `json:"job_id"`
	Kind      string    `json:"kind,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

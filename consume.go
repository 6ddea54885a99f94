package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/resumeinsight/internal/advisor"
	"github.com/muhammadolammi/resumeinsight/internal/database"
	"github.com/muhammadolammi/resumeinsight/internal/document"
	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/muhammadolammi/resumeinsight/internal/resumefields"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

var validate = validator.New()

// retryBackoff is the wait before the second attempt; later waits grow linearly.
var retryBackoff = 500 * time.Millisecond

// retry retries a function up to `attempts` times with linear backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i < attempts-1 {
			time.Sleep(retryBackoff * time.Duration(i+1))
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

type objectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

type resultStore interface {
	UpdateJobStatus(ctx context.Context, arg database.UpdateJobStatusParams) error
	CreateOrUpdateJobResult(ctx context.Context, arg database.CreateOrUpdateJobResultParams) error
}

type updatePublisher interface {
	PublishJobUpdate(jobID string, update JobUpdate) error
}

// jobProcessor turns one queued job into a stored result.
type jobProcessor struct {
	objects   objectGetter
	store     resultStore
	updates   updatePublisher
	completer llm.Completer
	parser    *resumefields.Parser
	extractor *document.Extractor
}

func newJobProcessor(workerConfig *WorkerConfig) *jobProcessor {
	return &jobProcessor{
		objects:   r2Objects{client: newR2Client(*workerConfig.AwsConfig, workerConfig.R2.AccountID), bucket: workerConfig.R2.Bucket},
		store:     workerConfig.DB,
		updates:   rabbitPublisher{conn: workerConfig.RabbitConn},
		completer: workerConfig.Completer,
		parser:    workerConfig.Parser,
		extractor: workerConfig.Extractor,
	}
}

func decodeJob(body []byte) (Job, error) {
	job := Job{}
	if err := json.Unmarshal(body, &job); err != nil {
		return job, fmt.Errorf("error unmarshalling message body: %w", err)
	}
	if err := validate.Struct(job); err != nil {
		return job, fmt.Errorf("invalid job: %w", err)
	}
	return job, nil
}

// handle processes one message body. Failures are reported through the job
// status and an update rather than returned, except when the body carries
// no job id to report against.
func (p *jobProcessor) handle(ctx context.Context, body []byte) error {
	job, err := decodeJob(body)
	if err != nil {
		log.Error().Err(err).Msg("rejected job message")
		if job.ID == uuid.Nil {
			return err
		}
		p.fail(ctx, job, err)
		return nil
	}

	logger := log.With().Str("job_id", job.ID.String()).Str("kind", job.Kind).Logger()
	logger.Info().Msg("processing job")
	p.setStatus(ctx, job, StatusProcessing, "job started")

	result, err := p.run(ctx, job)
	if err != nil {
		logger.Error().Err(err).Msg("job failed")
		p.fail(ctx, job, err)
		return nil
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		p.fail(ctx, job, fmt.Errorf("failed to marshal job result: %w", err))
		return nil
	}
	_, err = retry(3, func() (any, error) {
		return nil, p.store.CreateOrUpdateJobResult(ctx, database.CreateOrUpdateJobResultParams{
			Result: resultJSON,
			JobID:  job.ID,
		})
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to save job result")
		p.fail(ctx, job, fmt.Errorf("failed to save job result after retries: %w", err))
		return nil
	}

	p.setStatus(ctx, job, StatusCompleted, "job completed")
	logger.Info().Msg("job completed")
	return nil
}

// run loads the resume text when the job needs it and dispatches by kind.
func (p *jobProcessor) run(ctx context.Context, job Job) (any, error) {
	var text string
	if job.Kind != JobKindQuiz {
		var err error
		text, err = p.resumeText(ctx, job)
		if err != nil {
			return nil, err
		}
	}

	switch job.Kind {
	case JobKindParse:
		return p.parser.Parse(text), nil
	case JobKindATS:
		return retry(2, func() (*advisor.ATSReport, error) {
			return advisor.ScoreATS(ctx, p.completer, text, job.JobDescription)
		})
	case JobKindInterview:
		qt, err := advisor.ParseQuestionType(job.QuestionType)
		if err != nil {
			return nil, err
		}
		return retry(2, func() ([]advisor.InterviewQuestion, error) {
			return advisor.InterviewQuestions(ctx, p.completer, text, qt, 0)
		})
	case JobKindQuiz:
		return retry(2, func() ([]advisor.QuizQuestion, error) {
			return advisor.GenerateQuiz(ctx, p.completer, job.JobDescription, 0)
		})
	case JobKindAnalyze:
		return retry(2, func() (*advisor.ResumeAnalysis, error) {
			return advisor.AnalyzeResume(ctx, p.completer, text)
		})
	default:
		return nil, fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

func (p *jobProcessor) resumeText(ctx context.Context, job Job) (string, error) {
	data, err := retry(3, func() ([]byte, error) {
		return p.objects.GetObject(ctx, job.ObjectKey)
	})
	if err != nil {
		return "", fmt.Errorf("file download error: %w", err)
	}
	raw, err := jobDocument(job, data)
	if err != nil {
		return "", fmt.Errorf("text extraction error: %w", err)
	}
	text, err := p.extractor.Extract(raw)
	if err != nil {
		return "", fmt.Errorf("text extraction error: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("text extraction error: document has no text")
	}
	return text, nil
}

func (p *jobProcessor) fail(ctx context.Context, job Job, cause error) {
	err := p.store.CreateOrUpdateJobResult(ctx, database.CreateOrUpdateJobResultParams{
		Result:  json.RawMessage("{}"),
		IsError: true,
		Error:   cause.Error(),
		JobID:   job.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("job_id", job.ID.String()).Msg("failed to save error result")
	}
	p.setStatus(ctx, job, StatusFailed, "job failed")
}

func (p *jobProcessor) setStatus(ctx context.Context, job Job, status, message string) {
	err := p.store.UpdateJobStatus(ctx, database.UpdateJobStatusParams{
		Status: status,
		ID:     job.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("job_id", job.ID.String()).Str("status", status).Msg("failed to update job status")
	}
	update := JobUpdate{
		JobID:     job.ID,
		Kind:      job.Kind,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err := p.updates.PublishJobUpdate(job.ID.String(), update); err != nil {
		log.Warn().Err(err).Str("job_id", job.ID.String()).Msg("failed to publish update")
	}
}

func worker(ctx context.Context, id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := log.With().Int("worker", id+1).Logger()

	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		logger.Error().Err(err).Msg("error dialling rabbitmq")
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error().Err(err).Msg("error connecting to rabbitmq channel")
		return
	}
	defer ch.Close()

	msgs, err := ch.Consume(
		jobsQueue, // queue name
		"",        // consumer tag
		true,      // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		logger.Error().Err(err).Msg("error consuming rabbitmq messages")
		return
	}

	processor := newJobProcessor(workerConfig)
	logger.Info().Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopping")
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warn().Msg("delivery channel closed")
				return
			}
			if err := processor.handle(ctx, msg.Body); err != nil {
				logger.Warn().Err(err).Msg("dropped message")
			}
		}
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		go worker(ctx, i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}

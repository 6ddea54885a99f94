package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/muhammadolammi/resumeinsight/internal/document"
	"github.com/streadway/amqp"
)

const (
	jobsQueue          = "resume_jobs"
	jobUpdatesExchange = "job_updates"
)

// --- File Download ---

// loadR2AWSConfig builds the S3 client config for R2, which signs with the
// static bucket keys and the "auto" region.
func loadR2AWSConfig(ctx context.Context, r2 R2Config) (aws.Config, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2.AccessKey, r2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error creating aws config: %w", err)
	}
	return awsConfig, nil
}

func newR2Client(cfg aws.Config, accountID string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
	})
}

func DownloadFromR2(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

// r2Objects reads uploaded resumes from a single R2 bucket.
type r2Objects struct {
	client *s3.Client
	bucket string
}

func (r r2Objects) GetObject(ctx context.Context, key string) ([]byte, error) {
	return DownloadFromR2(ctx, r.client, r.bucket, key)
}

// jobDocument picks the format from the upload's MIME type, falling back to
// the file extension when the uploader sent none.
func jobDocument(job Job, data []byte) (document.RawDocument, error) {
	var (
		format document.Format
		err    error
	)
	if job.Mime != "" {
		format, err = document.FormatFromMIME(job.Mime)
	} else {
		format, err = document.FormatFromFilename(job.Filename)
	}
	if err != nil {
		return document.RawDocument{}, err
	}
	return document.RawDocument{Data: data, Format: format}, nil
}

// --- Job Updates ---

func publishJobUpdate(rabbitConn *amqp.Connection, jobID string, update JobUpdate) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	routingKey := fmt.Sprintf("job.%s", jobID)

	return ch.Publish(
		jobUpdatesExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

type rabbitPublisher struct {
	conn *amqp.Connection
}

func (p rabbitPublisher) PublishJobUpdate(jobID string, update JobUpdate) error {
	return publishJobUpdate(p.conn, jobID, update)
}

func declareTopology(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		jobUpdatesExchange, // name
		"topic",            // kind
		true,               // durable
		false,              // auto-delete
		false,              // internal
		false,              // no-wait
		nil,                // arguments
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	_, err = ch.QueueDeclare(
		jobsQueue, // queue name
		true,      // durable (survives broker restarts)
		false,     // auto-delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	return nil
}

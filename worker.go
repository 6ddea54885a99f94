package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadolammi/resumeinsight/internal/database"
	"github.com/muhammadolammi/resumeinsight/internal/document"
	"github.com/muhammadolammi/resumeinsight/internal/llm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume resume jobs from RabbitMQ and store their results",
	Long: "Start a pool of consumers on the resume_jobs queue. Each job downloads the uploaded resume " +
		"from R2, runs the requested operation, stores the result in Postgres and publishes status " +
		"updates to the job_updates exchange.",
	Args: cobra.NoArgs,
	RunE: runWorker,
}

var workerCount int

func init() {
	workerCmd.Flags().IntVarP(&workerCount, "workers", "w", 0, "Number of consumers (overrides WORKER_COUNT env var)")

	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	env, err := loadWorkerEnv(os.Getenv)
	if err != nil {
		return err
	}
	if rootAPIKey != "" {
		env.GoogleAPIKey = rootAPIKey
	}
	if rootModel != "" {
		env.Model = rootModel
	}
	if workerCount > 0 {
		env.WorkerCount = workerCount
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", env.DBURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to db: %w", err)
	}

	awsConfig, err := loadR2AWSConfig(ctx, env.R2)
	if err != nil {
		return err
	}

	completer, err := llm.NewAgentClient(ctx, llm.AgentConfig{
		APIKey: env.GoogleAPIKey,
		Model:  env.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	parser, err := newFieldParser(env.SkillsFile)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(env.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer conn.Close()
	if err := declareTopology(conn); err != nil {
		return err
	}

	workerConfig := WorkerConfig{
		DB:          database.New(db),
		R2:          &env.R2,
		AwsConfig:   &awsConfig,
		RABBITMQUrl: env.RabbitMQURL,
		RabbitConn:  conn,
		Completer:   completer,
		Parser:      parser,
		Extractor:   document.NewExtractor(),
	}

	log.Info().Int("workers", env.WorkerCount).Str("queue", jobsQueue).Msg("starting consumer pool")
	workerConfig.StartConsumerWorkerPool(ctx, env.WorkerCount)
	return nil
}

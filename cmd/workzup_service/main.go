package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "workzup_backend/cmd/workzup_service/docs"
	"workzup_backend/internal/api/handlers"
	"workzup_backend/internal/api/router"
	chatapp "workzup_backend/internal/chat/app"
	chatrepo "workzup_backend/internal/chat/repository"
	jobapp "workzup_backend/internal/job/app"
	jobrepo "workzup_backend/internal/job/repository"
	memberapp "workzup_backend/internal/member/app"
	memberdomain "workzup_backend/internal/member/domain"
	memberrepo "workzup_backend/internal/member/repository"
	recruiterapp "workzup_backend/internal/recruiter/app"
	recruiterrepo "workzup_backend/internal/recruiter/repository"
	uploadapp "workzup_backend/internal/upload/app"
	"workzup_backend/pkg/config"
	"workzup_backend/pkg/database"
	"workzup_backend/pkg/logger"
	testtool "workzup_backend/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.WorkzupService, config.EnvConfig.WorkzupServiceLogPath)

	cfg := config.LoadConfig[config.Workzup](config.EnvConfig.WorkzupService, config.EnvConfig.WorkzupServiceYAMLPath)

	testtool.StartPprof()

	ctx := context.Background()

	// postgres for members
	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL database after retries",
			zap.String("address", fmt.Sprintf("[%s]", sqlParams)),
			zap.Error(err),
		)
	}
	defer pool.Close()

	// gorm connection for job postings
	gormDB, err := database.NewPGConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect gorm after retries", zap.Error(err))
	}

	// mongo for recruiter profiles and reviews
	mongoParams := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoSQL.User, cfg.MongoSQL.Password, cfg.MongoSQL.Host, cfg.MongoSQL.Port)
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    mongoParams,
		RetryCount:    cfg.MongoSQL.RetryCount,
		RetryInterval: time.Duration(cfg.MongoSQL.RetryInterval) * time.Second,
	}, cfg.MongoSQL.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to mongoDB after retries", zap.Error(err))
	}
	defer mongoDB.Close(ctx)

	// redis sentinel for sessions
	masterName, sentinel := config.GetRedisSetting()
	redisClient, err := database.NewRedisClient(masterName, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}
	sessionRepo := database.NewRedisRepository[memberdomain.MemberSession](redisClient)

	// minio for attachments
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to minIO after retries", zap.Error(err))
	}

	// kafka for the activity event stream
	kafkaWriter, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		RetryCount:    cfg.Kafka.RetryCount,
		RetryInterval: time.Duration(cfg.Kafka.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to kafka after retries", zap.Error(err))
	}
	defer kafkaWriter.Close()

	// rabbitmq for onboarding notifications
	rabbitParams := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port)
	rabbitConn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    rabbitParams,
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: time.Duration(cfg.RabbitMQ.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to rabbitMQ after retries", zap.Error(err))
	}
	defer rabbitConn.Close()

	rabbitCh, err := database.GetRabbitMQChannelWithRetry(rabbitConn, cfg.RabbitMQ.RetryCount, time.Duration(cfg.RabbitMQ.RetryInterval)*time.Second)
	if err != nil {
		logger.Log.Fatal("Unable to open rabbitMQ channel after retries", zap.Error(err))
	}
	defer rabbitCh.Close()

	if _, err := rabbitCh.QueueDeclare(
		memberapp.WelcomeQueue,
		true,
		false,
		false,
		false,
		amqp.Table{},
	); err != nil {
		logger.Log.Fatal("Unable to declare welcome queue", zap.Error(err))
	}
	rabbitRepo := database.NewRabbitRepository(rabbitCh)

	// member context
	memberRepo := memberrepo.NewMemberRepository(pool)
	memberUseCase := memberapp.NewMemberUseCase(memberRepo, cfg.SessionTTL*time.Minute, sessionRepo, rabbitRepo)
	resolver := memberapp.NewParticipantResolver(memberUseCase)

	// chat context
	chatStore := chatrepo.NewMemoryConversationStore()
	chatEvents := chatrepo.NewKafkaEventPublisher(kafkaWriter)
	conversationUseCase := chatapp.NewConversationUseCase(chatStore, resolver, chatEvents)
	messageUseCase := chatapp.NewMessageUseCase(chatStore, chatEvents)

	// job context
	jobRepo := jobrepo.NewJobRepo(gormDB)
	if err := jobRepo.AutoMigrate(); err != nil {
		logger.Log.Fatal("job table migration failed", zap.Error(err))
	}
	jobEvents := jobrepo.NewKafkaJobEventPublisher(kafkaWriter)
	jobUseCase := jobapp.NewJobUseCase(jobRepo, jobEvents)

	// recruiter context
	profileRepo := recruiterrepo.NewMongoProfileRepository(mongoDB.Database)
	reviewRepo := recruiterrepo.NewMongoReviewRepository(mongoDB.Database)
	recruiterUseCase := recruiterapp.NewRecruiterUseCase(profileRepo, reviewRepo)

	// upload context
	uploadUseCase := uploadapp.NewUploadUseCase(minioClient)

	memberHandler := handlers.NewMemberHandler(memberUseCase)
	chatHandler := handlers.NewChatHandler(conversationUseCase, messageUseCase, jobUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	recruiterHandler := handlers.NewRecruiterHandler(recruiterUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)

	r := fiber.New()

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.WorkzupServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, memberHandler, chatHandler, jobHandler, recruiterHandler, uploadHandler)

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/config"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	dl "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	drl "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/rate_limiter"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/validation"
	dbaccount "github.com/Shouganaii/tdd-clean-go-api/internal/db/account"
	"github.com/Shouganaii/tdd-clean-go-api/internal/implementations/email"
	emailvalidator "github.com/Shouganaii/tdd-clean-go-api/internal/implementations/email_validator"
	"github.com/Shouganaii/tdd-clean-go-api/internal/implementations/logging"
	passwordhasher "github.com/Shouganaii/tdd-clean-go-api/internal/implementations/password_hasher"
	ratelimiter "github.com/Shouganaii/tdd-clean-go-api/internal/implementations/rate_limiter"
	"github.com/Shouganaii/tdd-clean-go-api/internal/rabbitmq"
	accountcreated "github.com/Shouganaii/tdd-clean-go-api/internal/rabbitmq/publishers/account_created"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	AccountRepository account.AccountRepository

	RateLimiter drl.RateLimiter

	PasswordHasher          account.PasswordHasher
	EmailValidator          validation.EmailValidator
	WelcomeEmailSender      account.WelcomeEmailSender
	AccountCreatedPublisher account.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.AccountRepository = dbaccount.NewPgxAccountRepository(deps.DB)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.EmailValidator = emailvalidator.NewOzzo()
	deps.WelcomeEmailSender = email.NewWelcomeEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailWelcomeTemplate,
	)

	closeAccountCreatedPublisher := deps.initRabbitmqAccountCreatedPublisher()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeAccountCreatedPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqAccountCreatedPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqAccountEventsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exhange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqAccountCreatedQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqAccountCreatedQueue,
		deps.Config.RabbitmqAccountCreatedQueue,
		deps.Config.RabbitmqAccountEventsExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exhange.", dl.Entry("err", err))
		panic(err)
	}

	deps.AccountCreatedPublisher = accountcreated.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqAccountEventsExchange,
		deps.Config.RabbitmqAccountCreatedQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down account created publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Account created publisher shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}

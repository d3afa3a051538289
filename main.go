package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/api/identity"
	mazeapi "github.com/beka-birhanu/maze-solver-api/api/maze"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/cache"
	logger "github.com/beka-birhanu/maze-solver-api/infrastruture/log"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/token"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	solutionRepo   i.SolutionRepo
	solutionCache  i.Cache
	sortedQueue    i.SortedQueue
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeManager
	solveService   i.SolveManager
	solveQueue     *service.SolveQueue
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	solutionRepo = repo.NewSolutionRepo(client, config.Envs.DBName, "solutions")
	appLogger.Info("Repositories initialized")
}

func initRedisStores() {
	var err error
	solutionCache, err = cache.NewRedisCache(redisClient)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solution cache: %v", err))
		os.Exit(1)
	}

	sortedQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve job queue: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Redis stores initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	authLogger, err := logger.New("AUTH", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth logger: %v", err))
		os.Exit(1)
	}

	authService, err = service.NewAuthService(userRepo, jwtTokenizer, authLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeManager(mazeRepo, mazeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initSolveService() {
	solveLogger, err := logger.New("SOLVER", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	solveService, err = service.NewSolveManager(&service.SolveManagerConfig{
		MazeRepo:     mazeRepo,
		SolutionRepo: solutionRepo,
		UserRepo:     userRepo,
		Cache:        solutionCache,
		CacheTTL:     time.Duration(config.Envs.CacheTTLSeconds) * time.Second,
		Logger:       solveLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solve service initialized")
}

func initSolveQueue() {
	queueLogger, err := logger.New("SOLVE-QUEUE", config.ColorYellow, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve queue logger: %v", err))
		os.Exit(1)
	}

	solveQueue, err = service.NewSolveQueue(sortedQueue, solveService, queueLogger, &service.SolveQueueOptions{
		BatchSize: int64(config.Envs.SolveBatchSize),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve queue: %v", err))
		os.Exit(1)
	}

	for i := 0; i < config.Envs.SolveWorkerCount; i++ {
		go solveQueue.Start()
	}
	appLogger.Info(fmt.Sprintf("Solve queue initialized with %d workers", config.Envs.SolveWorkerCount))
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewController(mazeService, solveService, solveQueue)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initRedisStores()
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initSolveService()
	initSolveQueue()
	defer solveQueue.Stop()

	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quickchance/quickchance-backend/config"
	app "github.com/quickchance/quickchance-backend/internal/application"
	repo "github.com/quickchance/quickchance-backend/internal/domain/repository"
	"github.com/quickchance/quickchance-backend/internal/infrastructure/mongodb"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
)

// Container holds the components built once at startup. The router wires
// modules from it; nothing reaches for package-level globals.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	JWT    *helpers.JWTManager

	Repositories

	UserService        *app.UserService
	OpportunityService *app.OpportunityService
	ApplicationService *app.ApplicationService
	OAuthService       *app.OAuthService
}

// Repositories groups the store implementations a Container is built on.
type Repositories struct {
	Users         repo.UserRepository
	Opportunities repo.OpportunityRepository
	Applications  repo.ApplicationRepository
	Sequences     repo.SequenceRepository
}

// MongoRepositories returns the MongoDB-backed repositories for db.
func MongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:         mongodb.NewUserRepository(db),
		Opportunities: mongodb.NewOpportunityRepository(db),
		Applications:  mongodb.NewApplicationRepository(db),
		Sequences:     mongodb.NewSequenceRepository(db),
	}
}

// New builds the services on top of repos. states may be nil when no
// OAuth provider is configured.
func New(cfg *config.Config, logger *logrus.Logger, repos Repositories, states app.StateStore) *Container {
	jwt := helpers.NewJWTManager(cfg.JWTSecret)
	hasher := helpers.NewBcryptHasher()

	callback := func(provider string) string {
		return cfg.OAuthCallbackBaseURL + "/auth/" + provider + "/callback"
	}
	oauth := app.NewOAuthService(states, cfg.OAuthStateTTL, logger,
		app.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, callback(app.ProviderGoogle)),
		app.NewGitHubProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, callback(app.ProviderGitHub)),
	)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		JWT:          jwt,
		Repositories: repos,

		UserService:        app.NewUserService(repos.Users, repos.Sequences, hasher, jwt, logger),
		OpportunityService: app.NewOpportunityService(repos.Opportunities, repos.Users, repos.Sequences, logger),
		ApplicationService: app.NewApplicationService(repos.Applications, repos.Users, repos.Opportunities, repos.Sequences, logger),
		OAuthService:       oauth,
	}
}

// NewRedisStates returns a Redis state store, or nil when OAuth is off.
func NewRedisStates(cfg *config.Config, rdb *redis.Client) app.StateStore {
	if rdb == nil || (cfg.GoogleClientID == "" && cfg.GitHubClientID == "") {
		return nil
	}
	return helpers.NewRedisStateStore(rdb)
}

package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/tweetr-app/tweetr/config"
	"github.com/tweetr-app/tweetr/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger
	pgPool *pgxpool.Pool
	cipher *helpers.SecretCipher
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetCipher(c *helpers.SecretCipher) { cipher = c }
func GetCipher() *helpers.SecretCipher  { return cipher }

package config

import (
	"fmt"
	"os"

	"github.com/exlinc/golang-utils/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// The app is in production or debug mode
	Mode                 string `envconfig:"MODE" default:"production"`
	SyncServerAddr       string `envconfig:"SYNC_SERVER_ADDR" default:"0.0.0.0"`
	SyncServerPort       string `envconfig:"SYNC_SERVER_PORT" default:"3454"`
	GHWebhookSecret      string `envconfig:"GH_WEBHOOK_SECRET"`
	GHUserToken          string `envconfig:"GH_USER_TOKEN"`
	GHAutoGenCommitMsg   string `envconfig:"GH_AUTOGEN_COMMIT_MSG" default:"auto#gen"`
	GuideRepoBranch      string `envconfig:"GUIDE_REPO_BRANCH" default:"master"`
	MgoURI               string `envconfig:"MGO_URI"`
	MgoDBName            string `envconfig:"MGO_DB_NAME" default:"guides_dev"`
	NotifyEmail          string `envconfig:"NOTIFY_EMAIL"`
	SMTPFromName         string `envconfig:"SMTP_FROM_NAME" default:"Guide Sync Service"`
	SMTPFromAddress      string `envconfig:"SMTP_FROM_ADDRESS" default:"noreply@androidprep.dev"`
	SMTPHost             string `envconfig:"SMTP_HOST"`
	SMTPConnectionString string `envconfig:"SMTP_CONNECTION_STRING" default:"smtp.sendgrid.net:587"`
	SMTPUserName         string `envconfig:"SMTP_USER_NAME" default:"apikey"`
	SMTPPassword         string `envconfig:"SMTP_PASSWORD"`
	ParseWorkers         int    `envconfig:"PARSE_WORKERS" default:"5"`
	QuestionHeadingLevel int    `envconfig:"QUESTION_HEADING_LEVEL" default:"3"`
}

var conf *Config

const (
	DebugMode      = "debug"
	ProductionMode = "production"
)

func init() {
	conf = &Config{}
	err := envconfig.Process("guide_util", conf)
	if err != nil {
		fmt.Println("Fatal error processing configuration")
		panic(err)
	}
	l := conf.GetLogger()
	if !conf.IsDebugMode() && !conf.IsProductionMode() {
		l.Fatal("Invalid GUIDE_UTIL_MODE variable, it must be either `debug` or `production`")
	}
}

// Cfg returns the configuration - will panic if the config has not been loaded or is nil (which shouldn't happen as that's implicit in the package init)
func Cfg() *Config {
	if conf == nil {
		panic("Config is nil")
	}
	return conf
}

func (cfg *Config) GetLogger() *logrus.Logger {
	logLvl := logrus.InfoLevel
	if cfg.IsDebugMode() {
		logLvl = logrus.DebugLevel
	}
	var l = &logrus.Logger{
		Out:       os.Stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logLvl,
	}
	return l
}

func (cfg *Config) IsDebugMode() bool {
	return cfg.Mode == DebugMode
}

func (cfg *Config) IsProductionMode() bool {
	return cfg.Mode == ProductionMode
}

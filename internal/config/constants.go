// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-srs"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseURL    = "vocab_srs.db"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultStudyLimit     = 10
	DefaultMaxStudyLimit  = 50
	DefaultDuePoolLimit   = 500
	DefaultDailyGoal      = 20
	DefaultStatsDays      = 7
	DefaultResponseTimeMs = 5000
)

package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BenefitConfig holds the file-level defaults for benefit program rules.
// The database business_configs row takes precedence at runtime; these
// values seed that row and serve as the fallback when it is absent.
type BenefitConfig struct {
	Timezone               string `mapstructure:"timezone"`
	Currency               string `mapstructure:"currency"`
	MinSubscriptionDays    int    `mapstructure:"min_subscription_days"`
	MaxFreezesPerWeek      int    `mapstructure:"max_freezes_per_week"`
	CutoffOffsetHours      int    `mapstructure:"cutoff_offset_hours"`
	NightCutoffOffsetHours int    `mapstructure:"night_cutoff_offset_hours"`
	DefaultWorkingDays     []int  `mapstructure:"default_working_days"`
	DefaultDailyLimit      int64  `mapstructure:"default_daily_limit"`
	CatalogPath            string `mapstructure:"catalog_path"`
}

// SchedulerConfig controls the background completion and renewal sweeps.
type SchedulerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	IntervalHours int  `mapstructure:"interval_hours"`
}

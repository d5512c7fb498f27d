package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// StoreConfig describes the document store. The store counts as configured
// only when both APIKey and ProjectID are present.
type StoreConfig struct {
	APIKey    string        `yaml:"apiKey"`
	ProjectID string        `yaml:"projectId"`
	DSN       string        `yaml:"dsn"`
	Timeout   time.Duration `yaml:"timeout"`
}

func (s StoreConfig) Configured() bool {
	return s.APIKey != "" && s.ProjectID != ""
}

type FilesConfig struct {
	Dir       string `yaml:"dir" validate:"required|unixPath"`
	PublicURL string `yaml:"publicUrl" validate:"required"`
}

type PreferencesConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type AuthConfig struct {
	OwnerEmail   string        `yaml:"ownerEmail"`
	PasswordHash string        `yaml:"passwordHash"`
	SessionTTL   time.Duration `yaml:"sessionTTL"`
	CacheSize    int           `yaml:"cacheSize"`
}

type ContentConfig struct {
	RefreshInterval time.Duration `yaml:"refreshInterval"`
}

type BackupConfig struct {
	Enabled  bool          `yaml:"enabled"`
	FilePath string        `yaml:"filePath"`
	Interval time.Duration `yaml:"interval"`
}

type ContactConfig struct {
	StoreMessages bool `yaml:"storeMessages"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server            `yaml:"webServer"`
	Logger      LoggerConfig      `yaml:"logger"`
	Store       StoreConfig       `yaml:"store"`
	Files       FilesConfig       `yaml:"files"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Auth        AuthConfig        `yaml:"auth"`
	Content     ContentConfig     `yaml:"content"`
	Backup      BackupConfig      `yaml:"backup"`
	Contact     ContactConfig     `yaml:"contact"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Session SessionConfig `mapstructure:"session"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// BackendConfig 内容后端 REST API 配置。
// PhotoBaseURL 留空时由 BaseURL 去掉 API 前缀推导。
type BackendConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	PhotoBaseURL string `mapstructure:"photo_base_url"`
	Timeout      int    `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	Cookie string `mapstructure:"cookie"`
	TTL    int    `mapstructure:"ttl"`
}

// CacheConfig 分类/标签缓存配置
type CacheConfig struct {
	TaxonomyTTL int    `mapstructure:"taxonomy_ttl"`
	RefreshSpec string `mapstructure:"refresh_spec"`
}

package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Models  ModelsConfig  `mapstructure:"models"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects and parameterizes the persistence backend shared by
// the identity and history stores.
type StorageConfig struct {
	// Driver is "csv" (default: one flat file per store under DataDir) or
	// "postgres".
	Driver      string `mapstructure:"driver"       validate:"required,oneof=csv postgres"`
	DataDir     string `mapstructure:"data_dir"     validate:"required_if=Driver csv"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// PasswordScheme is "plain" (the documented exact-equality contract,
	// default) or "bcrypt". Changing the scheme does not rewrite existing
	// stored credentials.
	PasswordScheme string `mapstructure:"password_scheme" validate:"required,oneof=plain bcrypt"`
}

// ModelsConfig locates the pre-trained model artifacts.
type ModelsConfig struct {
	// Dir holds the six artifact files: <metric>_model.gob and
	// <metric>_features.gob for stress, sleep, and calorie.
	Dir string `mapstructure:"dir" validate:"required"`
}

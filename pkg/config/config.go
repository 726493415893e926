package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados (STORAGE_DRIVER).
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Proveedores de blobs soportados (BLOB_PROVIDER).
const (
	BlobAzure = "azure"
	BlobLocal = "local"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	DB        DBConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Blob      BlobConfig
	RateLimit RateLimitConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig elige la implementación de los repositorios.
type StorageConfig struct {
	Driver string // postgres | mongo | memory
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BlobConfig configuración del almacenamiento de imágenes.
type BlobConfig struct {
	Provider         string // azure | local
	ConnectionString string // AZURE_STORAGE_CONNECTION_STRING
	LocalDir         string
	PublicBaseURL    string // prefijo público para el proveedor local
	MaxUploadBytes   int
}

// RateLimitConfig límites para signup/signin.
type RateLimitConfig struct {
	AuthRequests int
	AuthWindow   time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "startnet-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 5000),
			CORSOrigins: getString(v, "CORS_ORIGINS", "http://localhost:3000"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", DriverPostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "startnet"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 25)),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGODB_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGODB_DATABASE", "startnet"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "startnet-api"),
		},
		Blob: BlobConfig{
			Provider:         strings.ToLower(getString(v, "BLOB_PROVIDER", BlobLocal)),
			ConnectionString: getString(v, "AZURE_STORAGE_CONNECTION_STRING", ""),
			LocalDir:         getString(v, "BLOB_LOCAL_DIR", "./uploads"),
			PublicBaseURL:    getString(v, "BLOB_PUBLIC_BASE_URL", "http://localhost:5000/uploads"),
			MaxUploadBytes:   getInt(v, "UPLOAD_MAX_BYTES", 5<<20),
		},
		RateLimit: RateLimitConfig{
			AuthRequests: getInt(v, "RATELIMIT_AUTH_REQUESTS", 10),
			AuthWindow:   time.Duration(getInt(v, "RATELIMIT_AUTH_WINDOW_SEC", 60)) * time.Second,
		},
	}

	return cfg, nil
}

// Validate revisa combinaciones que impedirían arrancar el servidor.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	switch c.Storage.Driver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	switch c.Blob.Provider {
	case BlobLocal:
	case BlobAzure:
		if c.Blob.ConnectionString == "" {
			return fmt.Errorf("config: AZURE_STORAGE_CONNECTION_STRING es obligatorio con BLOB_PROVIDER=azure")
		}
	default:
		return fmt.Errorf("config: BLOB_PROVIDER desconocido %q", c.Blob.Provider)
	}
	return nil
}

// AllowedOrigins separa CORS_ORIGINS en una lista limpia.
func (c HTTPConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends de almacenamiento soportados.
const (
	BackendArchivo  = "archivo"
	BackendMemoria  = "memoria"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selección y parámetros del backend clave-valor.
type StoreConfig struct {
	Backend string // archivo | memoria | redis | postgres
	Path    string // backend archivo: ruta del documento JSON
	Redis   RedisConfig
	DB      DBConfig
}

// RedisConfig parámetros del backend redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DBConfig parámetros del backend postgres. Si DatabaseURL no está vacío se
// usa como connection string completo; si no, se construye desde los campos.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DatabaseURL si está definido,
// si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string de PostgreSQL con URL encoding para
// caracteres especiales en la contraseña.
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

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// STORE_BACKEND, HTTP_PORT, REDIS_ADDR, DATABASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-local"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Backend: getString(v, "STORE_BACKEND", BackendArchivo),
			Path:    getString(v, "STORE_PATH", "inventario.json"),
			Redis: RedisConfig{
				Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
				Password: getString(v, "REDIS_PASSWORD", ""),
				DB:       getInt(v, "REDIS_DB", 0),
			},
			DB: DBConfig{
				DatabaseURL: getString(v, "DATABASE_URL", ""),
				Host:        getString(v, "DB_HOST", "localhost"),
				Port:        getInt(v, "DB_PORT", 5432),
				User:        getString(v, "DB_USER", "postgres"),
				Password:    getString(v, "DB_PASSWORD", ""),
				DBName:      getString(v, "DB_NAME", "inventario"),
				SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			},
		},
	}

	switch cfg.Store.Backend {
	case BackendArchivo, BackendMemoria, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("STORE_BACKEND desconocido: %q", cfg.Store.Backend)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

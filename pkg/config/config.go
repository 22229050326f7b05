package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Store   StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig credencial de la consola. PasswordHash es un hash bcrypt;
// nunca se configura la contraseña en claro.
type AuthConfig struct {
	AdminUser    string
	PasswordHash string
}

// CatalogConfig acceso al Catálogo de Productos externo.
type CatalogConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StoreConfig ubicación del blob persistido del libro de movimientos.
type StoreConfig struct {
	DataDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad. Nombres
// esperados: APP_ENV, HTTP_PORT, JWT_SECRET, CATALOG_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestock-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "gestock"),
		},
		Auth: AuthConfig{
			AdminUser:    getString(v, "AUTH_ADMIN_USER", "admin"),
			PasswordHash: getString(v, "AUTH_ADMIN_PASSWORD_HASH", ""),
		},
		Catalog: CatalogConfig{
			BaseURL:        getString(v, "CATALOG_BASE_URL", "http://localhost:3001"),
			TimeoutSeconds: getInt(v, "CATALOG_TIMEOUT_SECONDS", 10),
		},
		Store: StoreConfig{
			DataDir: getString(v, "STORE_DATA_DIR", "./data"),
		},
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/beeswaxclient"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Beeswax Beeswax `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Beeswax struct {
	APIRoot           string        `mapstructure:"beeswax_api_root" validate:"required,url"`
	Email             string        `mapstructure:"beeswax_email" validate:"required,email"`
	Password          string        `mapstructure:"beeswax_password" validate:"required"`
	Timeout           time.Duration `mapstructure:"beeswax_timeout"`
	Retries           int           `mapstructure:"beeswax_retries" validate:"gte=0"`
	LineItemSchema    string        `mapstructure:"beeswax_line_item_schema" validate:"oneof=legacy v2"`
	KeepAliveInterval time.Duration `mapstructure:"beeswax_keep_alive_interval"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	// Chaves sem padrão precisam ser registradas para que o Unmarshal
	// enxergue os valores vindos só do ambiente
	viper.SetDefault("BEESWAX_API_ROOT", "")
	viper.SetDefault("BEESWAX_EMAIL", "")
	viper.SetDefault("BEESWAX_PASSWORD", "")

	viper.SetDefault("BEESWAX_TIMEOUT", "30s")
	viper.SetDefault("BEESWAX_RETRIES", 3)
	viper.SetDefault("BEESWAX_LINE_ITEM_SCHEMA", beeswaxclient.LineItemSchemaLegacy)
	viper.SetDefault("BEESWAX_KEEP_ALIVE_INTERVAL", "30m")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Configuração ausente ou malformada é erro fatal de construção
	if err := validator.New().Struct(config.Beeswax); err != nil {
		return nil, err
	}

	return config, nil
}

// ClientOptions converte a configuração carregada nas opções do cliente.
func (c *Config) ClientOptions() beeswaxclient.Options {
	retry := beeswaxclient.DefaultRetryPolicy()
	retry.Retries = c.Beeswax.Retries

	return beeswaxclient.Options{
		APIRoot:           c.Beeswax.APIRoot,
		Email:             c.Beeswax.Email,
		Password:          c.Beeswax.Password,
		Timeout:           c.Beeswax.Timeout,
		Retry:             retry,
		LineItemSchema:    c.Beeswax.LineItemSchema,
		KeepAliveInterval: c.Beeswax.KeepAliveInterval,
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

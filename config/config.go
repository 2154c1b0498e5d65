package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config содержит настройки программы. Читаются один раз при старте и
// дальше не меняются; все поля имеют значения по умолчанию, так что
// после загрузки структура всегда заполнена целиком.
type Config struct {
	APIKey       string `mapstructure:"api_key"`
	City         string `mapstructure:"city"`
	Units        string `mapstructure:"units"` // metric или imperial
	TimePlus     int    `mapstructure:"timeplus"`
	TimeMinus    int    `mapstructure:"timeminus"`
	ShowCityName bool   `mapstructure:"showcityname"`
	ShowDate     bool   `mapstructure:"showdate"`
	TimeFormat   string `mapstructure:"timeformat"` // "12" или "24"
	UseColors    bool   `mapstructure:"use_colors"`
}

// ConfigError представляет ошибку чтения или создания файла конфигурации.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("конфигурация %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DefaultPath возвращает стандартный путь к файлу конфигурации
// в пользовательском каталоге настроек ОС.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "groza", "groza.toml"), nil
}

// Load читает конфигурацию из path; пустой path означает стандартное
// расположение. Если файла нет, он создаётся со значениями по умолчанию.
// Переменные окружения GROZA_* перекрывают значения из файла.
func Load(path string) (*Config, error) {
	// Загружаем .env файл если существует
	godotenv.Load()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("не удалось определить каталог настроек: %w", err)}
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)
	v.SetEnvPrefix("GROZA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Path: path, Err: err}
		}
		if err := writeDefault(path); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		log.Printf("Конфигурация не найдена, создан файл по умолчанию: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return &cfg, nil
}

// setDefaults регистрирует значения по умолчанию — ровно в таком виде
// файл появляется при автосоздании.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("city", "")
	v.SetDefault("units", "metric")
	v.SetDefault("timeplus", 0)
	v.SetDefault("timeminus", 0)
	v.SetDefault("showcityname", false)
	v.SetDefault("showdate", false)
	v.SetDefault("timeformat", "24")
	v.SetDefault("use_colors", false)
}

// writeDefault записывает файл со значениями по умолчанию. Отдельный
// экземпляр viper нужен, чтобы в файл не попали перекрытия из окружения.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	d := viper.New()
	d.SetConfigType("toml")
	setDefaults(d)
	return d.SafeWriteConfigAs(path)
}

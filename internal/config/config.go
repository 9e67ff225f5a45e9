package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/chunker"
	"github.com/nguyentantai21042004/translate-flow/internal/prompt"
	"github.com/nguyentantai21042004/translate-flow/internal/scheduler"
	"github.com/ygrebnov/errorc"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ProviderGemini  = "gemini"
	ProviderCommand = "command"

	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Translation TranslationConfig `yaml:"translation"`
	Transform   TransformConfig   `yaml:"transform"`
	Cache       CacheConfig       `yaml:"cache"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type TranslationConfig struct {
	TargetLanguage string        `yaml:"target_language"`
	Tone           string        `yaml:"tone"`
	ChunkSize      int           `yaml:"chunk_size"`
	Concurrency    int           `yaml:"concurrency"`
	ItemTimeout    time.Duration `yaml:"item_timeout"`
	// Tones are registered after the built-in ones; a repeated key overrides.
	Tones []prompt.Tone `yaml:"tones"`
}

type TransformConfig struct {
	Provider string        `yaml:"provider"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Command  CommandConfig `yaml:"command"`
}

type GeminiConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	// APIKeys come from the environment, never from the file.
	APIKeys []string `yaml:"-"`
}

// CommandConfig runs a local CLI per chunk; the request is written to its stdin.
type CommandConfig struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
	Dir  string   `yaml:"dir"`
}

type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Backend  string        `yaml:"backend"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type ExportConfig struct {
	Docx     bool   `yaml:"docx"`
	Font     string `yaml:"font"`
	FontSize uint   `yaml:"font_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrentFiles int           `yaml:"max_concurrent_files"`
	SettleDelay        time.Duration `yaml:"settle_delay"`
	Extensions         []string      `yaml:"extensions"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func invalid(msg string) error {
	return errorc.With(ErrInvalidConfig, errorc.String("", msg))
}

// Validate checks required fields and fills defaults for unset ones.
func (c *Config) Validate() error {
	if c.Translation.ChunkSize < 0 {
		return invalid(fmt.Sprintf("translation.chunk_size must be positive, got %d", c.Translation.ChunkSize))
	}
	if c.Translation.Concurrency < 0 {
		return invalid(fmt.Sprintf("translation.concurrency must be positive, got %d", c.Translation.Concurrency))
	}
	if c.Translation.ItemTimeout < 0 {
		return invalid("translation.item_timeout must not be negative")
	}
	if c.Performance.MaxConcurrentFiles < 0 {
		return invalid("performance.max_concurrent_files must not be negative")
	}
	if c.Paths.Input == "" {
		return invalid("paths.input is required")
	}
	if c.Paths.Output == "" {
		return invalid("paths.output is required")
	}

	if c.Translation.ChunkSize == 0 {
		c.Translation.ChunkSize = chunker.DefaultTargetSize
	}
	if c.Translation.Concurrency == 0 {
		c.Translation.Concurrency = scheduler.DefaultConcurrency
	}
	if c.Translation.Tone == "" {
		c.Translation.Tone = prompt.DefaultTone
	}
	if c.Translation.TargetLanguage == "" {
		c.Translation.TargetLanguage = prompt.DefaultLanguage
	}
	for i, t := range c.Translation.Tones {
		if t.Key == "" || t.Description == "" {
			return invalid(fmt.Sprintf("translation.tones[%d] needs key and description", i))
		}
	}

	if c.Transform.Provider == "" {
		c.Transform.Provider = ProviderGemini
	}
	switch c.Transform.Provider {
	case ProviderGemini:
		if c.Transform.Gemini.Model == "" {
			c.Transform.Gemini.Model = "gemini-2.5-flash"
		}
		if len(c.Transform.Gemini.APIKeys) == 0 {
			return invalid("GEMINI_API_KEYS or GEMINI_API_KEY must be set for the gemini provider")
		}
	case ProviderCommand:
		if c.Transform.Command.Name == "" {
			return invalid("transform.command.name is required for the command provider")
		}
	default:
		return invalid(fmt.Sprintf("unknown transform.provider %q", c.Transform.Provider))
	}

	if c.Cache.Enabled {
		if c.Cache.Backend == "" {
			c.Cache.Backend = CacheRedis
		}
		switch c.Cache.Backend {
		case CacheRedis:
			if c.Cache.Addr == "" {
				c.Cache.Addr = "localhost:6379"
			}
		case CacheMemory:
		default:
			return invalid(fmt.Sprintf("unknown cache.backend %q", c.Cache.Backend))
		}
		if c.Cache.TTL == 0 {
			c.Cache.TTL = 7 * 24 * time.Hour
		}
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Export.Font == "" {
		c.Export.Font = "Times New Roman"
	}
	if c.Export.FontSize == 0 {
		c.Export.FontSize = 12
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrentFiles == 0 {
		c.Performance.MaxConcurrentFiles = 2
	}
	if c.Performance.SettleDelay == 0 {
		c.Performance.SettleDelay = 500 * time.Millisecond
	}
	if len(c.Performance.Extensions) == 0 {
		c.Performance.Extensions = []string{".txt", ".md"}
	}

	return nil
}

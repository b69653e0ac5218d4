package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Properties struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DBPath        string `env:"DB_PATH" envDefault:"picstash.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"picstash-dev-secret"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"20971520"`
	TemplateGlob  string `env:"TEMPLATE_GLOB" envDefault:"templates/*.html"`
}

func ReadProperties() (*Properties, error) {
	props := &Properties{}
	if err := env.Parse(props); err != nil {
		return nil, fmt.Errorf("read config error: %w", err)
	}
	return props, nil
}

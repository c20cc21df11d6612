package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/totegamma/council-reports/internal/domain"
)

type Config struct {
	Server Server          `yaml:"server"`
	Source Source          `yaml:"source"`
	Site   domain.SiteCopy `yaml:"site"`
}

type Server struct {
	ListenAddr    string        `yaml:"listenAddr" env:"REPORTS_LISTEN_ADDR"`
	Watchdog      time.Duration `yaml:"watchdog" env:"REPORTS_WATCHDOG"`
	Locale        string        `yaml:"locale" env:"REPORTS_LOCALE"`
	EnableTrace   bool          `yaml:"enableTrace" env:"REPORTS_ENABLE_TRACE"`
	TraceEndpoint string        `yaml:"traceEndpoint" env:"REPORTS_TRACE_ENDPOINT"`
}

// Source locates the three collections. When Dir is set the collections are
// read from exported files instead of the HTTP endpoints.
type Source struct {
	EntitiesURL  string        `yaml:"entitiesUrl" env:"REPORTS_ENTITIES_URL"`
	OfferingsURL string        `yaml:"offeringsUrl" env:"REPORTS_OFFERINGS_URL"`
	ProjectsURL  string        `yaml:"projectsUrl" env:"REPORTS_PROJECTS_URL"`
	Dir          string        `yaml:"dir" env:"REPORTS_SOURCE_DIR"`
	Timeout      time.Duration `yaml:"timeout" env:"REPORTS_SOURCE_TIMEOUT"`
	UserAgent    string        `yaml:"userAgent" env:"REPORTS_USER_AGENT"`
}

func Default() Config {
	return Config{
		Server: Server{
			ListenAddr: ":8000",
			Watchdog:   8 * time.Second,
			Locale:     "en-GB",
		},
		Source: Source{
			EntitiesURL:  "https://data.abundanceinvestment.com/councils",
			OfferingsURL: "https://data.abundanceinvestment.com/loans",
			ProjectsURL:  "https://data.abundanceinvestment.com/projects",
			Timeout:      5 * time.Second,
			UserAgent:    "council-reports",
		},
		Site: domain.DefaultSiteCopy(),
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "open config")
		}
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, errors.Wrap(err, "decode config")
		}
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	return config, nil
}

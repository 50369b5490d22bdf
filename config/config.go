package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath         = "."
	defaultPageSize     = 12
	defaultWhatsAppBase = "https://wa.me"
	defaultExportDir    = "out"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Content configures where product and event records are loaded from.
	Content *ContentConfig `json:"content" yaml:"content"`

	// Catalog configures the product listing behaviour.
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// WhatsApp configures the order deep-link generator.
	WhatsApp *WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`

	// Brand holds business identity shown across pages.
	Brand *BrandConfig `json:"brand" yaml:"brand"`

	Contact *ContactConfig `json:"contact" yaml:"contact"`

	Social *SocialConfig `json:"social" yaml:"social"`

	Site *SiteConfig `json:"site" yaml:"site"`

	// GitHubOAuth configures the CMS authentication helper routes.
	GitHubOAuth *GitHubOAuthConfig `json:"githubOAuth" yaml:"githubOAuth"`

	// QRCode configuration for contact QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Export configuration for the static site exporter.
	Export *ExportConfig `json:"export" yaml:"export"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ContentConfig defines the content source. Mode is "markdown" for a
// directory of front-matter files per record or "json" for a single
// JSON array file per entity type.
type ContentConfig struct {
	Mode         string `json:"mode" yaml:"mode"`
	ProductsDir  string `json:"productsDir" yaml:"productsDir"`
	EventsDir    string `json:"eventsDir" yaml:"eventsDir"`
	ProductsFile string `json:"productsFile" yaml:"productsFile"`
	EventsFile   string `json:"eventsFile" yaml:"eventsFile"`
}

// CatalogConfig defines product listing behaviour.
type CatalogConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// WhatsAppConfig defines the business contact number for order links.
type WhatsAppConfig struct {
	Number  string `json:"number" yaml:"number"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// BrandConfig defines business identity strings.
type BrandConfig struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// FullName returns "<name> <tagline>" for display.
func (b *BrandConfig) FullName() string {
	return strings.TrimSpace(b.Name + " " + b.Tagline)
}

type ContactConfig struct {
	Address string `json:"address" yaml:"address"`
	Email   string `json:"email" yaml:"email"`
}

type SocialConfig struct {
	Instagram string `json:"instagram" yaml:"instagram"`
	TikTok    string `json:"tiktok" yaml:"tiktok"`
	Facebook  string `json:"facebook" yaml:"facebook"`
}

type SiteConfig struct {
	URL string `json:"url" yaml:"url"`
}

// GitHubOAuthConfig defines credentials for the CMS OAuth helper routes.
// ClientSecret is only used server-side during the token exchange.
type GitHubOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	Scopes       string `json:"scopes" yaml:"scopes"`
}

// QRCodeConfig defines contact QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ExportConfig defines static export settings.
type ExportConfig struct {
	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GITHUBOAUTH_CLIENTSECRET -> githubOAuth.clientSecret
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Catalog == nil {
		c.Catalog = &CatalogConfig{}
	}
	if c.Catalog.PageSize <= 0 {
		c.Catalog.PageSize = defaultPageSize
	}
	if c.WhatsApp == nil {
		c.WhatsApp = &WhatsAppConfig{}
	}
	if strings.TrimSpace(c.WhatsApp.BaseURL) == "" {
		c.WhatsApp.BaseURL = defaultWhatsAppBase
	}
	if c.Brand == nil {
		c.Brand = &BrandConfig{Name: "Kumoart", Tagline: "Handmade"}
	}
	if strings.TrimSpace(c.Env.Log.Level) == "" {
		c.Env.Log.Level = "info"
	}
	if c.Export == nil {
		c.Export = &ExportConfig{}
	}
	if strings.TrimSpace(c.Export.OutputDir) == "" {
		c.Export.OutputDir = defaultExportDir
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

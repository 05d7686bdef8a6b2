package config

// Config is the top-level site configuration, corresponding to pubsite.yml.
type Config struct {
	SiteName        string `yaml:"site_name" koanf:"site_name"`
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	DefaultTab      string `yaml:"default_tab" koanf:"default_tab"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// Theme seeds token overrides from the config file. Values saved from
	// the manager layer on top of these.
	Theme map[string]string `yaml:"theme" koanf:"theme"`

	Relay   RelayConfig   `yaml:"relay" koanf:"relay"`
	Manager ManagerConfig `yaml:"manager" koanf:"manager"`
}

// RelayConfig holds contact form delivery settings.
type RelayConfig struct {
	BaseURL string `yaml:"base_url" koanf:"base_url"`

	// VerificationNote is appended to the success message when delivery went
	// out over the opaque fallback.
	VerificationNote string `yaml:"verification_note" koanf:"verification_note"`

	// AttachmentAllow restricts attachment filenames (glob patterns).
	// Empty means any file type is accepted.
	AttachmentAllow []string `yaml:"attachment_allow" koanf:"attachment_allow"`
}

// ManagerConfig toggles optional sections of the content manager.
type ManagerConfig struct {
	EnableLogo    bool `yaml:"enable_logo" koanf:"enable_logo"`
	EnableCompany bool `yaml:"enable_company" koanf:"enable_company"`
}

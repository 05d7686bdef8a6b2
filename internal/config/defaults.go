package config

import "github.com/Olga-Zydziak/website-of-publishing-house/internal/relay"

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = "pubsite.yml"

// DefaultAttachmentAllow accepts the document and image formats the contact
// form advertises.
var DefaultAttachmentAllow = []string{
	"*.pdf",
	"*.{doc,docx,odt,rtf,txt}",
	"*.{png,jpg,jpeg,webp}",
	"*.{epub,mobi}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:   "Twoje Wydawnictwo",
		Port:       8080,
		DataDir:    "data",
		DefaultTab: "publishing",
		Theme:      map[string]string{},
		Relay: RelayConfig{
			BaseURL:          relay.DefaultBaseURL,
			VerificationNote: relay.DefaultVerificationNote,
			AttachmentAllow:  DefaultAttachmentAllow,
		},
		Manager: ManagerConfig{
			EnableLogo:    true,
			EnableCompany: true,
		},
	}
}

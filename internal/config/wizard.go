package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to pubsite.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to pubsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = siteName

	// 2. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(input string) error {
			port, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil || port < 1 || port > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (overrides database lives here)",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	// 4. Contact recipient. Stored as a theme-independent content override
	// later; here it only seeds the hint below.
	recipientPrompt := promptui.Prompt{
		Label:   "Contact form recipient (leave blank to configure in the manager)",
		Default: "",
	}
	recipient, err := recipientPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	// 5. Manager extras.
	extrasPrompt := promptui.Select{
		Label: "Manager sections",
		Items: []string{
			"content, theme, logo, and company name",
			"content and theme only",
		},
	}
	extrasIdx, _, err := extrasPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("manager sections: %w", err)
	}
	cfg.Manager.EnableLogo = extrasIdx == 0
	cfg.Manager.EnableCompany = extrasIdx == 0

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)

	if recipient == "" {
		fmt.Println("Note: set the contact recipient under the manager's contact tab before going live.")
	} else {
		fmt.Printf("Note: enter %s as the contact email in the manager's contact tab.\n", recipient)
	}

	return cfg, nil
}

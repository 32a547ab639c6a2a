package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docviewer! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name, used in page titles.
	sitePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	siteName, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = strings.TrimSpace(siteName)

	// 2. Documents directory.
	docsPrompt := promptui.Prompt{
		Label:   "Directory containing the markdown documents",
		Default: cfg.DocsDir,
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	// 3. Catalog source.
	catalogPrompt := promptui.Select{
		Label: "Navigation catalog",
		Items: []string{
			"built-in: Quick Start, API Reference, CLI Guide, ...",
			"discover: every markdown file matching a glob",
		},
	}
	catalogIdx, _, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog selection: %w", err)
	}
	if catalogIdx == 1 {
		globPrompt := promptui.Prompt{
			Label:   "Discovery globs (comma-separated)",
			Default: "*.md",
		}
		globs, err := globPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("discovery globs: %w", err)
		}
		cfg.Discover = splitAndTrim(globs)
	}

	// 4. Loader mode.
	loaderPrompt := promptui.Select{
		Label: "Load documents from",
		Items: []string{string(LoaderFS), string(LoaderHTTP)},
	}
	_, mode, err := loaderPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("loader selection: %w", err)
	}
	cfg.Loader.Mode = LoaderMode(mode)
	if cfg.Loader.Mode == LoaderHTTP {
		urlPrompt := promptui.Prompt{
			Label:   "Viewer page URL (documents are fetched from its parent directory)",
			Default: "http://localhost:8080/viewer/viewer.html",
		}
		viewerURL, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("viewer url: %w", err)
		}
		cfg.Loader.ViewerURL = viewerURL
	}

	// 5. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

package config

// SiteConfig holds site-specific configuration for a single catalog host.
// This allows customizing crawl behavior per site without new flags.
type SiteConfig struct {
	// UserAgent overrides the client identity for this site.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Delay overrides the inter-request pause for this site.
	// Some catalogs ask for slower crawling in their robots.txt comments.
	Delay Duration `yaml:"delay,omitempty"`

	// Headers are custom HTTP headers to include in requests to this site.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Output overrides the CSV output path for this site.
	Output string `yaml:"output,omitempty"`
}

// File represents the structure of the .partscan configuration file.
type File struct {
	// Sites maps catalog hostnames to their site-specific configurations
	// (e.g. "parts.example.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains default site configuration applied to all sites
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the configuration for a specific host.
// It merges the site-specific configuration with defaults.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	result := cf.Defaults

	if site, ok := cf.Sites[host]; ok {
		if site.UserAgent != "" {
			result.UserAgent = site.UserAgent
		}
		if !site.Delay.IsZero() {
			result.Delay = site.Delay
		}
		if len(site.Headers) > 0 {
			// Copy before merging so site entries never write into
			// the shared defaults map.
			merged := make(map[string]string, len(result.Headers)+len(site.Headers))
			for k, v := range result.Headers {
				merged[k] = v
			}
			for k, v := range site.Headers {
				merged[k] = v
			}
			result.Headers = merged
		}
		if site.Output != "" {
			result.Output = site.Output
		}
	}

	return result
}

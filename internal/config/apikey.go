package config

import "strings"

// Key sources reported by ResolveAPIKey
const (
	KeySourceConfig = "config"
	KeySourceEnv    = "env"
)

var apiKeyEnvVars = []string{"GEMDB_API_KEY", "GEMHUNTER_API_KEY"}

// ResolveAPIKey picks the API key from the config file, then the environment.
// It returns the key and where it came from, or two empty strings.
func (c *Config) ResolveAPIKey(lookup func(string) (string, bool)) (string, string) {
	appName := c.AppName
	if appName == "" {
		appName = DefaultAppName
	}

	if key := pickKey(c.APIKey, appName); key != "" {
		return key, KeySourceConfig
	}
	for _, name := range apiKeyEnvVars {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if key := pickKey(v, appName); key != "" {
			return key, KeySourceEnv
		}
	}
	return "", ""
}

// pickKey understands "app:key,app2:key2" mappings as well as a raw key.
// The entry for appName wins, then the first mapped entry, then the raw value.
func pickKey(raw, appName string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var entries []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}
	for _, entry := range entries {
		app, key, ok := strings.Cut(entry, ":")
		if ok && strings.TrimSpace(app) == appName {
			return strings.TrimSpace(key)
		}
	}
	if len(entries) > 0 {
		if _, key, ok := strings.Cut(entries[0], ":"); ok {
			return strings.TrimSpace(key)
		}
	}
	return raw
}

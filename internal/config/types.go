package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete vigil configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Backend BackendConfig `yaml:"backend" mapstructure:"backend"`
	Nodes   []NodeSeed    `yaml:"nodes" mapstructure:"nodes"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// BackendConfig describes the metrics backend and the queries run against it.
type BackendConfig struct {
	// URL of the Prometheus-compatible query endpoint.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// QueryInterval is the minimum interval between live fetches.
	// Fetch calls inside the window are no-ops.
	QueryInterval time.Duration `yaml:"query_interval" mapstructure:"query_interval"`

	// NodeQueries are the per-metric query strings for nodes.
	NodeQueries NodeQueries `yaml:"node_queries" mapstructure:"node_queries"`

	// ServiceQueries are the per-metric query strings for services.
	ServiceQueries ServiceQueries `yaml:"service_queries" mapstructure:"service_queries"`
}

// NodeQueries holds one query string per tracked node metric.
// An empty string disables that metric's resolution.
type NodeQueries struct {
	CPU         string `yaml:"cpu" mapstructure:"cpu"`
	Memory      string `yaml:"memory" mapstructure:"memory"`
	GPU         string `yaml:"gpu" mapstructure:"gpu"`
	NetworkRx   string `yaml:"network_rx" mapstructure:"network_rx"`
	NetworkTx   string `yaml:"network_tx" mapstructure:"network_tx"`
	Disk        string `yaml:"disk" mapstructure:"disk"`
	Temperature string `yaml:"temperature" mapstructure:"temperature"`
}

// ServiceQueries holds one query string per tracked service metric.
type ServiceQueries struct {
	Status         string `yaml:"status" mapstructure:"status"`
	CPU            string `yaml:"cpu" mapstructure:"cpu"`
	Memory         string `yaml:"memory" mapstructure:"memory"`
	RequestsPerSec string `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	ResponseTime   string `yaml:"response_time" mapstructure:"response_time"`
	ErrorRate      string `yaml:"error_rate" mapstructure:"error_rate"`
}

// NodeSeed identifies a node to monitor. Name and Address are matched
// against backend series labels; the rest is display metadata.
type NodeSeed struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Address     string `yaml:"address" mapstructure:"address"`
	DisplayName string `yaml:"display_name" mapstructure:"display_name"`
	ShowGPU     bool   `yaml:"show_gpu" mapstructure:"show_gpu"`
}

// UIConfig controls rendering cadence, theme, and layout.
type UIConfig struct {
	// RefreshRateMS is the frame/tick period in milliseconds.
	RefreshRateMS int `yaml:"refresh_rate_ms" mapstructure:"refresh_rate_ms"`

	// Theme is the initial color theme name.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// MainSplit is the [nodes, services] percentage split of the main view.
	MainSplit []int `yaml:"main_split" mapstructure:"main_split"`

	// NodeSplit is the [specs, graphs] percentage split of the node panel.
	NodeSplit []int `yaml:"node_split" mapstructure:"node_split"`

	// ServiceSplit is the [metrics, health] percentage split of the service panel.
	ServiceSplit []int `yaml:"service_split" mapstructure:"service_split"`

	// Filter holds the substring predicates applied while filtering is
	// toggled on. Empty predicates match everything.
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
}

// FilterConfig narrows the visible rows by substring match.
type FilterConfig struct {
	Node      string `yaml:"node" mapstructure:"node"`
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	Service   string `yaml:"service" mapstructure:"service"`
}

// HistoryConfig bounds the in-memory trend buffers.
type HistoryConfig struct {
	// Retention is the maximum number of samples kept per entity.
	Retention int `yaml:"retention" mapstructure:"retention"`
}

// LogConfig controls log output.
type LogConfig struct {
	// File is the log file path. Empty logs to stderr (non-TUI commands only).
	File string `yaml:"file" mapstructure:"file"`
}

// Themes lists the valid theme names in carousel order.
var Themes = []string{
	"default",
	"dracula",
	"gruvbox",
	"nord",
	"solarized",
	"cyberpunk",
	"monokai",
	"onedark",
	"tokyo",
}

// IsKnownTheme reports whether name is a valid theme.
func IsKnownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Backend: BackendConfig{
			URL:           "http://localhost:9090",
			Timeout:       10 * time.Second,
			QueryInterval: 5 * time.Second,
			NodeQueries: NodeQueries{
				CPU:         `100 - (avg by (instance) (irate(node_cpu_seconds_total{mode="idle"}[5m])) * 100)`,
				Memory:      `((1 - (node_memory_MemAvailable_bytes / node_memory_MemTotal_bytes)) * 100)`,
				NetworkRx:   `irate(node_network_receive_bytes_total[5m]) / 1024 / 1024`,
				NetworkTx:   `irate(node_network_transmit_bytes_total[5m]) / 1024 / 1024`,
				Disk:        `((1 - (node_filesystem_avail_bytes{mountpoint="/"} / node_filesystem_size_bytes{mountpoint="/"})) * 100)`,
				Temperature: `node_hwmon_temp_celsius`,
			},
			ServiceQueries: ServiceQueries{
				Status:         `up`,
				CPU:            `rate(container_cpu_usage_seconds_total[5m]) * 100`,
				Memory:         `container_memory_usage_bytes / container_spec_memory_limit_bytes * 100`,
				RequestsPerSec: `rate(container_http_requests_total[5m])`,
				ResponseTime:   `histogram_quantile(0.95, rate(container_http_request_duration_seconds_bucket[5m])) * 1000`,
				ErrorRate:      `rate(container_http_requests_total{status=~"5.."}[5m]) / rate(container_http_requests_total[5m]) * 100`,
			},
		},
		UI: UIConfig{
			RefreshRateMS: 250,
			Theme:         "default",
			MainSplit:     []int{50, 50},
			NodeSplit:     []int{50, 50},
			ServiceSplit:  []int{60, 40},
		},
		History: HistoryConfig{
			Retention: 60,
		},
	}
}

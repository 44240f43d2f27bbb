// Package types provides the canonical data model for the mcpconf registry
package types

// DeploymentType describes where a registered server runs.
type DeploymentType string

const (
	// DeploymentLocal indicates the server runs on the local machine
	DeploymentLocal DeploymentType = "local"
	// DeploymentRemote indicates the server runs on a remote host
	DeploymentRemote DeploymentType = "remote"
	// DeploymentHybrid indicates the server runs in a mixed mode
	DeploymentHybrid DeploymentType = "hybrid"
)

// IsValid reports whether d is one of the known deployment types.
func (d DeploymentType) IsValid() bool {
	switch d {
	case DeploymentLocal, DeploymentRemote, DeploymentHybrid:
		return true
	}
	return false
}

// TransportType describes how a client communicates with a server.
type TransportType string

const (
	// TransportStdio is communication over standard input/output pipes
	TransportStdio TransportType = "stdio"
	// TransportHTTP is communication over plain HTTP
	TransportHTTP TransportType = "http"
	// TransportHTTPS is communication over HTTPS
	TransportHTTPS TransportType = "https"
	// TransportWebSocket is communication over a WebSocket connection
	TransportWebSocket TransportType = "websocket"
)

// IsValid reports whether t is one of the known transport types.
func (t TransportType) IsValid() bool {
	switch t {
	case TransportStdio, TransportHTTP, TransportHTTPS, TransportWebSocket:
		return true
	}
	return false
}

// DefaultTimeout is the connection timeout, in seconds, assumed for
// entries that do not set one. It describes the external connector and
// has no effect on registry operations.
const DefaultTimeout = 30

// Config holds the connection configuration for a server entry.
//
// The type permits all fields to coexist; which fields are required is
// a validation concern (stdio needs Command, http/https need URL).
type Config struct {
	Transport TransportType `yaml:"transport" json:"transport"`

	// Command and Args launch a stdio server as a subprocess
	Command string   `yaml:"command,omitempty" json:"command,omitempty"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`

	// URL and Headers address a server reached over the network
	URL     string            `yaml:"url,omitempty" json:"url,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	Env        map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	WorkingDir string            `yaml:"working_dir,omitempty" json:"working_dir,omitempty"`

	// Timeout in seconds, defaults to DefaultTimeout when parsed
	Timeout int `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// Capabilities lists what a server exposes to clients. Identifiers are
// free-form and uniqueness is not enforced.
type Capabilities struct {
	Tools     []string `yaml:"tools,omitempty" json:"tools,omitempty"`
	Resources []string `yaml:"resources,omitempty" json:"resources,omitempty"`
	Prompts   []string `yaml:"prompts,omitempty" json:"prompts,omitempty"`
}

// Requirements declares what a server needs from its host environment.
type Requirements struct {
	Platforms    []string          `yaml:"platforms,omitempty" json:"platforms,omitempty"`
	Runtimes     map[string]string `yaml:"runtimes,omitempty" json:"runtimes,omitempty"`
	Dependencies []string          `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Network      *bool             `yaml:"network,omitempty" json:"network,omitempty"`
}

// Security describes the authentication and isolation posture of a server.
type Security struct {
	RequiresAuth bool     `yaml:"requires_auth,omitempty" json:"requires_auth,omitempty"`
	Permissions  []string `yaml:"permissions,omitempty" json:"permissions,omitempty"`
	Sandbox      bool     `yaml:"sandbox,omitempty" json:"sandbox,omitempty"`
}

// Compatibility declares which consumer-tool versions the entry is
// known to work with.
type Compatibility struct {
	ClaudeDesktop string `yaml:"claude_desktop,omitempty" json:"claude_desktop,omitempty"`
	Mcpconf       string `yaml:"mcpconf,omitempty" json:"mcpconf,omitempty"`
}

// Entry is one describable server definition in the registry.
type Entry struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Version     string         `yaml:"version" json:"version"`
	Deployment  DeploymentType `yaml:"deployment" json:"deployment"`
	Config      *Config        `yaml:"config" json:"config"`

	License       string         `yaml:"license,omitempty" json:"license,omitempty"`
	SourceURL     string         `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	Capabilities  *Capabilities  `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	Requirements  *Requirements  `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	Security      *Security      `yaml:"security,omitempty" json:"security,omitempty"`
	Compatibility *Compatibility `yaml:"compatibility,omitempty" json:"compatibility,omitempty"`
}

// Registry is the root document: a set of entries keyed by identifier
// plus optional caller-defined categories.
//
// Category membership is many-to-many and is not checked against the
// server map; identifiers without a matching entry simply filter to
// nothing.
type Registry struct {
	Version    string              `yaml:"version" json:"version"`
	Servers    map[string]*Entry   `yaml:"servers" json:"servers"`
	Categories map[string][]string `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// NewRegistry returns an empty registry with the current schema version.
func NewRegistry() *Registry {
	return &Registry{
		Version: "1.0",
		Servers: make(map[string]*Entry),
	}
}

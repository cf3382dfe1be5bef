package models

// CORSConfig defines the CORS policy for the HTTP API.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// DatabaseConfig holds connection settings for the inventory database.
type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	MaxConns int32  `json:"max_conns,omitempty"`
	MinConns int32  `json:"min_conns,omitempty"`
}

// AuthConfig maps API keys to roles and roles to capability sets.
type AuthConfig struct {
	Roles   map[string][]string `json:"roles"`
	APIKeys map[string]string   `json:"api_keys"`
}

package config

type HTTPConfig struct {
	Port string
}

func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port: getEnv("HTTP_PORT", "8083"),
	}
}

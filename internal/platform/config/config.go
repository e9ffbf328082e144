package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string

	// EndpointTemplate is the default endpoint URL template handed to the
	// front-end when the host does not supply its own. The %%endpoint%%
	// placeholder is substituted client-side.
	EndpointTemplate string

	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present.
func FromEnv() Server {
	_ = godotenv.Load()

	addr := os.Getenv("BNPL_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	endpointTemplate := os.Getenv("BNPL_GATEWAY_ENDPOINT_TEMPLATE")
	if endpointTemplate == "" {
		endpointTemplate = "/checkout/%%endpoint%%"
	}

	return Server{
		Addr:             addr,
		EndpointTemplate: endpointTemplate,
		LogLevel:         os.Getenv("BNPL_GATEWAY_LOG_LEVEL"),
	}
}

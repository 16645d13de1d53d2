package bootstrap

import (
	"tmf-backend/internal/config"
	"tmf-backend/internal/interfaces/router"
)

// New wires the full application from env config (serverless entrypoint
// imports this package, not internal).
func New() (*router.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return router.CreateApp(cfg)
}

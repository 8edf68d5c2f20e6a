package server

import (
	"time"

	"github.com/umputun/feedwall/pkg/config"
	"github.com/umputun/feedwall/pkg/domain"
)

// ConfigAdapter adapts config.Config to ConfigProvider interface
type ConfigAdapter struct {
	Config *config.Config
}

// GetServerConfig returns listen address and timeout
func (c *ConfigAdapter) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Config.Server.Listen, c.Config.Server.Timeout
}

// GetBaseURL returns public base url used for links
func (c *ConfigAdapter) GetBaseURL() string {
	return c.Config.Server.BaseURL
}

// GetLayoutDefaults returns default viewport, container width and size preference
func (c *ConfigAdapter) GetLayoutDefaults() (viewport int, container float64, size domain.SizePreference) {
	size, err := domain.ParseSizePreference(c.Config.Layout.Size)
	if err != nil {
		size = domain.SizeMedium
	}
	return c.Config.Layout.Viewport, c.Config.Layout.ContainerWidth, size
}

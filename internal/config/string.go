package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/liatrio/liatrio-demo-api/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c Config) String() string {
	return ConfigTree(c)
}

// ConfigTree renders the configuration as a tree
func ConfigTree(cfg Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Liatrio Demo API Config"))

	server := fancy.BranchNode("Server", cfg.Address())
	server.Child(
		fancy.KeyValue("Host", cfg.Host),
		fancy.KeyValue("Port", cfg.Port),
		fancy.KeyValue("Environment", cfg.Environment),
		fancy.KeyValue("Debug", cfg.Debug),
	)
	t.Child(server)

	logs := fancy.BranchNode("Logging", "")
	logs.Child(
		fancy.KeyValue("Level", cfg.LogLevel()),
		fancy.KeyValue("Format", cfg.Logging.Format),
		fancy.KeyValue("Output", cfg.Logging.Output),
	)
	t.Child(logs)

	httpTree := fancy.BranchNode("HTTP", "")
	httpTree.Child(
		fancy.KeyValue("Read timeout", cfg.HTTP.ReadTimeout),
		fancy.KeyValue("Write timeout", cfg.HTTP.WriteTimeout),
		fancy.KeyValue("Idle timeout", cfg.HTTP.IdleTimeout),
		fancy.KeyValue("Drain timeout", cfg.HTTP.DrainTimeout),
	)
	t.Child(httpTree)

	if len(cfg.HTTP.ResponseHeaders) > 0 {
		headers := fancy.BranchNode("Response headers", fmt.Sprintf("(%d)", len(cfg.HTTP.ResponseHeaders)))
		for _, name := range slices.Sorted(maps.Keys(cfg.HTTP.ResponseHeaders)) {
			headers.Child(fancy.KeyValue(name, cfg.HTTP.ResponseHeaders[name]))
		}
		t.Child(headers)
	}

	return t.String()
}

// Summary returns a short plain-text description of the config
func (c Config) Summary() string {
	return fmt.Sprintf(
		"- Address: %s\n- Environment: %s\n- Debug: %t\n- Log level: %s\n- Log format: %s",
		c.Address(), c.Environment, c.Debug, c.LogLevel(), c.Logging.Format,
	)
}

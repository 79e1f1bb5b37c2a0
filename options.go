package paramerge

import (
	"github.com/opendsc/paramerge/codec"
	"github.com/opendsc/paramerge/format"
)

type config struct {
	format          format.Format
	includeComments bool
}

type Option func(*config)

// OutputFormat selects the serialization of the merged document.
// The default is YAML.
func OutputFormat(f format.Format) Option {
	return func(c *config) { c.format = f }
}

// IncludeComments is accepted for compatibility with the original
// pull-server surface. Comments are not represented in parsed
// documents, so the option has no observable effect.
func IncludeComments(v bool) Option {
	return func(c *config) { c.includeComments = v }
}

func newConfig(opts []Option) *config {
	cfg := &config{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) encodeOpts() []codec.EncodeOption {
	return []codec.EncodeOption{
		codec.EncodeFormat(c.format),
		codec.EncodeComments(c.includeComments),
	}
}

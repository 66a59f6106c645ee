package session

import (
	"go.uber.org/zap"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/pkg/rpki"
	"github.com/joshuapare/derkit/pkg/types"
)

type config struct {
	parse   der.ParseOptions
	objType rpki.ObjectType
	log     *zap.Logger
}

func newConfig(opts []Option) config {
	c := config{parse: der.DefaultParseOptions(), log: logger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option adjusts how a State is built.
type Option func(*config)

// WithLimits bounds the parsed tree.
// Default: types.DefaultLimits()
func WithLimits(l types.Limits) Option {
	return func(c *config) { c.parse.Limits = l }
}

// WithEncapsulated toggles exposing DER inside OCTET/BIT STRING as children.
// Default: true
func WithEncapsulated(on bool) Option {
	return func(c *config) { c.parse.Encapsulated = on }
}

// WithObjectType fixes the object type instead of classifying the tree.
// Default: rpki.Classify
func WithObjectType(t rpki.ObjectType) Option {
	return func(c *config) { c.objType = t }
}

// WithLogger sets the logger used for session events.
// Default: the package logger
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

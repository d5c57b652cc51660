// SPDX-License-Identifier: MIT

package bipartite

import "go.uber.org/zap"

// Option configures Build and Verify.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

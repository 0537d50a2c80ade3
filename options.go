package policyocr

import (
	"context"

	"go.uber.org/zap"
)

// scanOptions holds configuration for a Scanner.
type scanOptions struct {
	ctx         context.Context
	workers     int
	ocrLanguage string
	logger      *zap.Logger
}

// defaultOptions returns the default scan options.
func defaultOptions() scanOptions {
	return scanOptions{
		ctx:         context.Background(),
		workers:     1,
		ocrLanguage: "eng",
		logger:      zap.NewNop(),
	}
}

// clone creates a copy of scanOptions. All fields are values or shared
// read-only handles.
func (o scanOptions) clone() scanOptions {
	return scanOptions{
		ctx:         o.ctx,
		workers:     o.workers,
		ocrLanguage: o.ocrLanguage,
		logger:      o.logger,
	}
}

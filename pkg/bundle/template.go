package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateBuilder builds a single-publication-point repository from a
// directory holding a trust anchor: ta.tal and ta.cer. The object is copied
// as-is under a random file name; nothing is re-signed.
type TemplateBuilder struct {
	// Dir holds ta.tal and ta.cer.
	Dir string

	// Log receives build events. Default: the package logger.
	Log *zap.Logger
}

// Build implements Builder.
func (b TemplateBuilder) Build(ctx context.Context, obj Object) (*Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := b.Log
	if log == nil {
		log = logger
	}

	tal, err := os.ReadFile(filepath.Join(b.Dir, TALName))
	if err != nil {
		return nil, fmt.Errorf("read trust anchor locator: %w", err)
	}
	cert, err := os.ReadFile(filepath.Join(b.Dir, "ta.cer"))
	if err != nil {
		return nil, fmt.Errorf("read trust anchor certificate: %w", err)
	}

	name := ObjectDir + uuid.NewString() + "." + obj.Type.Extension()
	log.Debug("build repository",
		zap.String("dir", b.Dir),
		zap.String("object", name),
		zap.Stringer("type", obj.Type),
		zap.Int("size", len(obj.Data)),
	)
	return &Repository{
		Files:  []File{{Name: name, Data: obj.Data}},
		TAL:    tal,
		CACert: cert,
	}, nil
}

package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/joshuapare/derkit/pkg/bundle"
)

// Repositorify hands the encoded object to b and returns the resulting
// repository as a .tar.gz, ending with ta.tal and data/repo/ta/ta.cer.
func (s *State) Repositorify(ctx context.Context, b bundle.Builder) ([]byte, error) {
	obj := bundle.Object{Data: s.tree.Encode(), Type: s.ObjectType()}
	repo, err := b.Build(ctx, obj)
	if err != nil {
		return nil, err
	}
	files := repo.Archive()
	out, err := bundle.TarGz(files)
	if err != nil {
		return nil, err
	}
	s.log.Debug("repositorify",
		zap.Stringer("type", obj.Type),
		zap.Int("files", len(files)),
		zap.Int("size", len(out)),
	)
	return out, nil
}

package bundle

import (
	"context"

	"github.com/joshuapare/derkit/pkg/rpki"
)

// Repository layout paths.
const (
	TALName    = "ta.tal"
	CACertPath = "data/repo/ta/ta.cer"
	ObjectDir  = "data/repo/ta/"
)

// Object is an edited object handed to a Builder.
type Object struct {
	Data []byte
	Type rpki.ObjectType
}

// File is one archive entry.
type File struct {
	Name string
	Data []byte
}

// Repository is what a Builder produces: repository files, the trust anchor
// locator and the trust anchor certificate it points at.
type Repository struct {
	Files  []File
	TAL    []byte
	CACert []byte
}

// Archive returns the repository files followed by the TAL and the CA
// certificate at their fixed paths.
func (r *Repository) Archive() []File {
	files := make([]File, 0, len(r.Files)+2)
	files = append(files, r.Files...)
	files = append(files,
		File{Name: TALName, Data: r.TAL},
		File{Name: CACertPath, Data: r.CACert},
	)
	return files
}

// Builder places an object into a publishable repository.
//
// Implementations sign or otherwise fix up the object as they see fit; the
// bundle package only packages what they return.
type Builder interface {
	Build(ctx context.Context, obj Object) (*Repository, error)
}

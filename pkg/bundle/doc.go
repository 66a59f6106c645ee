// Package bundle packages an edited object into an RPKI repository archive.
//
// A Builder turns an Object into a Repository; WriteTarGz serializes the
// repository as a .tar.gz with every entry at mode 0755:
//
//	repo, err := bundle.TemplateBuilder{Dir: "ta"}.Build(ctx, obj)
//	if err != nil {
//	    return err
//	}
//	return bundle.WriteTarGz(w, repo.Archive())
//
// The archive always ends with ta.tal and data/repo/ta/ta.cer.
package bundle

import "github.com/joshuapare/derkit/internal/logging"

var logger = logging.New("bundle")

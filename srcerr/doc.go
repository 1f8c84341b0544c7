// Package srcerr classifies srcfg failures.
//
// Every sentinel error exported by the srcfg packages is built with New and
// carries a Kind. Callers match individual failures with errors.Is and whole
// classes with KindOf or Is:
//
//	if srcerr.Is(err, srcerr.KindConflict) {
//	    // a name was bound both as a section and as an array of sections
//	}
package srcerr

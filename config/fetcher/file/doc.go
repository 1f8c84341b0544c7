// Package file locates and reads configuration files on the local filesystem.
//
// Fetcher reads a file once, at construction time, and hands the contents to
// the config package together with the file's directory, so that relative
// @import targets resolve against the importing file.
//
// Resolver turns an @import target into a file path. Targets that look like
// paths (they contain a separator or start with "~") are taken as they are,
// relative to the importing directory. Bare names are searched for in the
// importing directory and then in each of its ancestors:
//
//	resolver := file.NewResolver()
//	path, err := resolver.Resolve("base.srcfg", "/srv/app/conf/prod")
//	// tries /srv/app/conf/prod/base.srcfg, /srv/app/conf/base.srcfg, ... /base.srcfg
//
// Error Handling:
//   - Missing files wrap ErrFileNotFound
//   - Directories wrap ErrPathIsDirectory
//   - Errors include the path for easier debugging
package file

// Package version exposes build metadata injected at link time.
package version

//nolint:gochecknoglobals // set through -ldflags -X
var (
	name    = "assay"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

package levels

import (
	"embed"
	"io/fs"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns a loader for the levels shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// data/ is part of the embed pattern, so Sub cannot fail.
		panic(err)
	}
	return NewLoader(sub)
}

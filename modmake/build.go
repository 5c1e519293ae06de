package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	mpwVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	mpw := NewAppBuild("mpw", "cmd/mpw", mpwVersion)
	mpw.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", mpwVersion).
			CgoEnabled(false)
	})
	for _, target := range []struct{ os, arch string }{
		{"windows", "amd64"},
		{"windows", "arm64"},
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	} {
		mpw.Variant(target.os, target.arch)
	}
	b.ImportApp(mpw)

	b.Execute()
}

// Command qrstyle renders styled QR symbols.
//
// Usage:
//
//	qrstyle render "https://example.com" -o code.svg
//	qrstyle render "hello" --design brand.yaml --size 1024 -o code.png
//	qrstyle generators pixel
//	qrstyle design init brand.yaml
//	qrstyle design convert brand.yaml brand.toml
//
// Every render flag can also be set with a GGQR_ environment variable
// (GGQR_SIZE, GGQR_ENGINE, ...) or in a .qrstyle.yaml config file.
package main

import (
	"os"

	_ "github.com/gogpu/gg-qr/engine/goqrcode"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

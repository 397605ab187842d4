// Command karte opens the glyph-art editor.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/karte"
)

func main() {
	configPath := flag.String("config", "karte.yaml", "path to the editor config")
	flag.Parse()

	cfg, err := karte.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := karte.Run(cfg); err != nil {
		log.Fatal(err)
	}
}

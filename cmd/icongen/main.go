// Command icongen generates the application icon set and packs it
// into an .icns container using the system iconutil.
package main

import (
	"log"

	"github.com/caarlos0/env/v11"

	"seehuhn.de/go/appicon"
)

type config struct {
	Dir    string `env:"APPICON_DIR" envDefault:"Resources/AppIcon.appiconset"`
	Icns   string `env:"APPICON_ICNS" envDefault:"Resources/AppIcon.icns"`
	NoPack bool   `env:"APPICON_NO_PACK"`
}

func main() {
	log.SetFlags(0)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if cfg.NoPack {
		cfg.Icns = ""
	}

	log.Printf("generating icon set in %s", cfg.Dir)
	b := &appicon.Builder{Dir: cfg.Dir, Icns: cfg.Icns}
	if err := b.Build(); err != nil {
		log.Fatal(err)
	}
	log.Printf("icon set complete")
}

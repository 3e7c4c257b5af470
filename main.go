package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dkooll/gophx/pairup/config"
	"github.com/dkooll/gophx/pairup/reconcile"
)

func main() {
	exe, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}
	dir := filepath.Dir(exe)

	cfg, err := config.Load(dir)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if _, err := reconcile.Run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

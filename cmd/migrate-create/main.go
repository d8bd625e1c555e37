package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	name := flag.String("name", "", "snake_case migration name, e.g. add_outcomes_index")
	flag.Parse()

	if *name == "" {
		log.Fatal("usage: migrate-create -name <snake_case_name>")
	}
	if strings.ContainsAny(*name, " \t") {
		log.Fatal("migration name must not contain whitespace")
	}

	dir := filepath.Join("db", "migrations")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create %s: %v", dir, err)
	}

	stamp := time.Now().UTC().Format("20060102150405")
	for _, direction := range []string{"up", "down"} {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s.sql", stamp, *name, direction))
		if err := newMigrationFile(path); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("created %s", path)
	}
}

func newMigrationFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("already exists")
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte("-- write migration SQL here\n"), 0o644)
}

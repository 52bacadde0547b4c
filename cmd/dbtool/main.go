package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"
	"vrp-instance-service/internal/adapters/repositories"
	"vrp-instance-service/internal/adapters/source"
	"vrp-instance-service/internal/config"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/db"
	"vrp-instance-service/internal/services"
)

// dbtool initializes the catalog schema and optionally imports benchmark
// files from a directory or from URLs.
//
//	dbtool [-dir data/instances] [-urls https://.../A-n32-k5.vrp,...] [-dialect auto] [-workers 4]
func main() {
	config.Load()

	dir := flag.String("dir", config.Get("INSTANCE_DIR", ""), "directory of instance files to import")
	dialect := flag.String("dialect", "auto", "dialect of the imported files")
	urls := flag.String("urls", "", "comma-separated instance URLs to download and import")
	workers := flag.Int("workers", config.GetInt("IMPORT_WORKERS", 4), "concurrent parses")
	flag.Parse()

	databaseURL, err := config.Require("DATABASE_URL")
	if err != nil {
		log.Fatal(err)
	}

	d, err := parsers.ParseDialect(*dialect)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	repo := repositories.NewSQLInstanceRepository(conn)

	if *urls != "" {
		src := source.NewHTTPSource(config.GetDuration("FETCH_TIMEOUT", 30*time.Second))
		for _, u := range strings.Split(*urls, ",") {
			u = strings.TrimSpace(u)
			if u == "" {
				continue
			}
			inst, err := services.LoadInstanceFrom(ctx, src, u, d)
			if err != nil {
				log.Printf("download skipped url=%s err=%v", u, err)
				continue
			}
			if err := repo.SaveInstance(ctx, inst); err != nil {
				log.Fatalf("save failed: name=%s err=%v", inst.Name, err)
			}
			log.Printf("Downloaded instance name=%s points=%d", inst.Name, len(inst.Points))
		}
	}

	if *dir == "" {
		return
	}

	log.Printf("Importing instances dir=%s dialect=%s workers=%d", *dir, d, *workers)
	report, err := services.ImportDirectory(ctx, *dir, d, *workers, repo)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	for _, f := range report.Failed {
		log.Printf("import skipped file=%s err=%v", f.File, f.Err)
	}
	log.Printf("Import complete. imported=%d skipped=%d", len(report.Imported), len(report.Failed))
}

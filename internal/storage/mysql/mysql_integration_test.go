//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"steamreviews/internal/domain"
	mysqlrepo "steamreviews/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Skipf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func review(id string, created int64) domain.NormalizedReview {
	return domain.NormalizedReview{
		RecommendationID:      id,
		SteamID:               "7656119800000" + id,
		Language:              "english",
		Review:                "review " + id,
		VotedUp:               true,
		TimestampCreated:      created,
		TimestampUpdated:      created,
		AuthorPlaytimeForever: 100,
		VotesUp:               5,
		WeightedVoteScore:     "0.5",
		SteamPurchase:         true,
	}
}

func TestRepo_UpsertAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("docker-backed test")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest pool: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=steam",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/steam?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()
	const appID = int64(413150)

	rs := []domain.NormalizedReview{review("2", 200), review("1", 100)}
	if err := repo.UpsertReviews(ctx, appID, rs); err != nil {
		t.Fatalf("UpsertReviews: %v", err)
	}

	// idempotent on the (appid, recommendationid) key
	rs[0].Review = "updated text"
	if err := repo.UpsertReviews(ctx, appID, rs); err != nil {
		t.Fatalf("UpsertReviews again: %v", err)
	}

	total, err := repo.CountReviews(ctx, appID)
	if err != nil {
		t.Fatalf("CountReviews: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d", total)
	}

	page, err := repo.ListReviews(ctx, appID, domain.PageQuery{Limit: 10})
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(page.Items) != 2 || page.Total != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	// newest first
	if page.Items[0].RecommendationID != "2" || page.Items[0].Review != "updated text" {
		t.Fatalf("unexpected first item: %+v", page.Items[0])
	}

	if err := repo.LogFetch(ctx, appID, 2, "AB=="); err != nil {
		t.Fatalf("LogFetch: %v", err)
	}

	// unknown app reads as not found
	if _, err := repo.ListReviews(ctx, 999999, domain.PageQuery{Limit: 10}); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/app"
	"github.com/Harshverma1208/skill-companion-project/internal/config"
	"github.com/Harshverma1208/skill-companion-project/internal/database/seeder"
	"github.com/Harshverma1208/skill-companion-project/internal/feed"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"
	"github.com/Harshverma1208/skill-companion-project/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	syncFeeds := flag.Bool("sync-feeds", false, "pull course/job feeds before aggregating")
	seed := flag.Bool("seed", false, "apply schema and baseline data first")
	timeout := flag.Duration("timeout", 15*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *seed {
		if err := seeder.Run(ctx, c.DB, c.Logger); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	jobRepo := repository.NewPostgresJobRepository(c.DB)
	skillRepo := repository.NewPostgresSkillRepository(c.DB)
	courseRepo := repository.NewPostgresCourseRepository(c.DB)

	if *syncFeeds {
		var feeds []feed.Feed
		if cfg.Feeds.CourseBaseURL != "" {
			feeds = append(feeds, feed.NewCourseFeed(courseRepo, cfg.Feeds.CoursePlatform, cfg.Feeds.CourseBaseURL, c.Logger))
		}
		if cfg.Feeds.JobBoardURL != "" {
			feeds = append(feeds, feed.NewJobBoardFeed(jobRepo, cfg.Feeds.JobBoardURL, c.Logger))
		}
		if len(feeds) == 0 {
			log.Printf("no feeds configured, skipping sync")
		} else {
			if err := feed.NewSyncer(c.Logger, feeds...).SyncAll(ctx, cfg.Feeds.Pages, cfg.Feeds.Workers); err != nil {
				log.Printf("feed sync finished with errors: %v", err)
			}
			if err := c.Cache.InvalidateTrends(ctx); err != nil {
				log.Printf("trends cache invalidation failed: %v", err)
			}
		}
	}

	demandUC := usecase.NewDemandUsecase(jobRepo, skillRepo, c.Cache, usecase.DemandParams{
		Workers:       cfg.Aggregator.Workers,
		SnapshotLimit: cfg.Aggregator.SnapshotLimit,
		LockTTL:       cfg.Aggregator.LockTTL,
	}, c.Logger)

	rep, err := demandUC.ComputeSkillDemand(ctx)
	if err != nil {
		log.Fatalf("demand aggregation failed: %v", err)
	}
	log.Printf("demand aggregation done postings=%d updated=%d failed=%d duration=%s",
		rep.PostingCount, rep.UpdatedCount, len(rep.FailedSkills), rep.Duration)
}

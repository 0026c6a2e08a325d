package feed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/course"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/workerpool"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/gocolly/colly/v2"
)

// CourseFeed pulls the public catalog of a course platform and upserts each
// listing. Platform plus external id keeps re-runs idempotent.
type CourseFeed struct {
	courses     repository.CourseRepository
	platform    string
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewCourseFeed(courses repository.CourseRepository, platform, baseURL string, logger *log.Logger) *CourseFeed {
	if logger == nil {
		logger = log.Default()
	}
	f := &CourseFeed{
		courses:  courses,
		platform: strings.TrimSpace(platform),
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:   logger,
	}
	f.allowedHost = hostFromBaseURL(f.baseURL)
	return f
}

func (f *CourseFeed) Name() string {
	return "courses:" + f.platform
}

type courseListItem struct {
	ExternalID string
	Link       string
}

func (f *CourseFeed) Sync(ctx context.Context, pages int, workers int) error {
	if f == nil || f.courses == nil {
		return fmt.Errorf("nil feed/repository")
	}
	if pages <= 0 {
		pages = 1
	}

	pool := workerpool.New(workers, workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for page := 1; page <= pages; page++ {
			items, err := f.fetchCatalogPage(ctx, page)
			if err != nil {
				f.logger.Printf("feed=%s step=list page=%d status=error err=%v", f.Name(), page, err)
				continue
			}
			for _, it := range items {
				it := it
				pool.Submit(ctx, workerpool.Task{
					Key: it.ExternalID,
					Run: func(ctx context.Context) error {
						c, err := f.fetchCourseDetail(ctx, it)
						if err != nil {
							return err
						}
						return f.courses.UpsertCourse(ctx, c)
					},
				})
			}
		}
	}()

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			f.logger.Printf("feed=%s step=detail status=error course=%q err=%v", f.Name(), res.Key, res.Err)
		}
	}
	f.logger.Printf("feed=%s status=finished failed=%d", f.Name(), failed)
	return ctx.Err()
}

func (f *CourseFeed) fetchCatalogPage(ctx context.Context, page int) ([]courseListItem, error) {
	c := colly.NewCollector(colly.AllowedDomains(f.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 750 * time.Millisecond, Delay: 400 * time.Millisecond})

	items := make([]courseListItem, 0)

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("a[data-course-id]", func(e *colly.HTMLElement) {
		id := strings.TrimSpace(e.Attr("data-course-id"))
		href := strings.TrimSpace(e.Attr("href"))
		if id == "" || href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, courseListItem{ExternalID: id, Link: abs})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(fmt.Sprintf("%s/catalog?page=%d", f.baseURL, page)); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]courseListItem, 0, len(items))
	for _, it := range items {
		if _, ok := dedup[it.ExternalID]; ok {
			continue
		}
		dedup[it.ExternalID] = struct{}{}
		out = append(out, courseListItem{ExternalID: it.ExternalID, Link: normalizeURL(it.Link)})
	}
	return out, nil
}

func (f *CourseFeed) fetchCourseDetail(ctx context.Context, it courseListItem) (course.Course, error) {
	c := colly.NewCollector(colly.AllowedDomains(f.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	out := course.Course{
		Platform:   f.platform,
		ExternalID: it.ExternalID,
		URL:        it.Link,
	}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("[data-course-description]", func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.Text)
	})

	c.OnHTML("[data-course-meta]", func(e *colly.HTMLElement) {
		out.Rating.Score = parseFloatOr(e.Attr("data-rating"), 0)
		out.Rating.Count = parseIntOr(e.Attr("data-rating-count"), 0)
		out.EnrollmentCount = parseIntOr(e.Attr("data-enrollments"), 0)
		out.Price.Amount = parseFloatOr(e.Attr("data-price"), 0)
		out.Price.Currency = pickNonEmpty(e.Attr("data-currency"), "USD")

		switch strings.ToLower(strings.TrimSpace(e.Attr("data-level"))) {
		case "advanced":
			out.Difficulty = course.DifficultyAdvanced
		case "intermediate":
			out.Difficulty = course.DifficultyIntermediate
		default:
			out.Difficulty = course.DifficultyBeginner
		}
	})

	c.OnHTML("[data-course-skills]", func(e *colly.HTMLElement) {
		out.Skills = splitSkillList(e.Attr("data-course-skills"))
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return course.Course{}, ctx.Err()
	}
	if err := c.Visit(it.Link); err != nil {
		return course.Course{}, err
	}
	c.Wait()
	if reqErr != nil {
		return course.Course{}, reqErr
	}

	if out.Title == "" {
		return course.Course{}, fmt.Errorf("course %s: empty title", it.ExternalID)
	}
	if len(out.Skills) == 0 {
		return course.Course{}, fmt.Errorf("course %s: no skills listed", it.ExternalID)
	}
	return out, nil
}

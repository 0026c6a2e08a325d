package feed

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/domain/job"
	"github.com/Harshverma1208/skill-companion-project/internal/pkg/workerpool"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/chromedp/chromedp"
	"github.com/gocolly/colly/v2"
)

// JobBoardFeed ingests postings from a JS-rendered job board. Listing pages
// only render client side, so link discovery goes through a headless
// browser; detail pages are static HTML and are fetched directly.
type JobBoardFeed struct {
	jobs        repository.JobRepository
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewJobBoardFeed(jobs repository.JobRepository, baseURL string, logger *log.Logger) *JobBoardFeed {
	if logger == nil {
		logger = log.Default()
	}
	f := &JobBoardFeed{
		jobs:    jobs,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger,
	}
	f.allowedHost = hostFromBaseURL(f.baseURL)
	return f
}

func (f *JobBoardFeed) Name() string {
	return "jobs:" + f.allowedHost
}

func (f *JobBoardFeed) Sync(ctx context.Context, pages int, workers int) error {
	if f == nil || f.jobs == nil {
		return fmt.Errorf("nil feed/repository")
	}
	if pages <= 0 {
		pages = 1
	}

	pool := workerpool.New(workers, workers*2)
	pool.SetRateLimit(3)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for page := 1; page <= pages; page++ {
			links, err := f.fetchListingHeadless(ctx, page)
			if err != nil {
				f.logger.Printf("feed=%s step=list page=%d status=error err=%v", f.Name(), page, err)
				continue
			}
			for _, link := range links {
				link := link
				pool.Submit(ctx, workerpool.Task{
					Key: link,
					Run: func(ctx context.Context) error {
						posting, err := f.fetchPostingDetail(ctx, link)
						if err != nil {
							return err
						}
						return f.jobs.UpsertPosting(ctx, posting)
					},
				})
			}
		}
	}()

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			f.logger.Printf("feed=%s step=detail status=error posting=%q err=%v", f.Name(), res.Key, res.Err)
		}
	}
	f.logger.Printf("feed=%s status=finished failed=%d", f.Name(), failed)
	return ctx.Err()
}

var postingPathRe = regexp.MustCompile(`/jobs/[a-z0-9-]+`)

func (f *JobBoardFeed) fetchListingHeadless(ctx context.Context, page int) ([]string, error) {
	listURL := fmt.Sprintf("%s/jobs/explore?page=%d", f.baseURL, page)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(httpHeaders()["User-Agent"]),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.getAttribute('href'))
			.filter(h => h && h.includes('/jobs/'))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		h = strings.TrimSpace(h)
		if !postingPathRe.MatchString(h) {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = f.baseURL + h
		}
		h = normalizeURL(h)
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no posting urls found (headless)")
	}
	return out, nil
}

func (f *JobBoardFeed) fetchPostingDetail(ctx context.Context, postingURL string) (job.Posting, error) {
	c := colly.NewCollector(colly.AllowedDomains(f.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	out := job.Posting{}
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

	c.OnHTML("[data-job-category]", func(e *colly.HTMLElement) {
		out.Category = strings.ToLower(strings.TrimSpace(e.Attr("data-job-category")))
	})

	c.OnHTML("[data-job-description]", func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.Text)
	})

	c.OnHTML("[data-skill]", func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.Attr("data-skill"))
		if name == "" {
			return
		}
		importance, ok := job.ParseImportance(e.Attr("data-importance"))
		if !ok {
			importance = job.Importance(strings.ToLower(strings.TrimSpace(e.Attr("data-importance"))))
		}
		out.RequiredSkills = append(out.RequiredSkills, job.RequiredSkill{
			Name:       name,
			Importance: importance,
		})
	})

	c.OnHTML("[data-job-meta]", func(e *colly.HTMLElement) {
		out.Salary.Min = parseFloatOr(e.Attr("data-salary-min"), 0)
		out.Salary.Max = parseFloatOr(e.Attr("data-salary-max"), 0)
		out.Salary.Currency = pickNonEmpty(e.Attr("data-currency"), "USD")
		out.Metrics.OpenPositions = parseIntOr(e.Attr("data-open-positions"), 1)
		out.Metrics.GrowthRate = parseFloatOr(e.Attr("data-growth-rate"), 0)
		out.Metrics.CompetitionScore = parseFloatOr(e.Attr("data-competition"), 0)
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return job.Posting{}, ctx.Err()
	}
	if err := c.Visit(postingURL); err != nil {
		return job.Posting{}, err
	}
	c.Wait()
	if reqErr != nil {
		return job.Posting{}, reqErr
	}

	if out.Title == "" {
		return job.Posting{}, fmt.Errorf("posting %s: empty title", postingURL)
	}
	out.Metrics.LastUpdated = time.Now().UTC()
	return out, nil
}

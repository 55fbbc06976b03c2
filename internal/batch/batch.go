// Package batch walks a company roster and saves every matching filing as
// PDF. Processing is strictly sequential: one company at a time, one filing
// at a time, with a fixed pause after every render, so the registry sees a
// single low-pressure consumer.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tenkit/tenkit/client"
	"github.com/tenkit/tenkit/internal/filings"
	"github.com/tenkit/tenkit/internal/report"
	"github.com/tenkit/tenkit/internal/roster"
)

// Renderer turns a filing document URL into a PDF byte stream.
type Renderer interface {
	Render(ctx context.Context, url string) ([]byte, error)
}

// Storage persists rendered filings.
type Storage interface {
	Exists(path, fname string) bool
	Save(path, fname string, r io.Reader) error
}

func New(edgar *client.Client, renderer Renderer, storage Storage) *Batch {
	return &Batch{
		edgar:    edgar,
		renderer: renderer,
		storage:  storage,
		logger:   slog.Default(),
	}
}

type Batch struct {
	edgar    *client.Client
	renderer Renderer
	storage  Storage

	delay time.Duration
	force bool

	logger *slog.Logger
}

// WithDelay sets the pause after every render operation.
func (self *Batch) WithDelay(d time.Duration) *Batch {
	self.delay = d
	return self
}

// WithForce re-renders filings already saved on disk.
func (self *Batch) WithForce(force bool) *Batch {
	self.force = force
	return self
}

func (self *Batch) WithLogger(logger *slog.Logger) *Batch {
	self.logger = logger
	return self
}

func (self *Batch) log(ctx context.Context) *slog.Logger {
	return ContextLogger(ctx, self.logger)
}

// Run processes companies in roster order. A failed lookup, render or save
// is recorded in run and the batch continues with the next item; only a
// canceled context stops the batch early.
func (self *Batch) Run(ctx context.Context, companies []roster.Company,
	filter *filings.Filter, run *report.Run,
) error {
	for i := range companies {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch interrupted: %w", err)
		}

		company := &companies[i]
		l := self.logger.With(
			slog.String("progress",
				fmt.Sprintf("%v/%v", i+1, len(companies))),
			slog.Uint64("CIK", uint64(company.CIK)),
			slog.String("company", company.Name))

		err := self.processCompany(ContextWithLogger(ctx, l), company,
			filter, run.AddCompany(uint32(company.CIK), company.Name))
		if err != nil {
			return fmt.Errorf("batch interrupted: %w", err)
		}
	}
	return nil
}

func (self *Batch) processCompany(ctx context.Context,
	company *roster.Company, filter *filings.Filter,
	result *report.CompanyResult,
) error {
	self.log(ctx).Info("process company")
	companyFilings, err := self.edgar.Submissions(ctx, company.CIK)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		self.log(ctx).Warn("skip company", slog.Any("error", err))
		return nil
	}
	result.LookupOK = true

	builder := filings.NewBuilder(company.CIK, company.Name)
	return filter.Iterate(companyFilings.Recent(),
		func(entry *filings.Entry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			self.processEntry(ctx, builder, entry, result)
			return nil
		})
}

func (self *Batch) processEntry(ctx context.Context,
	builder *filings.Builder, entry *filings.Entry,
	result *report.CompanyResult,
) {
	task, err := builder.Task(entry)
	if err != nil {
		self.log(ctx).Warn("failed build filing task",
			slog.String("accession", entry.AccessionNumber),
			slog.Any("error", err))
		result.Failed++
		return
	}

	l := self.log(ctx).With(slog.String("form", task.Form),
		slog.String("filed", task.Filed.Format(time.DateOnly)))
	if !self.force && self.storage.Exists(task.Path, task.Filename) {
		l.Info("already saved, skip")
		result.Skipped++
		return
	}

	self.renderTask(ContextWithLogger(ctx, l), task, result)
	self.sleep(ctx)
}

func (self *Batch) renderTask(ctx context.Context, task *filings.Task,
	result *report.CompanyResult,
) {
	b, err := self.renderer.Render(ctx, task.URL)
	if err != nil {
		self.log(ctx).Warn("failed render filing",
			slog.String("url", task.URL), slog.Any("error", err))
		result.Failed++
		return
	}

	err = self.storage.Save(task.Path, task.Filename, bytes.NewReader(b))
	if err != nil {
		self.log(ctx).Warn("failed save filing", slog.Any("error", err))
		result.Failed++
		return
	}

	self.log(ctx).Info("saved filing",
		slog.String("file", task.Path+"/"+task.Filename))
	result.Downloaded++
}

func (self *Batch) sleep(ctx context.Context) {
	if self.delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(self.delay):
	}
}

package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/magpielabs/magpie/api/proto"
	"github.com/magpielabs/magpie/pkg/catalog"
	"github.com/magpielabs/magpie/pkg/config"
	"github.com/magpielabs/magpie/pkg/log"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Entry is one item pulled from a source feed.
type Entry struct {
	ID        string
	Title     string
	Link      string
	Published string
	Summary   string
}

// Fetcher pulls the current entries of one source URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}

// resultPayload is the JSON document submitted per new entry.
type resultPayload struct {
	TaskID    string `json:"task_id"`
	Source    string `json:"source"`
	EntryID   string `json:"entry_id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`
}

// Collector is one worker process: heartbeat loop, assignment stream,
// and a goroutine per task collecting its sources until the window
// closes.
type Collector struct {
	cfg     *config.Config
	name    string
	secret  string
	catalog *catalog.Catalog

	conn  *grpc.ClientConn
	stub  proto.CollectorDispatcherClient
	token string

	fetchers map[string]Fetcher

	mu      sync.Mutex
	seen    map[string]map[string]struct{} // taskID|url -> entry ids
	running map[string]struct{}

	logger zerolog.Logger
}

// New dials the dispatcher's collector port and prepares a collector.
// The source catalog is shared with the dispatcher so assignment
// source IDs resolve to URLs.
func New(cfg *config.Config, name, secret string) (*Collector, error) {
	conn, err := grpc.NewClient(cfg.CollectorAddr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to dispatcher: %w", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &Collector{
		cfg:     cfg,
		name:    name,
		secret:  secret,
		catalog: catalog.Load(cfg.SourcesPath),
		conn:    conn,
		stub:    proto.NewCollectorDispatcherClient(conn),
		fetchers: map[string]Fetcher{
			"rss":   NewRSSFetcher(httpClient),
			"gdacs": NewGDACSFetcher(httpClient),
		},
		seen:    make(map[string]map[string]struct{}),
		running: make(map[string]struct{}),
		logger:  log.WithCollector(name),
	}, nil
}

// Close tears down the gRPC connection.
func (c *Collector) Close() error {
	return c.conn.Close()
}

// Run registers (idempotently), logs in, and serves until ctx is
// cancelled.
func (c *Collector) Run(ctx context.Context) error {
	if err := c.authenticate(ctx); err != nil {
		return err
	}

	go c.heartbeatLoop(ctx)
	return c.streamLoop(ctx)
}

// authenticate registers the collector if needed and logs in. A name
// already registered is fine; login decides whether the secret is
// right.
func (c *Collector) authenticate(ctx context.Context) error {
	reg, err := c.stub.RegisterCollector(ctx, &proto.CollectorRegisterRequest{
		Name:   c.name,
		Secret: c.secret,
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	if !reg.Success {
		c.logger.Debug().Str("message", reg.Message).Msg("registration skipped")
	}

	return c.login(ctx)
}

func (c *Collector) login(ctx context.Context) error {
	resp, err := c.stub.LoginCollector(ctx, &proto.CollectorLoginRequest{
		Name:   c.name,
		Secret: c.secret,
	})
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("login rejected: %s", resp.Message)
	}
	c.token = resp.Token
	c.logger.Info().Msg("logged in")
	return nil
}

func (c *Collector) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resp, err := c.stub.Heartbeat(ctx, &proto.HeartbeatRequest{
				Token:     c.token,
				Timestamp: timestamppb.Now(),
			})
			if err != nil {
				c.logger.Error().Err(err).Msg("heartbeat failed")
				continue
			}
			if !resp.Success {
				// Token superseded or collector failed over; re-login.
				if err := c.login(ctx); err != nil {
					c.logger.Error().Err(err).Msg("re-login failed")
				}
			}
		}
	}
}

// streamLoop keeps an assignment stream open, re-dialing after errors
// until ctx is cancelled.
func (c *Collector) streamLoop(ctx context.Context) error {
	for {
		if err := c.consumeStream(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn().Err(err).Msg("assignment stream closed, retrying")
			if status.Code(err) == codes.Unauthenticated {
				if err := c.login(ctx); err != nil {
					c.logger.Error().Err(err).Msg("re-login failed")
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.HeartbeatInterval):
		}
	}
}

func (c *Collector) consumeStream(ctx context.Context) error {
	stream, err := c.stub.StreamTasks(ctx, &proto.TaskStreamRequest{Token: c.token})
	if err != nil {
		return err
	}

	for {
		assignment, err := stream.Recv()
		if err != nil {
			return err
		}
		c.logger.Info().
			Str("task_id", assignment.TaskId).
			Strs("sources", assignment.Sources).
			Msg("assignment received")

		c.mu.Lock()
		_, active := c.running[assignment.TaskId]
		if !active {
			c.running[assignment.TaskId] = struct{}{}
		}
		c.mu.Unlock()
		if active {
			continue
		}
		go c.handleTask(ctx, assignment)
	}
}

// handleTask waits for the task window to open, then polls every
// source until the window closes.
func (c *Collector) handleTask(ctx context.Context, a *proto.TaskAssignment) {
	defer func() {
		c.mu.Lock()
		delete(c.running, a.TaskId)
		c.mu.Unlock()
	}()

	logger := c.logger.With().Str("task_id", a.TaskId).Logger()

	var start, end time.Time
	if a.StartTime != nil {
		start = a.StartTime.AsTime()
	}
	if a.EndTime != nil {
		end = a.EndTime.AsTime()
	}

	if wait := time.Until(start); wait > 0 {
		logger.Info().Dur("wait", wait).Msg("waiting for task window")
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}

	logger.Info().Time("until", end).Msg("collecting")
	for time.Now().Before(end) {
		for _, id := range a.Sources {
			c.collectSource(ctx, a.TaskId, id)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.cfg.RSSRefresh):
		}
	}
	logger.Info().Msg("task window closed")
}

// collectSource fetches one source and submits every unseen entry. An
// entry counts as seen only once the dispatcher acknowledged it, so a
// failed submit is retried on the next pass.
func (c *Collector) collectSource(ctx context.Context, taskID, sourceID string) {
	url, kind := c.resolveSource(sourceID)

	fetcher, ok := c.fetchers[kind]
	if !ok {
		fetcher = c.fetchers["rss"]
	}

	entries, err := fetcher.Fetch(ctx, url)
	if err != nil {
		c.logger.Warn().Str("source", url).Err(err).Msg("fetch failed")
		return
	}

	key := taskID + "|" + url
	c.mu.Lock()
	seen, ok := c.seen[key]
	if !ok {
		seen = make(map[string]struct{})
		c.seen[key] = seen
	}
	c.mu.Unlock()

	for _, entry := range entries {
		c.mu.Lock()
		_, dup := seen[entry.ID]
		c.mu.Unlock()
		if dup {
			continue
		}

		payload, err := json.Marshal(resultPayload{
			TaskID:    taskID,
			Source:    url,
			EntryID:   entry.ID,
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
			Summary:   entry.Summary,
		})
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to encode result")
			continue
		}

		ack, err := c.stub.SubmitTaskResult(ctx, &proto.CollectorTaskResult{
			Token:     c.token,
			TaskId:    taskID,
			Timestamp: timestamppb.Now(),
			Result:    payload,
		})
		if err != nil {
			c.logger.Error().Str("entry_id", entry.ID).Err(err).Msg("failed to submit result")
			continue
		}
		if !ack.Success {
			c.logger.Warn().Str("entry_id", entry.ID).Str("message", ack.Message).Msg("result rejected")
			continue
		}

		c.mu.Lock()
		seen[entry.ID] = struct{}{}
		c.mu.Unlock()
		c.logger.Debug().Str("entry_id", entry.ID).Msg("result submitted")
	}
}

// resolveSource maps an assignment source ID through the catalog. IDs
// not in the catalog are treated as raw RSS URLs.
func (c *Collector) resolveSource(id string) (url, kind string) {
	if src, ok := c.catalog.Lookup(id); ok {
		kind = src.Type
		if kind == "" {
			kind = "rss"
		}
		return src.URL, kind
	}
	return id, "rss"
}

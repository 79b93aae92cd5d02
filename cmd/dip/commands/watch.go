package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/bundestag-io/dip-client/internal/constants"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var (
		interval time.Duration
		natsURL  string
		subject  string
	)

	cmd := &cobra.Command{
		Use:   "watch RESOURCE",
		Short: "Watch a resource for new documents",
		Long: "Poll a resource type for documents published today and emit each new one.\n\n" +
			"Without --nats-url, new documents are printed to stdout as JSON lines.\n" +
			"With --nats-url, new documents are published to a NATS subject.\n\n" +
			"Valid resource types: " + strings.Join(resourceTypeNames(), ", "),
		Example: `  dip watch drucksache
  dip watch vorgang --interval 1m --nats-url nats://localhost:4222 --subject dip.vorgaenge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatchCommand(args[0], interval, natsURL, subject)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", constants.DefaultWatchInterval, "poll interval")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL to publish new documents to")
	cmd.Flags().StringVar(&subject, "subject", constants.DefaultWatchSubject, "NATS subject for published documents")

	return cmd
}

// documentPublisher emits documents discovered by the watch loop.
type documentPublisher interface {
	Publish(resource string, document *dip.Document) error
	Close()
}

// stdoutPublisher writes one JSON object per document to stdout.
type stdoutPublisher struct {
	encoder *json.Encoder
}

func newStdoutPublisher() *stdoutPublisher {
	return &stdoutPublisher{encoder: json.NewEncoder(os.Stdout)}
}

func (p *stdoutPublisher) Publish(resource string, document *dip.Document) error {
	return p.encoder.Encode(singleDocumentFields(document))
}

func (p *stdoutPublisher) Close() {}

// natsPublisher publishes each document to subject.<resource>.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
}

func newNATSPublisher(url, subject string) (*natsPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("dip-watch"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &natsPublisher{conn: conn, subject: subject}, nil
}

func (p *natsPublisher) Publish(resource string, document *dip.Document) error {
	data, err := json.Marshal(singleDocumentFields(document))
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	err = p.conn.Publish(p.subject+"."+resource, data)
	if err != nil {
		return fmt.Errorf("publishing document: %w", err)
	}

	return nil
}

func (p *natsPublisher) Close() {
	_ = p.conn.Drain()
}

func runWatchCommand(resource string, interval time.Duration, natsURL, subject string) error {
	err := dip.ValidateResourceType(dip.ResourceType(resource))
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	var publisher documentPublisher
	if natsURL != "" {
		publisher, err = newNATSPublisher(natsURL, subject)
		if err != nil {
			return err
		}
	} else {
		publisher = newStdoutPublisher()
	}
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := &documentWatcher{
		client:    client,
		resource:  dip.ResourceType(resource),
		publisher: publisher,
		seen:      make(map[string]struct{}),
	}

	// First poll happens immediately, then every interval.
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := watcher.poll(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "poll failed:", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// documentWatcher polls for documents dated today and publishes each
// document it has not seen before.
type documentWatcher struct {
	client    dip.Client
	resource  dip.ResourceType
	publisher documentPublisher
	seen      map[string]struct{}
}

func (w *documentWatcher) poll(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")

	params := dip.NewQueryParams().WithDateStart(today)

	iterator, err := w.client.Search(ctx, w.resource, params)
	if err != nil {
		return err
	}

	return iterator.ForEach(func(document dip.Document) error {
		id := document.ID()
		if id == "" {
			return nil
		}

		if _, ok := w.seen[id]; ok {
			return nil
		}

		w.seen[id] = struct{}{}

		return w.publisher.Publish(string(w.resource), &document)
	})
}

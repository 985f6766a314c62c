// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication with the talk API and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with optional retry logic
// - talk: DiscussionSource backed by the talk API discussions listing
// - logger/logrus: Structured logger on logrus with optional file rotation
//
// # HTTP Client
//
// Retries are off unless a larger attempt count is configured:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithMaxAttempts(1))
//	resp, err := client.Get(ctx, "https://talk.example.org/discussions")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Talk Client
//
//	source := talk.NewClient(client, "https://talk.example.org")
//	page, err := source.FetchDiscussions(ctx, "BCE00012ab", 1, 100)
//
// # Logger
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "board_id": "BCE00012ab",
//	})
package infrastructure

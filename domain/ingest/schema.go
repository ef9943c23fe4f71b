package ingest

// FeedJobSchema is the queue message describing one feed ingestion job.
type FeedJobSchema struct {
	TaskID   uint   `json:"task_id"`
	Source   string `json:"source"`
	Query    string `json:"query"`
	MaxItems int    `json:"max_items"`
	Email    string `json:"email"`
}

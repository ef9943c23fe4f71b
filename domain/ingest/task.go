package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/utils"

	"github.com/streadway/amqp"
)

/*
CreateFeedTask records a new ingestion task and queues the job. The returned
ID can be polled through the task listing API while the worker runs.
*/
func CreateFeedTask(source, query string, maxItems int, email string) (uint, error) {
	db := globalConfig.GetMetadataDatabase()

	task := metadata.IngestTask{
		Name:   fmt.Sprintf("%s: %s", source, query),
		Source: source,
		Query:  query,
		Email:  email,
		Status: metadata.TaskStatusDoing,
	}
	if err := db.Create(&task).Error; err != nil {
		return 0, utils.WrapError(err, "create ingest task fail")
	}

	err := globalMQManager.SendObjectByJSON(QueueIngestFeed, FeedJobSchema{
		TaskID:   task.ID,
		Source:   source,
		Query:    query,
		MaxItems: maxItems,
		Email:    email,
	})
	if err != nil {
		failTask(task.ID, err)
		return 0, utils.WrapError(err, "queue ingest job fail")
	}

	return task.ID, nil
}

func receiveFeedJob(msg *amqp.Delivery) error {
	var job FeedJobSchema
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return utils.WrapErrorf(err, "json unmarshal fail with [%#v]", string(msg.Body))
	}

	DoFeedIngest(&job)
	return nil
}

/*
DoFeedIngest runs one ingestion job end to end: fetch the feed items, extract
triples from each, keep the provenance rows, merge the triples into the graph
database and notify by mail. A failing job marks the task FAIL with the
reason; it never crashes the listener.
*/
func DoFeedIngest(job *FeedJobSchema) {
	logger := logging.Default()

	triples, err := ingestFeed(job)
	if err != nil {
		logger.WithError(err).Errorf("ingest task[%d] fail: %s", job.TaskID, err.Error())
		failTask(job.TaskID, err)
		return
	}

	finishTask(job.TaskID, uint(len(triples)))
	logger.Infof("ingest task[%d] done: %d triples", job.TaskID, len(triples))

	for i := 0; i < 3; i++ {
		err := sendIngestResultEmail(job, triples)
		if err == nil {
			break
		}

		logger.WithError(err).Errorf("send ingest result fail: %s", err.Error())
	}
}

func ingestFeed(job *FeedJobSchema) ([]extract.Triple, error) {
	items, err := fetchFeedItems(job)
	if err != nil {
		return nil, utils.WrapError(err, "fetch feed fail")
	}

	collected := make([]extract.Triple, 0)
	for _, item := range items {
		triples, err := ingestItem(job.TaskID, item)
		if err != nil {
			return nil, utils.WrapError(err, "ingest feed item fail")
		}
		collected = append(collected, triples...)
	}

	count, err := neograph.StoreTriples(collected, refdata.Get())
	if err != nil {
		return nil, utils.WrapError(err, "store triples to graph fail")
	}

	logging.Default().Infof("ingest task[%d]: stored %d triples into graph", job.TaskID, count)
	return collected, nil
}

func fetchFeedItems(job *FeedJobSchema) ([]string, error) {
	maxItems := job.MaxItems
	if maxItems <= 0 {
		maxItems = 5
	}

	switch job.Source {
	case metadata.FeedSourceWikipedia:
		return defaultFetcher.FetchWikipedia(job.Query, maxItems)
	case metadata.FeedSourceNews:
		return defaultFetcher.FetchNews(job.Query, maxItems)
	case metadata.FeedSourceArxiv:
		return defaultFetcher.FetchArxiv(job.Query, maxItems)
	default:
		return nil, fmt.Errorf("unknown feed source [%s]", job.Source)
	}
}

// long feed items are cut into units so the annotation engine sees at most a
// few sentences per call
func splitFeedContent(content string) []string {
	splitter := utils.NewSentenceSplitter([]rune{'.', '!', '?', ';', ','}, 32, 256)
	return splitter.SplitToSentences(content)
}

func ingestItem(taskID uint, content string) ([]extract.Triple, error) {
	db := globalConfig.GetMetadataDatabase()

	text := metadata.Text{Content: content}
	if err := db.Create(&text).Error; err != nil {
		return nil, utils.WrapError(err, "save text metadata fail")
	}

	triples, err := extract.FromBatch(context.Background(), splitFeedContent(content))
	if err != nil {
		return nil, utils.WrapErrorf(err, "extract from text[%d] fail", text.ID)
	}

	records := make([]metadata.TripleRecord, 0, len(triples))
	for _, triple := range triples {
		records = append(records, metadata.TripleRecord{
			Subject:  triple.Subject,
			Relation: triple.Relation,
			Object:   triple.Object,
			TextID:   utils.UintToPtr(text.ID),
			TaskID:   utils.UintToPtr(taskID),
		})
	}

	if len(records) > 0 {
		if err := db.CreateInBatches(&records, 128).Error; err != nil {
			return nil, utils.WrapError(err, "save triple records fail")
		}
	}

	return triples, nil
}

func finishTask(taskID uint, tripleCount uint) {
	db := globalConfig.GetMetadataDatabase()

	err := db.Model(&metadata.IngestTask{}).Where("id = ?", taskID).Updates(map[string]interface{}{
		"status":       metadata.TaskStatusDone,
		"triple_count": tripleCount,
	}).Error
	if err != nil {
		logging.Default().WithError(err).Errorf("mark task[%d] done fail: %s", taskID, err.Error())
	}
}

func failTask(taskID uint, cause error) {
	db := globalConfig.GetMetadataDatabase()

	failure := metadata.SchemaTaskFailure{Reason: cause.Error()}

	err := db.Model(&metadata.IngestTask{}).Where("id = ?", taskID).Updates(map[string]interface{}{
		"status":     metadata.TaskStatusFail,
		"extra_type": sql.NullString{String: "failure", Valid: true},
		"extra_json": sql.NullString{String: failure.ToJSON(), Valid: true},
	}).Error
	if err != nil {
		logging.Default().WithError(err).Errorf("mark task[%d] fail fail: %s", taskID, err.Error())
	}
}

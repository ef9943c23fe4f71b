package ingest

import (
	"fmt"
	"strings"

	"knowmap-backend/domain/extract"
	"knowmap-backend/logging"
	"knowmap-backend/utils"
	emailutils "knowmap-backend/utils/email"
)

const ingestEmailHTMLTemplate = `
<h1>Feed ingestion finished</h1>
<p>Task: %s</p>
<p>Triples extracted: %d</p>

<h2>Triple list</h2>
<p>%s</p>

<p></p>
<p>Visit the system for the full graph</p>
`

func sendIngestResultEmail(job *FeedJobSchema, triples []extract.Triple) error {
	if len(job.Email) == 0 {
		logging.Default().Warnf("task[%d] has no notifying email", job.TaskID)
		return nil
	}

	err := emailutils.SendHtml(job.Email, "[KnowMap] feed ingestion finished",
		renderIngestResultPage(job, triples))
	if err != nil {
		return utils.WrapErrorf(err, "send email to [%s] fail", job.Email)
	}

	return nil
}

func renderIngestResultPage(job *FeedJobSchema, triples []extract.Triple) string {
	lines := make([]string, 0, len(triples))
	for _, triple := range triples {
		lines = append(lines, fmt.Sprintf("(%s)-[%s]->(%s)", triple.Subject, triple.Relation, triple.Object))
	}

	taskName := fmt.Sprintf("%s: %s", job.Source, job.Query)
	return fmt.Sprintf(ingestEmailHTMLTemplate, taskName, len(triples), strings.Join(lines, "<br/>"))
}

package metadata

import (
	"database/sql"

	"gorm.io/gorm"
)

/*
Extra holds extension or polymorphic information as JSON. It is embedded into
database objects the way gorm.Model is, never used as a table of its own.

	ExtraType marks the JSON schema;
	ExtraJSON is the JSON body;
*/
type Extra struct {
	ExtraType sql.NullString `gorm:"type:varchar(16)"`
	ExtraJSON sql.NullString `gorm:"type:text"`
}

//////////////////////////////// source bookkeeping ////////////////////////////////////

/*
File records the metadata of an uploaded file.

	Extra reserved for extension;
	Type the file type (extension);
	URL the internal path inside the file store;
	Name the original name, used when the file is downloaded again;
	Hash the sha256 digest of the content, used to detect duplicates;

	ProducedText the text units produced from this file;
*/
type File struct {
	gorm.Model
	Extra
	Type string `gorm:"type:varchar(8) not null"`
	URL  string `gorm:"type:varchar(128)"`
	Name string `gorm:"type:varchar(64)"`
	Hash []byte `gorm:"type:binary(32);index:idx_files_hash"`

	ProducedText []Text `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

/*
Text records one text unit fed to extraction.

	Extra reserved for extension;
	Content the unit content;

	FileID the file this unit came from, null for feed or raw-text input;
	ProducedTriples the triples extracted from this unit;
*/
type Text struct {
	gorm.Model
	Extra
	Content string `gorm:"type:text not null"`

	FileID          *uint
	ProducedTriples []TripleRecord `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

//////////////////////////////// extraction results ////////////////////////////////////

/*
TripleRecord is the provenance row of one stored triple: what was extracted
and where it came from. The graph database holds the deduplicated graph; this
table keeps the full history.

	Subject, Relation, Object the triple fields as extracted;

	TextID the text unit the triple was extracted from;
	TaskID the ingest task that produced it, null for direct API calls;
*/
type TripleRecord struct {
	gorm.Model
	Extra
	Subject  string `gorm:"type:varchar(128) not null;index:idx_triples_subject"`
	Relation string `gorm:"type:varchar(64) not null"`
	Object   string `gorm:"type:varchar(128) not null;index:idx_triples_object"`

	TextID *uint
	TaskID *uint
}

/*
IngestTask describes one asynchronous ingestion run: fetch content from a
feed, extract triples, store them and notify by mail.

	Name a human-readable task name, usually the query;
	Source the feed kind, see the FeedSource constants;
	Query the search term sent to the feed;
	Email the address notified when the task finishes, may be empty;
	Status DOING=1, DONE=2, FAIL=3;
	TripleCount the number of triples stored when the task is done;
*/
type IngestTask struct {
	gorm.Model
	Extra

	Name        string `gorm:"type:varchar(64) not null"`
	Source      string `gorm:"type:varchar(16) not null"`
	Query       string `gorm:"type:varchar(128)"`
	Email       string `gorm:"type:varchar(64)"`
	Status      uint   `gorm:"comment:DOING=1,DONE=2,FAIL=3"`
	TripleCount uint

	ProducedTriples []TripleRecord `gorm:"foreignKey:TaskID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

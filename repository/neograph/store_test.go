package neograph

import (
	"errors"
	"strings"
	"testing"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/stretchr/testify/assert"
)

// fakeTx records every statement and can be told to fail at the n-th Run or
// at Commit, so the rollback behavior is testable without a live database.
type fakeTx struct {
	runs       []string
	params     []map[string]interface{}
	failAtRun  int // 1-based, 0 means never
	failCommit bool

	committed  bool
	rolledBack bool
}

var errFakeTx = errors.New("fake transaction failure")

func (f *fakeTx) Run(cypher string, params map[string]interface{}) (neo4j.Result, error) {
	f.runs = append(f.runs, cypher)
	f.params = append(f.params, params)

	if f.failAtRun > 0 && len(f.runs) >= f.failAtRun {
		return nil, errFakeTx
	}
	return nil, nil
}

func (f *fakeTx) Commit() error {
	if f.failCommit {
		return errFakeTx
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

func storeLookups(t *testing.T) *refdata.Lookups {
	t.Helper()

	lookups, err := refdata.BuildLookups(strings.NewReader(
		"source,target,relation,source_type,target_type\n" +
			"Drought,yield,reduces,Climate Event,Crop Metric\n"))
	assert.NoError(t, err)
	return lookups
}

func TestStoreTriplesCommits(t *testing.T) {
	tx := &fakeTx{}

	count, err := storeTriples(tx, []extract.Triple{
		{Subject: "Drought", Relation: "reduce", Object: "yield"},
		{Subject: "Farmers", Relation: "rely on", Object: "irrigation"},
	}, storeLookups(t))

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Len(t, tx.runs, 2)

	assert.Contains(t, tx.runs[0], "MERGE (s:Entity {name: $subject})")
	assert.Contains(t, tx.runs[0], "[:`REDUCE`]")
	assert.Contains(t, tx.runs[1], "[:`RELY_ON`]")

	assert.Equal(t, "Drought", tx.params[0]["subject"])
	assert.Equal(t, "Climate Event", tx.params[0]["subjectType"])
	assert.Equal(t, "yield", tx.params[0]["object"])
	assert.Equal(t, "Crop Metric", tx.params[0]["objectType"])
	assert.Equal(t, refdata.DefaultEntityType, tx.params[1]["subjectType"])
}

func TestStoreTriplesRollsBackOnRunFailure(t *testing.T) {
	tx := &fakeTx{failAtRun: 2}

	count, err := storeTriples(tx, []extract.Triple{
		{Subject: "a", Relation: "r", Object: "b"},
		{Subject: "c", Relation: "r", Object: "d"},
		{Subject: "e", Relation: "r", Object: "f"},
	}, storeLookups(t))

	assert.ErrorIs(t, err, errFakeTx)
	assert.Equal(t, 0, count)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	// the failing statement stops the batch
	assert.Len(t, tx.runs, 2)
}

func TestStoreTriplesRollsBackOnCommitFailure(t *testing.T) {
	tx := &fakeTx{failCommit: true}

	count, err := storeTriples(tx, []extract.Triple{
		{Subject: "a", Relation: "r", Object: "b"},
	}, storeLookups(t))

	assert.ErrorIs(t, err, errFakeTx)
	assert.Equal(t, 0, count)
	assert.True(t, tx.rolledBack)
}

func TestRelationType(t *testing.T) {
	assert.Equal(t, "REDUCE", relationType("reduce"))
	assert.Equal(t, "RELY_ON", relationType("rely on"))
	assert.Equal(t, "AFFECTED_BY", relationType("affected by"))
	assert.NotContains(t, relationType("weird`type"), "`")
}

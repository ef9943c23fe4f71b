package neograph

import (
	"fmt"
	"strings"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/utils"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

/*
writeTx is the slice of neo4j.Transaction the store path needs. Tests inject a
fake implementation to exercise the rollback behavior without a live database.
*/
type writeTx interface {
	Run(cypher string, params map[string]interface{}) (neo4j.Result, error)
	Commit() error
	Rollback() error
}

/*
StoreTriples merges the triples into the graph database inside one
transaction. Nodes carry the Entity label and are merged by name; the node
type comes from the entity dictionary. Each triple becomes a directed
relationship typed after its relation. Any failure rolls the whole batch back
and reports zero stored triples.
*/
func StoreTriples(triples []extract.Triple, lookups *refdata.Lookups) (int, error) {
	if len(triples) == 0 {
		return 0, nil
	}

	session := writeSession()
	defer session.Close()

	tx, err := session.BeginTransaction()
	if err != nil {
		return 0, utils.WrapError(err, "begin transaction fail")
	}

	return storeTriples(tx, triples, lookups)
}

func storeTriples(tx writeTx, triples []extract.Triple, lookups *refdata.Lookups) (int, error) {
	if lookups == nil {
		lookups = refdata.Get()
	}

	for _, triple := range triples {
		if err := mergeTriple(tx, &triple, lookups); err != nil {
			_ = tx.Rollback()
			return 0, utils.WrapErrorf(err, "merge triple <%s, %s, %s> fail",
				triple.Subject, triple.Relation, triple.Object)
		}
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return 0, utils.WrapError(err, "commit fail")
	}

	return len(triples), nil
}

func mergeTriple(tx writeTx, triple *extract.Triple, lookups *refdata.Lookups) error {
	// relationship types cannot be passed as parameters, so the sanitized
	// type is formatted into the statement and backtick-quoted
	cypher := fmt.Sprintf(
		"MERGE (s:Entity {name: $subject}) SET s.type = $subjectType "+
			"MERGE (o:Entity {name: $object}) SET o.type = $objectType "+
			"MERGE (s)-[:`%s`]->(o)",
		relationType(triple.Relation))

	_, err := tx.Run(cypher, map[string]interface{}{
		"subject":     triple.Subject,
		"subjectType": lookups.EntityTypeOrDefault(triple.Subject),
		"object":      triple.Object,
		"objectType":  lookups.EntityTypeOrDefault(triple.Object),
	})

	return err
}

/*
relationType converts a relation lemma to a relationship type: uppercased,
spaces replaced by underscores, backticks stripped so the quoting cannot be
escaped.
*/
func relationType(relation string) string {
	typ := strings.ToUpper(strings.ReplaceAll(relation, " ", "_"))
	return strings.ReplaceAll(typ, "`", "")
}

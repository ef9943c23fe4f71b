package refdata

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"knowmap-backend/utils"
)

// DefaultEntityType is used for every name the reference dataset does not
// cover.
const DefaultEntityType = "Entity"

var (
	ErrMissingColumn = errors.New("reference dataset misses a required column")
)

/*
Lookups is the entity dictionary primed from the reference dataset: a mapping
from entity surface form (case-sensitive) to its type label, plus the set of
known relation lemmas (lowercased relation values, not true-lemmatized).

A Lookups value is immutable after build and safe to share across goroutines.
Reloading means building a fresh value and swapping the package pointer, never
mutating entries in place.
*/
type Lookups struct {
	entityTypes    map[string]string
	relationLemmas map[string]struct{}
}

func emptyLookups() *Lookups {
	return &Lookups{
		entityTypes:    map[string]string{},
		relationLemmas: map[string]struct{}{},
	}
}

// TypeOf reports the stored type of name.
func (l *Lookups) TypeOf(name string) (string, bool) {
	typ, ok := l.entityTypes[name]
	return typ, ok
}

// EntityTypeOrDefault resolves name to its stored type, or DefaultEntityType
// when the dictionary has no entry (including the empty dictionary).
func (l *Lookups) EntityTypeOrDefault(name string) string {
	if typ, ok := l.entityTypes[name]; ok {
		return typ
	}
	return DefaultEntityType
}

// HasRelationLemma reports whether lemma was seen in the reference dataset.
// The set is advisory: extraction does not filter unseen lemmas.
func (l *Lookups) HasRelationLemma(lemma string) bool {
	_, ok := l.relationLemmas[lemma]
	return ok
}

func (l *Lookups) EntityCount() int {
	return len(l.entityTypes)
}

func (l *Lookups) RelationLemmaCount() int {
	return len(l.relationLemmas)
}

// EachEntity visits every (name, type) pair; iteration order is unspecified.
func (l *Lookups) EachEntity(visit func(name, typ string)) {
	for name, typ := range l.entityTypes {
		visit(name, typ)
	}
}

/*
BuildLookups reads the reference dataset (CSV with a header row containing
source, target, relation, source_type and target_type columns) and builds the
lookups:

  - every row with non-empty source and source_type adds/overwrites
    source -> source_type; same for target/target_type;
  - every non-empty relation value is lowercased and added to the lemma set.

Rows with missing type cells contribute no type entry but are otherwise fine.
*/
func BuildLookups(r io.Reader) (*Lookups, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, utils.WrapError(err, "read header row fail")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, required := range []string{"source", "target", "relation"} {
		if _, ok := col[required]; !ok {
			return nil, utils.WrapErrorf(ErrMissingColumn, "column %#v not in header", required)
		}
	}

	cell := func(row []string, name string) string {
		index, ok := col[name]
		if !ok || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	ret := emptyLookups()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, utils.WrapError(err, "read data row fail")
		}

		if source, typ := cell(row, "source"), cell(row, "source_type"); source != "" && typ != "" {
			ret.entityTypes[source] = typ
		}
		if target, typ := cell(row, "target"), cell(row, "target_type"); target != "" && typ != "" {
			ret.entityTypes[target] = typ
		}
		if relation := cell(row, "relation"); relation != "" {
			ret.relationLemmas[strings.ToLower(relation)] = struct{}{}
		}
	}

	return ret, nil
}

/*
loadLookups reads the reference dataset at path. A missing or malformed file
is never fatal: the pipeline keeps running with empty lookups and every node
falls back to the default entity type.
*/
func loadLookups(setting *Setting) *Lookups {
	file, err := os.Open(setting.Path)
	if err != nil {
		setting.Logger.WithError(err).Warnf("open reference dataset [%s] fail, using empty lookups", setting.Path)
		return emptyLookups()
	}
	defer file.Close()

	lookups, err := BuildLookups(file)
	if err != nil {
		setting.Logger.WithError(err).Warnf("parse reference dataset [%s] fail, using empty lookups", setting.Path)
		return emptyLookups()
	}

	setting.Logger.Infof("reference dataset loaded: %d entities, %d relation lemmas",
		lookups.EntityCount(), lookups.RelationLemmaCount())

	return lookups
}

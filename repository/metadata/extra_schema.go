package metadata

import "encoding/json"

func toJSON(schema interface{}) string {
	bytes, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

// SchemaTaskFailure is stored in the Extra of a failed IngestTask.
type SchemaTaskFailure struct {
	Reason string `json:"reason"`
}

func (s *SchemaTaskFailure) ToJSON() string {
	return toJSON(s)
}

package queue

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aolabi/docpipe/internal/common"
)

// ExtractionTask is the message describing a pending extraction job. It
// carries enough to re-fetch the blob without consulting the metadata store.
type ExtractionTask struct {
	DocID        string `json:"doc_id"`
	OwnerID      string `json:"owner_id"`
	OriginalPath string `json:"original_path"`
}

// taskSchema guards the wire format; the queue is shared infrastructure and
// a foreign producer must not be able to crash a worker.
const taskSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"doc_id":        {"type": "string", "minLength": 1},
		"owner_id":      {"type": "string", "minLength": 1},
		"original_path": {"type": "string", "minLength": 1}
	},
	"required": ["doc_id", "owner_id", "original_path"]
}`

var compiledTaskSchema = jsonschema.MustCompileString("extraction_task.json", taskSchema)

// EncodeTask serializes a task for publishing.
func EncodeTask(task ExtractionTask) ([]byte, error) {
	return json.Marshal(task)
}

// DecodeTask parses and validates a task payload. Failures are
// ErrInvalidInput: the consumer logs and discards such deliveries.
func DecodeTask(data []byte) (ExtractionTask, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ExtractionTask{}, common.NewAppError("TASK_MALFORMED", "task payload is not valid JSON", common.ErrInvalidInput)
	}
	if err := compiledTaskSchema.Validate(raw); err != nil {
		return ExtractionTask{}, common.NewAppError("TASK_INVALID", err.Error(), common.ErrInvalidInput)
	}
	var task ExtractionTask
	if err := json.Unmarshal(data, &task); err != nil {
		return ExtractionTask{}, common.NewAppError("TASK_MALFORMED", "task payload does not match schema", common.ErrInvalidInput)
	}
	return task, nil
}

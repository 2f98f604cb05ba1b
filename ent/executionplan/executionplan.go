// Code generated by ent, DO NOT EDIT.

package executionplan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the executionplan type in the database.
	Label = "execution_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plan_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPartialOutput holds the string denoting the partial_output field in the database.
	FieldPartialOutput = "partial_output"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the executionplan in the database.
	Table = "execution_plans"
)

// Columns holds all SQL columns for executionplan fields.
var Columns = []string{
	FieldID,
	FieldChannel,
	FieldMode,
	FieldSteps,
	FieldStatus,
	FieldPartialOutput,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModePipeline   Mode = "pipeline"
	ModeFanout     Mode = "fanout"
	ModeCriticLoop Mode = "critic_loop"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModePipeline, ModeFanout, ModeCriticLoop:
		return nil
	default:
		return fmt.Errorf("executionplan: invalid enum value for mode field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("executionplan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExecutionPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPartialOutput orders the results by the partial_output field.
func ByPartialOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartialOutput, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "agent_session_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"active", "completed", "expired"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_channel_state",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[1], AgentSessionsColumns[3]},
			},
			{
				Name:    "agentsession_state_last_activity",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[3], AgentSessionsColumns[5]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_channel_ended_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// ExecutionPlansColumns holds the columns for the "execution_plans" table.
	ExecutionPlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"pipeline", "fanout", "critic_loop"}},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "partial_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ExecutionPlansTable holds the schema information for the "execution_plans" table.
	ExecutionPlansTable = &schema.Table{
		Name:       "execution_plans",
		Columns:    ExecutionPlansColumns,
		PrimaryKey: []*schema.Column{ExecutionPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionplan_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionPlansColumns[1], ExecutionPlansColumns[6]},
			},
		},
	}
	// MemoryRecordsColumns holds the columns for the "memory_records" table.
	MemoryRecordsColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"fact", "goal", "action_item", "summary", "completed_goal"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source_agent", Type: field.TypeString, Default: "general"},
		{Name: "visibility", Type: field.TypeEnum, Enums: []string{"private", "shared", "global"}, Default: "shared"},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MemoryRecordsTable holds the schema information for the "memory_records" table.
	MemoryRecordsTable = &schema.Table{
		Name:       "memory_records",
		Columns:    MemoryRecordsColumns,
		PrimaryKey: []*schema.Column{MemoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryrecord_type_source_agent",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[1], MemoryRecordsColumns[3]},
			},
			{
				Name:    "memoryrecord_type_completed_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[1], MemoryRecordsColumns[6]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "channel", Type: field.TypeString},
		{Name: "summarized", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "delivery_status", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[7]},
			},
			{
				Name:    "message_summarized_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[7]},
			},
		},
	}
	// SyncQueueItemsColumns holds the columns for the "sync_queue_items" table.
	SyncQueueItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"state_change", "add_comment", "create_issue", "update_issue"}},
		{Name: "target_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "next_retry_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SyncQueueItemsTable holds the schema information for the "sync_queue_items" table.
	SyncQueueItemsTable = &schema.Table{
		Name:       "sync_queue_items",
		Columns:    SyncQueueItemsColumns,
		PrimaryKey: []*schema.Column{SyncQueueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncqueueitem_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{SyncQueueItemsColumns[4], SyncQueueItemsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		ConversationsTable,
		EventsTable,
		ExecutionPlansTable,
		MemoryRecordsTable,
		MessagesTable,
		SyncQueueItemsTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}

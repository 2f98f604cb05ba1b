// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/elliebot/relay/ent/agentsession"
	"github.com/elliebot/relay/ent/conversation"
	"github.com/elliebot/relay/ent/event"
	"github.com/elliebot/relay/ent/executionplan"
	"github.com/elliebot/relay/ent/memoryrecord"
	"github.com/elliebot/relay/ent/message"
	"github.com/elliebot/relay/ent/schema"
	"github.com/elliebot/relay/ent/syncqueueitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[4].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	// agentsessionDescLastActivity is the schema descriptor for last_activity field.
	agentsessionDescLastActivity := agentsessionFields[5].Descriptor()
	// agentsession.DefaultLastActivity holds the default value on creation for the last_activity field.
	agentsession.DefaultLastActivity = agentsessionDescLastActivity.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescMessageCount is the schema descriptor for message_count field.
	conversationDescMessageCount := conversationFields[4].Descriptor()
	// conversation.DefaultMessageCount holds the default value on creation for the message_count field.
	conversation.DefaultMessageCount = conversationDescMessageCount.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[8].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionplanFields := schema.ExecutionPlan{}.Fields()
	_ = executionplanFields
	// executionplanDescCreatedAt is the schema descriptor for created_at field.
	executionplanDescCreatedAt := executionplanFields[6].Descriptor()
	// executionplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionplan.DefaultCreatedAt = executionplanDescCreatedAt.Default.(func() time.Time)
	memoryrecordFields := schema.MemoryRecord{}.Fields()
	_ = memoryrecordFields
	// memoryrecordDescSourceAgent is the schema descriptor for source_agent field.
	memoryrecordDescSourceAgent := memoryrecordFields[3].Descriptor()
	// memoryrecord.DefaultSourceAgent holds the default value on creation for the source_agent field.
	memoryrecord.DefaultSourceAgent = memoryrecordDescSourceAgent.Default.(string)
	// memoryrecordDescCreatedAt is the schema descriptor for created_at field.
	memoryrecordDescCreatedAt := memoryrecordFields[10].Descriptor()
	// memoryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryrecord.DefaultCreatedAt = memoryrecordDescCreatedAt.Default.(func() time.Time)
	// memoryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	memoryrecordDescUpdatedAt := memoryrecordFields[11].Descriptor()
	// memoryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memoryrecord.DefaultUpdatedAt = memoryrecordDescUpdatedAt.Default.(func() time.Time)
	// memoryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memoryrecord.UpdateDefaultUpdatedAt = memoryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSummarized is the schema descriptor for summarized field.
	messageDescSummarized := messageFields[5].Descriptor()
	// message.DefaultSummarized holds the default value on creation for the summarized field.
	message.DefaultSummarized = messageDescSummarized.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	syncqueueitemFields := schema.SyncQueueItem{}.Fields()
	_ = syncqueueitemFields
	// syncqueueitemDescAttempts is the schema descriptor for attempts field.
	syncqueueitemDescAttempts := syncqueueitemFields[5].Descriptor()
	// syncqueueitem.DefaultAttempts holds the default value on creation for the attempts field.
	syncqueueitem.DefaultAttempts = syncqueueitemDescAttempts.Default.(int)
	// syncqueueitemDescMaxAttempts is the schema descriptor for max_attempts field.
	syncqueueitemDescMaxAttempts := syncqueueitemFields[6].Descriptor()
	// syncqueueitem.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	syncqueueitem.DefaultMaxAttempts = syncqueueitemDescMaxAttempts.Default.(int)
	// syncqueueitemDescNextRetryAt is the schema descriptor for next_retry_at field.
	syncqueueitemDescNextRetryAt := syncqueueitemFields[8].Descriptor()
	// syncqueueitem.DefaultNextRetryAt holds the default value on creation for the next_retry_at field.
	syncqueueitem.DefaultNextRetryAt = syncqueueitemDescNextRetryAt.Default.(func() time.Time)
	// syncqueueitemDescCreatedAt is the schema descriptor for created_at field.
	syncqueueitemDescCreatedAt := syncqueueitemFields[9].Descriptor()
	// syncqueueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncqueueitem.DefaultCreatedAt = syncqueueitemDescCreatedAt.Default.(func() time.Time)
}

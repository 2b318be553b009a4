// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/predicate"
	"kolekta.io/kolekta/ent/smsmessage"
)

// SMSMessageUpdate is the builder for updating SMSMessage entities.
type SMSMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SMSMessageMutation
}

// Where appends a list predicates to the SMSMessageUpdate builder.
func (_u *SMSMessageUpdate) Where(ps ...predicate.SMSMessage) *SMSMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SMSMessageUpdate) SetUpdatedAt(v time.Time) *SMSMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecipientGroup sets the "recipient_group" field.
func (_u *SMSMessageUpdate) SetRecipientGroup(v string) *SMSMessageUpdate {
	_u.mutation.SetRecipientGroup(v)
	return _u
}

// SetNillableRecipientGroup sets the "recipient_group" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableRecipientGroup(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetRecipientGroup(*v)
	}
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *SMSMessageUpdate) SetRecipients(v []string) *SMSMessageUpdate {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *SMSMessageUpdate) AppendRecipients(v []string) *SMSMessageUpdate {
	_u.mutation.AppendRecipients(v)
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SMSMessageUpdate) SetMessageType(v smsmessage.MessageType) *SMSMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableMessageType(v *smsmessage.MessageType) *SMSMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SMSMessageUpdate) SetBody(v string) *SMSMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableBody(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SMSMessageUpdate) SetStatus(v smsmessage.Status) *SMSMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableStatus(v *smsmessage.Status) *SMSMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *SMSMessageUpdate) SetScheduledFor(v time.Time) *SMSMessageUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableScheduledFor(v *time.Time) *SMSMessageUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *SMSMessageUpdate) ClearScheduledFor() *SMSMessageUpdate {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SMSMessageUpdate) SetSentAt(v time.Time) *SMSMessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableSentAt(v *time.Time) *SMSMessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SMSMessageUpdate) ClearSentAt() *SMSMessageUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SMSMessageUpdate) SetLastError(v string) *SMSMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableLastError(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SMSMessageUpdate) ClearLastError() *SMSMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SMSMessageUpdate) SetArchived(v bool) *SMSMessageUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableArchived(v *bool) *SMSMessageUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_u *SMSMessageUpdate) Mutation() *SMSMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SMSMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SMSMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SMSMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smsmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSMessageUpdate) check() error {
	if v, ok := _u.mutation.RecipientGroup(); ok {
		if err := smsmessage.RecipientGroupValidator(v); err != nil {
			return &ValidationError{Name: "recipient_group", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.recipient_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := smsmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := smsmessage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SMSMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(smsmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecipientGroup(); ok {
		_spec.SetField(smsmessage.FieldRecipientGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(smsmessage.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, smsmessage.FieldRecipients, value)
		})
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(smsmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(smsmessage.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(smsmessage.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(smsmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(smsmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(smsmessage.FieldArchived, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SMSMessageUpdateOne is the builder for updating a single SMSMessage entity.
type SMSMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SMSMessageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SMSMessageUpdateOne) SetUpdatedAt(v time.Time) *SMSMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecipientGroup sets the "recipient_group" field.
func (_u *SMSMessageUpdateOne) SetRecipientGroup(v string) *SMSMessageUpdateOne {
	_u.mutation.SetRecipientGroup(v)
	return _u
}

// SetNillableRecipientGroup sets the "recipient_group" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableRecipientGroup(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetRecipientGroup(*v)
	}
	return _u
}

// SetRecipients sets the "recipients" field.
func (_u *SMSMessageUpdateOne) SetRecipients(v []string) *SMSMessageUpdateOne {
	_u.mutation.SetRecipients(v)
	return _u
}

// AppendRecipients appends value to the "recipients" field.
func (_u *SMSMessageUpdateOne) AppendRecipients(v []string) *SMSMessageUpdateOne {
	_u.mutation.AppendRecipients(v)
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SMSMessageUpdateOne) SetMessageType(v smsmessage.MessageType) *SMSMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableMessageType(v *smsmessage.MessageType) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SMSMessageUpdateOne) SetBody(v string) *SMSMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableBody(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SMSMessageUpdateOne) SetStatus(v smsmessage.Status) *SMSMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableStatus(v *smsmessage.Status) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *SMSMessageUpdateOne) SetScheduledFor(v time.Time) *SMSMessageUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableScheduledFor(v *time.Time) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *SMSMessageUpdateOne) ClearScheduledFor() *SMSMessageUpdateOne {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SMSMessageUpdateOne) SetSentAt(v time.Time) *SMSMessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableSentAt(v *time.Time) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SMSMessageUpdateOne) ClearSentAt() *SMSMessageUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SMSMessageUpdateOne) SetLastError(v string) *SMSMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableLastError(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SMSMessageUpdateOne) ClearLastError() *SMSMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SMSMessageUpdateOne) SetArchived(v bool) *SMSMessageUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableArchived(v *bool) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_u *SMSMessageUpdateOne) Mutation() *SMSMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the SMSMessageUpdate builder.
func (_u *SMSMessageUpdateOne) Where(ps ...predicate.SMSMessage) *SMSMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SMSMessageUpdateOne) Select(field string, fields ...string) *SMSMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SMSMessage entity.
func (_u *SMSMessageUpdateOne) Save(ctx context.Context) (*SMSMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSMessageUpdateOne) SaveX(ctx context.Context) *SMSMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SMSMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SMSMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := smsmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSMessageUpdateOne) check() error {
	if v, ok := _u.mutation.RecipientGroup(); ok {
		if err := smsmessage.RecipientGroupValidator(v); err != nil {
			return &ValidationError{Name: "recipient_group", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.recipient_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := smsmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := smsmessage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SMSMessageUpdateOne) sqlSave(ctx context.Context) (_node *SMSMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SMSMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smsmessage.FieldID)
		for _, f := range fields {
			if !smsmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != smsmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(smsmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecipientGroup(); ok {
		_spec.SetField(smsmessage.FieldRecipientGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipients(); ok {
		_spec.SetField(smsmessage.FieldRecipients, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecipients(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, smsmessage.FieldRecipients, value)
		})
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(smsmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(smsmessage.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(smsmessage.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(smsmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(smsmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(smsmessage.FieldArchived, field.TypeBool, value)
	}
	_node = &SMSMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/smsmessage"
)

// SMSMessageCreate is the builder for creating a SMSMessage entity.
type SMSMessageCreate struct {
	config
	mutation *SMSMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SMSMessageCreate) SetCreatedAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableCreatedAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SMSMessageCreate) SetUpdatedAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableUpdatedAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRecipientGroup sets the "recipient_group" field.
func (_c *SMSMessageCreate) SetRecipientGroup(v string) *SMSMessageCreate {
	_c.mutation.SetRecipientGroup(v)
	return _c
}

// SetRecipients sets the "recipients" field.
func (_c *SMSMessageCreate) SetRecipients(v []string) *SMSMessageCreate {
	_c.mutation.SetRecipients(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *SMSMessageCreate) SetMessageType(v smsmessage.MessageType) *SMSMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableMessageType(v *smsmessage.MessageType) *SMSMessageCreate {
	if v != nil {
		_c.SetMessageType(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *SMSMessageCreate) SetBody(v string) *SMSMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SMSMessageCreate) SetStatus(v smsmessage.Status) *SMSMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableStatus(v *smsmessage.Status) *SMSMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *SMSMessageCreate) SetScheduledFor(v time.Time) *SMSMessageCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableScheduledFor(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetScheduledFor(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *SMSMessageCreate) SetSentAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableSentAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SMSMessageCreate) SetLastError(v string) *SMSMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableLastError(v *string) *SMSMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *SMSMessageCreate) SetArchived(v bool) *SMSMessageCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableArchived(v *bool) *SMSMessageCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SMSMessageCreate) SetID(v string) *SMSMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_c *SMSMessageCreate) Mutation() *SMSMessageMutation {
	return _c.mutation
}

// Save creates the SMSMessage in the database.
func (_c *SMSMessageCreate) Save(ctx context.Context) (*SMSMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SMSMessageCreate) SaveX(ctx context.Context) *SMSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SMSMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smsmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := smsmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		v := smsmessage.DefaultMessageType
		_c.mutation.SetMessageType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := smsmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := smsmessage.DefaultArchived
		_c.mutation.SetArchived(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SMSMessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SMSMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SMSMessage.updated_at"`)}
	}
	if _, ok := _c.mutation.RecipientGroup(); !ok {
		return &ValidationError{Name: "recipient_group", err: errors.New(`ent: missing required field "SMSMessage.recipient_group"`)}
	}
	if v, ok := _c.mutation.RecipientGroup(); ok {
		if err := smsmessage.RecipientGroupValidator(v); err != nil {
			return &ValidationError{Name: "recipient_group", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.recipient_group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recipients(); !ok {
		return &ValidationError{Name: "recipients", err: errors.New(`ent: missing required field "SMSMessage.recipients"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "SMSMessage.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := smsmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "SMSMessage.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := smsmessage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SMSMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "SMSMessage.archived"`)}
	}
	return nil
}

func (_c *SMSMessageCreate) sqlSave(ctx context.Context) (*SMSMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SMSMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SMSMessageCreate) createSpec() (*SMSMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SMSMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smsmessage.Table, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smsmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(smsmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RecipientGroup(); ok {
		_spec.SetField(smsmessage.FieldRecipientGroup, field.TypeString, value)
		_node.RecipientGroup = value
	}
	if value, ok := _c.mutation.Recipients(); ok {
		_spec.SetField(smsmessage.FieldRecipients, field.TypeJSON, value)
		_node.Recipients = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(smsmessage.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(smsmessage.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(smsmessage.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(smsmessage.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SMSMessage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SMSMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SMSMessageCreate) OnConflict(opts ...sql.ConflictOption) *SMSMessageUpsertOne {
	_c.conflict = opts
	return &SMSMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SMSMessageCreate) OnConflictColumns(columns ...string) *SMSMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SMSMessageUpsertOne{
		create: _c,
	}
}

type (
	// SMSMessageUpsertOne is the builder for "upsert"-ing
	//  one SMSMessage node.
	SMSMessageUpsertOne struct {
		create *SMSMessageCreate
	}

	// SMSMessageUpsert is the "OnConflict" setter.
	SMSMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SMSMessageUpsert) SetUpdatedAt(v time.Time) *SMSMessageUpsert {
	u.Set(smsmessage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateUpdatedAt() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldUpdatedAt)
	return u
}

// SetRecipientGroup sets the "recipient_group" field.
func (u *SMSMessageUpsert) SetRecipientGroup(v string) *SMSMessageUpsert {
	u.Set(smsmessage.FieldRecipientGroup, v)
	return u
}

// UpdateRecipientGroup sets the "recipient_group" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateRecipientGroup() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldRecipientGroup)
	return u
}

// SetRecipients sets the "recipients" field.
func (u *SMSMessageUpsert) SetRecipients(v []string) *SMSMessageUpsert {
	u.Set(smsmessage.FieldRecipients, v)
	return u
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateRecipients() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldRecipients)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *SMSMessageUpsert) SetMessageType(v smsmessage.MessageType) *SMSMessageUpsert {
	u.Set(smsmessage.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateMessageType() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldMessageType)
	return u
}

// SetBody sets the "body" field.
func (u *SMSMessageUpsert) SetBody(v string) *SMSMessageUpsert {
	u.Set(smsmessage.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateBody() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldBody)
	return u
}

// SetStatus sets the "status" field.
func (u *SMSMessageUpsert) SetStatus(v smsmessage.Status) *SMSMessageUpsert {
	u.Set(smsmessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateStatus() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldStatus)
	return u
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *SMSMessageUpsert) SetScheduledFor(v time.Time) *SMSMessageUpsert {
	u.Set(smsmessage.FieldScheduledFor, v)
	return u
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateScheduledFor() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldScheduledFor)
	return u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *SMSMessageUpsert) ClearScheduledFor() *SMSMessageUpsert {
	u.SetNull(smsmessage.FieldScheduledFor)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *SMSMessageUpsert) SetSentAt(v time.Time) *SMSMessageUpsert {
	u.Set(smsmessage.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateSentAt() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SMSMessageUpsert) ClearSentAt() *SMSMessageUpsert {
	u.SetNull(smsmessage.FieldSentAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *SMSMessageUpsert) SetLastError(v string) *SMSMessageUpsert {
	u.Set(smsmessage.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateLastError() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *SMSMessageUpsert) ClearLastError() *SMSMessageUpsert {
	u.SetNull(smsmessage.FieldLastError)
	return u
}

// SetArchived sets the "archived" field.
func (u *SMSMessageUpsert) SetArchived(v bool) *SMSMessageUpsert {
	u.Set(smsmessage.FieldArchived, v)
	return u
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SMSMessageUpsert) UpdateArchived() *SMSMessageUpsert {
	u.SetExcluded(smsmessage.FieldArchived)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SMSMessageUpsertOne) UpdateNewValues() *SMSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(smsmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(smsmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SMSMessageUpsertOne) Ignore() *SMSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SMSMessageUpsertOne) DoNothing() *SMSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SMSMessageCreate.OnConflict
// documentation for more info.
func (u *SMSMessageUpsertOne) Update(set func(*SMSMessageUpsert)) *SMSMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SMSMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SMSMessageUpsertOne) SetUpdatedAt(v time.Time) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateUpdatedAt() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRecipientGroup sets the "recipient_group" field.
func (u *SMSMessageUpsertOne) SetRecipientGroup(v string) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetRecipientGroup(v)
	})
}

// UpdateRecipientGroup sets the "recipient_group" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateRecipientGroup() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateRecipientGroup()
	})
}

// SetRecipients sets the "recipients" field.
func (u *SMSMessageUpsertOne) SetRecipients(v []string) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetRecipients(v)
	})
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateRecipients() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateRecipients()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SMSMessageUpsertOne) SetMessageType(v smsmessage.MessageType) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateMessageType() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetBody sets the "body" field.
func (u *SMSMessageUpsertOne) SetBody(v string) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateBody() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *SMSMessageUpsertOne) SetStatus(v smsmessage.Status) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateStatus() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *SMSMessageUpsertOne) SetScheduledFor(v time.Time) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateScheduledFor() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateScheduledFor()
	})
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *SMSMessageUpsertOne) ClearScheduledFor() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearScheduledFor()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *SMSMessageUpsertOne) SetSentAt(v time.Time) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateSentAt() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SMSMessageUpsertOne) ClearSentAt() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearSentAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *SMSMessageUpsertOne) SetLastError(v string) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateLastError() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SMSMessageUpsertOne) ClearLastError() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearLastError()
	})
}

// SetArchived sets the "archived" field.
func (u *SMSMessageUpsertOne) SetArchived(v bool) *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SMSMessageUpsertOne) UpdateArchived() *SMSMessageUpsertOne {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateArchived()
	})
}

// Exec executes the query.
func (u *SMSMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SMSMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SMSMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SMSMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SMSMessageUpsertOne.ID is not supported by MySQL driver. Use SMSMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SMSMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SMSMessageCreateBulk is the builder for creating many SMSMessage entities in bulk.
type SMSMessageCreateBulk struct {
	config
	err      error
	builders []*SMSMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the SMSMessage entities in the database.
func (_c *SMSMessageCreateBulk) Save(ctx context.Context) ([]*SMSMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SMSMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SMSMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SMSMessageCreateBulk) SaveX(ctx context.Context) []*SMSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SMSMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SMSMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SMSMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *SMSMessageUpsertBulk {
	_c.conflict = opts
	return &SMSMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SMSMessageCreateBulk) OnConflictColumns(columns ...string) *SMSMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SMSMessageUpsertBulk{
		create: _c,
	}
}

// SMSMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of SMSMessage nodes.
type SMSMessageUpsertBulk struct {
	create *SMSMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SMSMessageUpsertBulk) UpdateNewValues() *SMSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(smsmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(smsmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SMSMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SMSMessageUpsertBulk) Ignore() *SMSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SMSMessageUpsertBulk) DoNothing() *SMSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SMSMessageCreateBulk.OnConflict
// documentation for more info.
func (u *SMSMessageUpsertBulk) Update(set func(*SMSMessageUpsert)) *SMSMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SMSMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SMSMessageUpsertBulk) SetUpdatedAt(v time.Time) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateUpdatedAt() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRecipientGroup sets the "recipient_group" field.
func (u *SMSMessageUpsertBulk) SetRecipientGroup(v string) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetRecipientGroup(v)
	})
}

// UpdateRecipientGroup sets the "recipient_group" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateRecipientGroup() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateRecipientGroup()
	})
}

// SetRecipients sets the "recipients" field.
func (u *SMSMessageUpsertBulk) SetRecipients(v []string) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetRecipients(v)
	})
}

// UpdateRecipients sets the "recipients" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateRecipients() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateRecipients()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SMSMessageUpsertBulk) SetMessageType(v smsmessage.MessageType) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateMessageType() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetBody sets the "body" field.
func (u *SMSMessageUpsertBulk) SetBody(v string) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateBody() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *SMSMessageUpsertBulk) SetStatus(v smsmessage.Status) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateStatus() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *SMSMessageUpsertBulk) SetScheduledFor(v time.Time) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateScheduledFor() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateScheduledFor()
	})
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *SMSMessageUpsertBulk) ClearScheduledFor() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearScheduledFor()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *SMSMessageUpsertBulk) SetSentAt(v time.Time) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateSentAt() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SMSMessageUpsertBulk) ClearSentAt() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearSentAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *SMSMessageUpsertBulk) SetLastError(v string) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateLastError() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SMSMessageUpsertBulk) ClearLastError() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.ClearLastError()
	})
}

// SetArchived sets the "archived" field.
func (u *SMSMessageUpsertBulk) SetArchived(v bool) *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SMSMessageUpsertBulk) UpdateArchived() *SMSMessageUpsertBulk {
	return u.Update(func(s *SMSMessageUpsert) {
		s.UpdateArchived()
	})
}

// Exec executes the query.
func (u *SMSMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SMSMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SMSMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SMSMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

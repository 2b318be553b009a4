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
	"kolekta.io/kolekta/ent/resident"
)

// ResidentCreate is the builder for creating a Resident entity.
type ResidentCreate struct {
	config
	mutation *ResidentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResidentCreate) SetCreatedAt(v time.Time) *ResidentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableCreatedAt(v *time.Time) *ResidentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResidentCreate) SetUpdatedAt(v time.Time) *ResidentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableUpdatedAt(v *time.Time) *ResidentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *ResidentCreate) SetUsername(v string) *ResidentCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ResidentCreate) SetEmail(v string) *ResidentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableEmail(v *string) *ResidentCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ResidentCreate) SetDisplayName(v string) *ResidentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableDisplayName(v *string) *ResidentCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *ResidentCreate) SetRole(v resident.Role) *ResidentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableRole(v *resident.Role) *ResidentCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetPurok sets the "purok" field.
func (_c *ResidentCreate) SetPurok(v string) *ResidentCreate {
	_c.mutation.SetPurok(v)
	return _c
}

// SetNillablePurok sets the "purok" field if the given value is not nil.
func (_c *ResidentCreate) SetNillablePurok(v *string) *ResidentCreate {
	if v != nil {
		_c.SetPurok(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ResidentCreate) SetPhone(v string) *ResidentCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ResidentCreate) SetNillablePhone(v *string) *ResidentCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ResidentCreate) SetEnabled(v bool) *ResidentCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableEnabled(v *bool) *ResidentCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *ResidentCreate) SetLastLoginAt(v time.Time) *ResidentCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *ResidentCreate) SetNillableLastLoginAt(v *time.Time) *ResidentCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResidentCreate) SetID(v string) *ResidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResidentMutation object of the builder.
func (_c *ResidentCreate) Mutation() *ResidentMutation {
	return _c.mutation
}

// Save creates the Resident in the database.
func (_c *ResidentCreate) Save(ctx context.Context) (*Resident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResidentCreate) SaveX(ctx context.Context) *Resident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResidentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resident.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resident.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := resident.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := resident.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResidentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resident.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resident.updated_at"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "Resident.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := resident.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Resident.username": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := resident.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resident.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Resident.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := resident.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Resident.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := resident.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Resident.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Resident.enabled"`)}
	}
	return nil
}

func (_c *ResidentCreate) sqlSave(ctx context.Context) (*Resident, error) {
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
			return nil, fmt.Errorf("unexpected Resident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResidentCreate) createSpec() (*Resident, *sqlgraph.CreateSpec) {
	var (
		_node = &Resident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resident.Table, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resident.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(resident.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(resident.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(resident.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(resident.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Purok(); ok {
		_spec.SetField(resident.FieldPurok, field.TypeString, value)
		_node.Purok = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(resident.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(resident.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resident.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResidentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResidentCreate) OnConflict(opts ...sql.ConflictOption) *ResidentUpsertOne {
	_c.conflict = opts
	return &ResidentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resident.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResidentCreate) OnConflictColumns(columns ...string) *ResidentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResidentUpsertOne{
		create: _c,
	}
}

type (
	// ResidentUpsertOne is the builder for "upsert"-ing
	//  one Resident node.
	ResidentUpsertOne struct {
		create *ResidentCreate
	}

	// ResidentUpsert is the "OnConflict" setter.
	ResidentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ResidentUpsert) SetUpdatedAt(v time.Time) *ResidentUpsert {
	u.Set(resident.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateUpdatedAt() *ResidentUpsert {
	u.SetExcluded(resident.FieldUpdatedAt)
	return u
}

// SetUsername sets the "username" field.
func (u *ResidentUpsert) SetUsername(v string) *ResidentUpsert {
	u.Set(resident.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateUsername() *ResidentUpsert {
	u.SetExcluded(resident.FieldUsername)
	return u
}

// SetEmail sets the "email" field.
func (u *ResidentUpsert) SetEmail(v string) *ResidentUpsert {
	u.Set(resident.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateEmail() *ResidentUpsert {
	u.SetExcluded(resident.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ResidentUpsert) ClearEmail() *ResidentUpsert {
	u.SetNull(resident.FieldEmail)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *ResidentUpsert) SetDisplayName(v string) *ResidentUpsert {
	u.Set(resident.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateDisplayName() *ResidentUpsert {
	u.SetExcluded(resident.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ResidentUpsert) ClearDisplayName() *ResidentUpsert {
	u.SetNull(resident.FieldDisplayName)
	return u
}

// SetRole sets the "role" field.
func (u *ResidentUpsert) SetRole(v resident.Role) *ResidentUpsert {
	u.Set(resident.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateRole() *ResidentUpsert {
	u.SetExcluded(resident.FieldRole)
	return u
}

// SetPurok sets the "purok" field.
func (u *ResidentUpsert) SetPurok(v string) *ResidentUpsert {
	u.Set(resident.FieldPurok, v)
	return u
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ResidentUpsert) UpdatePurok() *ResidentUpsert {
	u.SetExcluded(resident.FieldPurok)
	return u
}

// ClearPurok clears the value of the "purok" field.
func (u *ResidentUpsert) ClearPurok() *ResidentUpsert {
	u.SetNull(resident.FieldPurok)
	return u
}

// SetPhone sets the "phone" field.
func (u *ResidentUpsert) SetPhone(v string) *ResidentUpsert {
	u.Set(resident.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ResidentUpsert) UpdatePhone() *ResidentUpsert {
	u.SetExcluded(resident.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ResidentUpsert) ClearPhone() *ResidentUpsert {
	u.SetNull(resident.FieldPhone)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *ResidentUpsert) SetEnabled(v bool) *ResidentUpsert {
	u.Set(resident.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateEnabled() *ResidentUpsert {
	u.SetExcluded(resident.FieldEnabled)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ResidentUpsert) SetLastLoginAt(v time.Time) *ResidentUpsert {
	u.Set(resident.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ResidentUpsert) UpdateLastLoginAt() *ResidentUpsert {
	u.SetExcluded(resident.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ResidentUpsert) ClearLastLoginAt() *ResidentUpsert {
	u.SetNull(resident.FieldLastLoginAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Resident.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resident.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResidentUpsertOne) UpdateNewValues() *ResidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(resident.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resident.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resident.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResidentUpsertOne) Ignore() *ResidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResidentUpsertOne) DoNothing() *ResidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResidentCreate.OnConflict
// documentation for more info.
func (u *ResidentUpsertOne) Update(set func(*ResidentUpsert)) *ResidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResidentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResidentUpsertOne) SetUpdatedAt(v time.Time) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateUpdatedAt() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUsername sets the "username" field.
func (u *ResidentUpsertOne) SetUsername(v string) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateUsername() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateUsername()
	})
}

// SetEmail sets the "email" field.
func (u *ResidentUpsertOne) SetEmail(v string) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateEmail() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ResidentUpsertOne) ClearEmail() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearEmail()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ResidentUpsertOne) SetDisplayName(v string) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateDisplayName() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ResidentUpsertOne) ClearDisplayName() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearDisplayName()
	})
}

// SetRole sets the "role" field.
func (u *ResidentUpsertOne) SetRole(v resident.Role) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateRole() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateRole()
	})
}

// SetPurok sets the "purok" field.
func (u *ResidentUpsertOne) SetPurok(v string) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetPurok(v)
	})
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdatePurok() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdatePurok()
	})
}

// ClearPurok clears the value of the "purok" field.
func (u *ResidentUpsertOne) ClearPurok() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearPurok()
	})
}

// SetPhone sets the "phone" field.
func (u *ResidentUpsertOne) SetPhone(v string) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdatePhone() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ResidentUpsertOne) ClearPhone() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearPhone()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ResidentUpsertOne) SetEnabled(v bool) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateEnabled() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ResidentUpsertOne) SetLastLoginAt(v time.Time) *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ResidentUpsertOne) UpdateLastLoginAt() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ResidentUpsertOne) ClearLastLoginAt() *ResidentUpsertOne {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearLastLoginAt()
	})
}

// Exec executes the query.
func (u *ResidentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResidentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResidentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResidentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResidentUpsertOne.ID is not supported by MySQL driver. Use ResidentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResidentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResidentCreateBulk is the builder for creating many Resident entities in bulk.
type ResidentCreateBulk struct {
	config
	err      error
	builders []*ResidentCreate
	conflict []sql.ConflictOption
}

// Save creates the Resident entities in the database.
func (_c *ResidentCreateBulk) Save(ctx context.Context) ([]*Resident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResidentMutation)
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
func (_c *ResidentCreateBulk) SaveX(ctx context.Context) []*Resident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resident.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResidentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ResidentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResidentUpsertBulk {
	_c.conflict = opts
	return &ResidentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resident.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResidentCreateBulk) OnConflictColumns(columns ...string) *ResidentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResidentUpsertBulk{
		create: _c,
	}
}

// ResidentUpsertBulk is the builder for "upsert"-ing
// a bulk of Resident nodes.
type ResidentUpsertBulk struct {
	create *ResidentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Resident.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resident.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResidentUpsertBulk) UpdateNewValues() *ResidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(resident.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resident.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resident.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResidentUpsertBulk) Ignore() *ResidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResidentUpsertBulk) DoNothing() *ResidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResidentCreateBulk.OnConflict
// documentation for more info.
func (u *ResidentUpsertBulk) Update(set func(*ResidentUpsert)) *ResidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResidentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResidentUpsertBulk) SetUpdatedAt(v time.Time) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateUpdatedAt() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUsername sets the "username" field.
func (u *ResidentUpsertBulk) SetUsername(v string) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateUsername() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateUsername()
	})
}

// SetEmail sets the "email" field.
func (u *ResidentUpsertBulk) SetEmail(v string) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateEmail() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ResidentUpsertBulk) ClearEmail() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearEmail()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ResidentUpsertBulk) SetDisplayName(v string) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateDisplayName() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ResidentUpsertBulk) ClearDisplayName() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearDisplayName()
	})
}

// SetRole sets the "role" field.
func (u *ResidentUpsertBulk) SetRole(v resident.Role) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateRole() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateRole()
	})
}

// SetPurok sets the "purok" field.
func (u *ResidentUpsertBulk) SetPurok(v string) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetPurok(v)
	})
}

// UpdatePurok sets the "purok" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdatePurok() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdatePurok()
	})
}

// ClearPurok clears the value of the "purok" field.
func (u *ResidentUpsertBulk) ClearPurok() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearPurok()
	})
}

// SetPhone sets the "phone" field.
func (u *ResidentUpsertBulk) SetPhone(v string) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdatePhone() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ResidentUpsertBulk) ClearPhone() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearPhone()
	})
}

// SetEnabled sets the "enabled" field.
func (u *ResidentUpsertBulk) SetEnabled(v bool) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateEnabled() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *ResidentUpsertBulk) SetLastLoginAt(v time.Time) *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *ResidentUpsertBulk) UpdateLastLoginAt() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *ResidentUpsertBulk) ClearLastLoginAt() *ResidentUpsertBulk {
	return u.Update(func(s *ResidentUpsert) {
		s.ClearLastLoginAt()
	})
}

// Exec executes the query.
func (u *ResidentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResidentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResidentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResidentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

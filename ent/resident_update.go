// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"kolekta.io/kolekta/ent/predicate"
	"kolekta.io/kolekta/ent/resident"
)

// ResidentUpdate is the builder for updating Resident entities.
type ResidentUpdate struct {
	config
	hooks    []Hook
	mutation *ResidentMutation
}

// Where appends a list predicates to the ResidentUpdate builder.
func (_u *ResidentUpdate) Where(ps ...predicate.Resident) *ResidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResidentUpdate) SetUpdatedAt(v time.Time) *ResidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ResidentUpdate) SetUsername(v string) *ResidentUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableUsername(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResidentUpdate) SetEmail(v string) *ResidentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableEmail(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ResidentUpdate) ClearEmail() *ResidentUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ResidentUpdate) SetDisplayName(v string) *ResidentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableDisplayName(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ResidentUpdate) ClearDisplayName() *ResidentUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *ResidentUpdate) SetRole(v resident.Role) *ResidentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableRole(v *resident.Role) *ResidentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPurok sets the "purok" field.
func (_u *ResidentUpdate) SetPurok(v string) *ResidentUpdate {
	_u.mutation.SetPurok(v)
	return _u
}

// SetNillablePurok sets the "purok" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillablePurok(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetPurok(*v)
	}
	return _u
}

// ClearPurok clears the value of the "purok" field.
func (_u *ResidentUpdate) ClearPurok() *ResidentUpdate {
	_u.mutation.ClearPurok()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResidentUpdate) SetPhone(v string) *ResidentUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillablePhone(v *string) *ResidentUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResidentUpdate) ClearPhone() *ResidentUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ResidentUpdate) SetEnabled(v bool) *ResidentUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableEnabled(v *bool) *ResidentUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *ResidentUpdate) SetLastLoginAt(v time.Time) *ResidentUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *ResidentUpdate) SetNillableLastLoginAt(v *time.Time) *ResidentUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *ResidentUpdate) ClearLastLoginAt() *ResidentUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the ResidentMutation object of the builder.
func (_u *ResidentUpdate) Mutation() *ResidentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResidentUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := resident.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Resident.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resident.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resident.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := resident.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Resident.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := resident.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Resident.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *ResidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resident.Table, resident.Columns, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(resident.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resident.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(resident.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(resident.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(resident.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(resident.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Purok(); ok {
		_spec.SetField(resident.FieldPurok, field.TypeString, value)
	}
	if _u.mutation.PurokCleared() {
		_spec.ClearField(resident.FieldPurok, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resident.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(resident.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(resident.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(resident.FieldLastLoginAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResidentUpdateOne is the builder for updating a single Resident entity.
type ResidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResidentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResidentUpdateOne) SetUpdatedAt(v time.Time) *ResidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ResidentUpdateOne) SetUsername(v string) *ResidentUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableUsername(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResidentUpdateOne) SetEmail(v string) *ResidentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableEmail(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ResidentUpdateOne) ClearEmail() *ResidentUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ResidentUpdateOne) SetDisplayName(v string) *ResidentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableDisplayName(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ResidentUpdateOne) ClearDisplayName() *ResidentUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *ResidentUpdateOne) SetRole(v resident.Role) *ResidentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableRole(v *resident.Role) *ResidentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPurok sets the "purok" field.
func (_u *ResidentUpdateOne) SetPurok(v string) *ResidentUpdateOne {
	_u.mutation.SetPurok(v)
	return _u
}

// SetNillablePurok sets the "purok" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillablePurok(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetPurok(*v)
	}
	return _u
}

// ClearPurok clears the value of the "purok" field.
func (_u *ResidentUpdateOne) ClearPurok() *ResidentUpdateOne {
	_u.mutation.ClearPurok()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ResidentUpdateOne) SetPhone(v string) *ResidentUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillablePhone(v *string) *ResidentUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ResidentUpdateOne) ClearPhone() *ResidentUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ResidentUpdateOne) SetEnabled(v bool) *ResidentUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableEnabled(v *bool) *ResidentUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *ResidentUpdateOne) SetLastLoginAt(v time.Time) *ResidentUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *ResidentUpdateOne) SetNillableLastLoginAt(v *time.Time) *ResidentUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *ResidentUpdateOne) ClearLastLoginAt() *ResidentUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the ResidentMutation object of the builder.
func (_u *ResidentUpdateOne) Mutation() *ResidentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResidentUpdate builder.
func (_u *ResidentUpdateOne) Where(ps ...predicate.Resident) *ResidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResidentUpdateOne) Select(field string, fields ...string) *ResidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resident entity.
func (_u *ResidentUpdateOne) Save(ctx context.Context) (*Resident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResidentUpdateOne) SaveX(ctx context.Context) *Resident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResidentUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := resident.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Resident.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resident.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resident.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := resident.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Resident.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := resident.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Resident.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *ResidentUpdateOne) sqlSave(ctx context.Context) (_node *Resident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resident.Table, resident.Columns, sqlgraph.NewFieldSpec(resident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resident.FieldID)
		for _, f := range fields {
			if !resident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resident.FieldID {
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
		_spec.SetField(resident.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(resident.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resident.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(resident.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(resident.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(resident.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(resident.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Purok(); ok {
		_spec.SetField(resident.FieldPurok, field.TypeString, value)
	}
	if _u.mutation.PurokCleared() {
		_spec.ClearField(resident.FieldPurok, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(resident.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(resident.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(resident.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(resident.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(resident.FieldLastLoginAt, field.TypeTime)
	}
	_node = &Resident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

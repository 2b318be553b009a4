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
	"kolekta.io/kolekta/ent/educationalcontent"
	"kolekta.io/kolekta/ent/predicate"
)

// EducationalContentUpdate is the builder for updating EducationalContent entities.
type EducationalContentUpdate struct {
	config
	hooks    []Hook
	mutation *EducationalContentMutation
}

// Where appends a list predicates to the EducationalContentUpdate builder.
func (_u *EducationalContentUpdate) Where(ps ...predicate.EducationalContent) *EducationalContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EducationalContentUpdate) SetUpdatedAt(v time.Time) *EducationalContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EducationalContentUpdate) SetTitle(v string) *EducationalContentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EducationalContentUpdate) SetNillableTitle(v *string) *EducationalContentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EducationalContentUpdate) SetBody(v string) *EducationalContentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EducationalContentUpdate) SetNillableBody(v *string) *EducationalContentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EducationalContentUpdate) SetCategory(v string) *EducationalContentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EducationalContentUpdate) SetNillableCategory(v *string) *EducationalContentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EducationalContentUpdate) ClearCategory() *EducationalContentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetPublished sets the "published" field.
func (_u *EducationalContentUpdate) SetPublished(v bool) *EducationalContentUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *EducationalContentUpdate) SetNillablePublished(v *bool) *EducationalContentUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// Mutation returns the EducationalContentMutation object of the builder.
func (_u *EducationalContentUpdate) Mutation() *EducationalContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EducationalContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducationalContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EducationalContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducationalContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EducationalContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := educationalcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducationalContentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := educationalcontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := educationalcontent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.body": %w`, err)}
		}
	}
	return nil
}

func (_u *EducationalContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(educationalcontent.Table, educationalcontent.Columns, sqlgraph.NewFieldSpec(educationalcontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(educationalcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(educationalcontent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(educationalcontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(educationalcontent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(educationalcontent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(educationalcontent.FieldPublished, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{educationalcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EducationalContentUpdateOne is the builder for updating a single EducationalContent entity.
type EducationalContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EducationalContentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EducationalContentUpdateOne) SetUpdatedAt(v time.Time) *EducationalContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *EducationalContentUpdateOne) SetTitle(v string) *EducationalContentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EducationalContentUpdateOne) SetNillableTitle(v *string) *EducationalContentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *EducationalContentUpdateOne) SetBody(v string) *EducationalContentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EducationalContentUpdateOne) SetNillableBody(v *string) *EducationalContentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *EducationalContentUpdateOne) SetCategory(v string) *EducationalContentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *EducationalContentUpdateOne) SetNillableCategory(v *string) *EducationalContentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *EducationalContentUpdateOne) ClearCategory() *EducationalContentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetPublished sets the "published" field.
func (_u *EducationalContentUpdateOne) SetPublished(v bool) *EducationalContentUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *EducationalContentUpdateOne) SetNillablePublished(v *bool) *EducationalContentUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// Mutation returns the EducationalContentMutation object of the builder.
func (_u *EducationalContentUpdateOne) Mutation() *EducationalContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EducationalContentUpdate builder.
func (_u *EducationalContentUpdateOne) Where(ps ...predicate.EducationalContent) *EducationalContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EducationalContentUpdateOne) Select(field string, fields ...string) *EducationalContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EducationalContent entity.
func (_u *EducationalContentUpdateOne) Save(ctx context.Context) (*EducationalContent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducationalContentUpdateOne) SaveX(ctx context.Context) *EducationalContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EducationalContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducationalContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EducationalContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := educationalcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducationalContentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := educationalcontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := educationalcontent.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "EducationalContent.body": %w`, err)}
		}
	}
	return nil
}

func (_u *EducationalContentUpdateOne) sqlSave(ctx context.Context) (_node *EducationalContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(educationalcontent.Table, educationalcontent.Columns, sqlgraph.NewFieldSpec(educationalcontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EducationalContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, educationalcontent.FieldID)
		for _, f := range fields {
			if !educationalcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != educationalcontent.FieldID {
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
		_spec.SetField(educationalcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(educationalcontent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(educationalcontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(educationalcontent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(educationalcontent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(educationalcontent.FieldPublished, field.TypeBool, value)
	}
	_node = &EducationalContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{educationalcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

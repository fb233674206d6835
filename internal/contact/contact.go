// Package contact holds the contact value object, field validation and
// normalization, and the keyword matching rules used by search, update and
// delete.
package contact

import (
	"fmt"
	"strconv"
)

// Field identifies one of the four contact fields.
// The numeric values match storage order and the update menu.
type Field int

// Field values.
const (
	FieldCompany Field = iota + 1
	FieldPerson
	FieldPhone
	FieldEmail
)

// Fields lists all fields in storage order.
var Fields = [...]Field{FieldCompany, FieldPerson, FieldPhone, FieldEmail}

// String returns the label shown to users.
func (f Field) String() string {
	switch f {
	case FieldCompany:
		return "Company"
	case FieldPerson:
		return "Contact Person"
	case FieldPhone:
		return "Phone"
	case FieldEmail:
		return "Email"
	default:
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
}

// Valid reports whether f names one of the four fields.
func (f Field) Valid() bool {
	return f >= FieldCompany && f <= FieldEmail
}

// ParseField converts a menu choice ("1".."4") into a Field.
func ParseField(s string) (Field, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Field(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
	}

	return Field(n), nil
}

// Contact is one stored business contact.
//
// Contacts are values: build one with a literal or [FromFields] and derive
// modified copies with [Contact.With].
type Contact struct {
	Company string
	Person  string
	Phone   string
	Email   string
}

// FromFields builds a Contact from values in storage order.
func FromFields(fields [4]string) Contact {
	return Contact{
		Company: fields[0],
		Person:  fields[1],
		Phone:   fields[2],
		Email:   fields[3],
	}
}

// Fields returns the values in storage order.
func (c Contact) Fields() [4]string {
	return [4]string{c.Company, c.Person, c.Phone, c.Email}
}

// Get returns the value of f, or "" for an unknown field.
func (c Contact) Get(f Field) string {
	switch f {
	case FieldCompany:
		return c.Company
	case FieldPerson:
		return c.Person
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	default:
		return ""
	}
}

// With returns a copy of c with f set to value. Unknown fields leave the
// copy unchanged.
func (c Contact) With(f Field, value string) Contact {
	switch f {
	case FieldCompany:
		c.Company = value
	case FieldPerson:
		c.Person = value
	case FieldPhone:
		c.Phone = value
	case FieldEmail:
		c.Email = value
	}

	return c
}

// Listable reports whether the contact is shown by list and search.
// Rows missing a company or person stay in the file but are hidden.
func (c Contact) Listable() bool {
	return c.Company != "" && c.Person != ""
}

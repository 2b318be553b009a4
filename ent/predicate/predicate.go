// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// EducationalContent is the predicate function for educationalcontent builders.
type EducationalContent func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ReportStatus is the predicate function for reportstatus builders.
type ReportStatus func(*sql.Selector)

// Resident is the predicate function for resident builders.
type Resident func(*sql.Selector)

// SMSMessage is the predicate function for smsmessage builders.
type SMSMessage func(*sql.Selector)

// Schedule is the predicate function for schedule builders.
type Schedule func(*sql.Selector)
